package server

import (
	"context"

	"store-status-service/internal/poller"
)

// Poller defines the poller behavior needed by the server and the admin reload route.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status() poller.Status
}
