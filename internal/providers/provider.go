package providers

import (
	"context"

	"store-status-service/internal/domain"
)

// CalendarProvider supplies the store calendar (weekly hours, holidays, closure rules and profile).
// Implementations must return a validated calendar or an error; callers keep their previous
// calendar when Load fails.
type CalendarProvider interface {
	Load(ctx context.Context) (domain.Calendar, error)
}

// Named is implemented by providers that report a stable name for logs and metrics.
type Named interface {
	Name() string
}

// NameOf returns the provider's reported name, or "unknown".
func NameOf(p CalendarProvider) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return "unknown"
}
