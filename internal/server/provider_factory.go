package server

import (
	"fmt"
	"log/slog"

	"store-status-service/internal/config"
	"store-status-service/internal/providers"
	"store-status-service/internal/providers/builtin"
	"store-status-service/internal/providers/file"
)

// providerFactory assembles the calendar provider with the shared retry wrapper.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) (providers.CalendarProvider, error) {
	base, err := selectProvider(cfg.Calendar, f.logger)
	if err != nil {
		return nil, err
	}
	return providers.NewRetryingProvider(base, f.logger, 0, 0), nil
}

func selectProvider(cfg config.CalendarConfig, logger *slog.Logger) (providers.CalendarProvider, error) {
	switch cfg.Provider {
	case builtin.Name, "":
		return builtin.New(), nil
	case file.Name:
		if cfg.File == "" {
			return nil, fmt.Errorf("calendar provider %q requires a file path", file.Name)
		}
		return file.New(cfg.File, logger), nil
	default:
		return nil, fmt.Errorf("unknown calendar provider %q", cfg.Provider)
	}
}
