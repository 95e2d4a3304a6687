package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"store-status-service/internal/domain"
	"store-status-service/internal/providers"
)

// Name identifies the file provider in logs and metrics.
const Name = "file"

// Provider reads the store calendar from a YAML file on every Load so edits are picked up by the poller.
type Provider struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// New creates a file provider for path.
func New(path string, logger *slog.Logger) *Provider {
	return &Provider{path: path, logger: logger, now: time.Now}
}

// Name implements providers.Named.
func (p *Provider) Name() string {
	return Name
}

// Path returns the calendar file location.
func (p *Provider) Path() string {
	return p.path
}

// Load reads, decodes and validates the calendar file.
func (p *Provider) Load(ctx context.Context) (domain.Calendar, error) {
	if err := ctx.Err(); err != nil {
		return domain.Calendar{}, err
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return domain.Calendar{}, fmt.Errorf("%w: read %s: %v", providers.ErrProviderUnavailable, p.path, err)
	}
	cal, warnings, err := decode(data)
	if err != nil {
		providers.LogWithProvider(ctx, p.logger, slog.LevelWarn, Name, "calendar file rejected",
			slog.String("path", p.path), slog.Any("err", err))
		return domain.Calendar{}, err
	}
	for _, w := range warnings {
		providers.LogWithProvider(ctx, p.logger, slog.LevelWarn, Name, "calendar file warning",
			slog.String("path", p.path), slog.String("detail", w))
	}
	cal.LoadedAt = p.now()
	providers.LogWithProvider(ctx, p.logger, slog.LevelDebug, Name, "calendar file loaded",
		slog.String("path", p.path),
		slog.Int("hours", len(cal.Week.Days())),
		slog.Int("holidays", cal.Holidays.Len()),
	)
	return cal, nil
}

// Decode parses a YAML calendar document. Unknown keys are rejected. Holidays sharing a date are
// kept in file order, so lookups see the first one.
func Decode(data []byte) (domain.Calendar, error) {
	cal, _, err := decode(data)
	return cal, err
}

func decode(data []byte) (domain.Calendar, []string, error) {
	var doc calendarDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Calendar{}, nil, providers.Invalid(Name, "document", "empty calendar file")
		}
		return domain.Calendar{}, nil, providers.Invalid(Name, "document", err.Error())
	}
	return mapCalendar(doc)
}
