// internal/logging/level_filter.go
package logging

import (
	"context"
	"log/slog"
)

// levelFilter drops records below a minimum level before they reach the
// wrapped handler. It keeps the error file at warn and above regardless of
// the sink's own level.
type levelFilter struct {
	handler  slog.Handler
	minLevel slog.Level
}

// NewLevelFilter wraps handler so that only records at or above minLevel
// get through.
func NewLevelFilter(handler slog.Handler, minLevel slog.Level) slog.Handler {
	return &levelFilter{handler: handler, minLevel: minLevel}
}

func (f *levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= f.minLevel && f.handler.Enabled(ctx, level)
}

func (f *levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < f.minLevel {
		return nil
	}
	return f.handler.Handle(ctx, r)
}

func (f *levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelFilter{handler: f.handler.WithAttrs(attrs), minLevel: f.minLevel}
}

func (f *levelFilter) WithGroup(name string) slog.Handler {
	return &levelFilter{handler: f.handler.WithGroup(name), minLevel: f.minLevel}
}
