// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const (
	timeFormat        = "2006-01-02T15:04:05-0700"
	levelMaxVerbosity = slog.Level(-1000)
)

// Levels in addition to the slog ones.
const (
	LevelTrace slog.Level = -8
	LevelCrit  slog.Level = 12
)

var root atomic.Pointer[slog.Logger]

func init() {
	root.Store(slog.New(DiscardHandler()))
}

// Root returns the root logger. It discards everything until SetDefault is called.
func Root() *slog.Logger {
	return root.Load()
}

// SetDefault replaces the root logger.
// Loggers already returned by WithContext keep their handler chain; they resolve
// the root lazily, so records still reach the new handler.
func SetDefault(l *slog.Logger) {
	root.Store(l)
}

// WithContext returns a logger that prefixes every record with ctx.
func WithContext(ctx ...any) *slog.Logger {
	return slog.New(&lazyHandler{attrs: argsToAttrs(ctx)})
}

// LevelString returns the short upper case name printed for lvl.
func LevelString(lvl slog.Level) string {
	switch lvl {
	case LevelTrace:
		return "TRCE"
	case slog.LevelDebug:
		return "DBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "EROR"
	case LevelCrit:
		return "CRIT"
	default:
		return "unknown"
	}
}

// lazyHandler forwards to the current root handler.
type lazyHandler struct {
	attrs []slog.Attr
}

func (h *lazyHandler) target() slog.Handler {
	return Root().Handler().WithAttrs(h.attrs)
}

func (h *lazyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Root().Handler().Enabled(ctx, level)
}

func (h *lazyHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.target().Handle(ctx, r)
}

func (h *lazyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	return &lazyHandler{attrs: append(merged, attrs...)}
}

func (h *lazyHandler) WithGroup(_ string) slog.Handler {
	panic("not implemented")
}

func argsToAttrs(args []any) []slog.Attr {
	var r slog.Record
	r.Add(args...)
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	return attrs
}
