// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Logger is the handle packages log through, obtained via WithContext.
type Logger = *slog.Logger

// swapHandler delegates to a swappable inner handler, so that loggers
// created at package init time pick up the handler installed later by the
// command entrypoint.
type swapHandler struct {
	inner *atomic.Value // slog.Handler
	attrs []slog.Attr
}

func (h *swapHandler) current() slog.Handler {
	cur := h.inner.Load().(slog.Handler)
	if len(h.attrs) > 0 {
		cur = cur.WithAttrs(h.attrs)
	}
	return cur
}

func (h *swapHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.current().Handle(ctx, r)
}

func (h *swapHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.inner.Load().(slog.Handler).Enabled(ctx, lvl)
}

func (h *swapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &swapHandler{inner: h.inner, attrs: merged}
}

func (h *swapHandler) WithGroup(string) slog.Handler {
	// groups are not used in this codebase
	return h
}

var (
	rootHandler = func() *atomic.Value {
		var v atomic.Value
		v.Store(slog.Handler(DiscardHandler()))
		return &v
	}()
	root = slog.New(&swapHandler{inner: rootHandler})
)

// SetDefault installs the handler backing all loggers, including those
// already created via WithContext.
func SetDefault(h slog.Handler) {
	rootHandler.Store(h)
}

// Root returns the root logger.
func Root() Logger {
	return root
}

// WithContext returns a logger carrying the given key/value context.
func WithContext(args ...any) Logger {
	return root.With(args...)
}

type discardHandler struct{}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (h *discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (h *discardHandler) WithGroup(string) slog.Handler { return h }

func (h *discardHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
