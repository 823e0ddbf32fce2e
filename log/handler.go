// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

const (
	timeFormat = "Jan 02 15:04:05"

	escapeReset  = "\x1b[0m"
	escapeRed    = "\x1b[31m"
	escapeYellow = "\x1b[33m"
	escapeGreen  = "\x1b[32m"
	escapeCyan   = "\x1b[36m"
)

// TerminalHandler formats records for human readability:
//
//	[LEVL] [time] message key=value key=value ...
//
// with color-coded levels when useColor is set.
type TerminalHandler struct {
	mu       sync.Mutex
	wr       io.Writer
	lvl      *slog.LevelVar
	useColor bool
	attrs    []slog.Attr
}

// NewTerminalHandler creates a terminal handler writing records at or above
// lvl to wr.
func NewTerminalHandler(wr io.Writer, lvl *slog.LevelVar, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:       wr,
		lvl:      lvl,
		useColor: useColor,
	}
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl.Level()
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 128)
	buf = h.appendLevel(buf, r.Level)
	buf = append(buf, " ["...)
	buf = r.Time.AppendFormat(buf, timeFormat)
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	for _, attr := range h.attrs {
		buf = appendAttr(buf, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		buf = appendAttr(buf, attr)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.wr.Write(buf)
	return err
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TerminalHandler{
		wr:       h.wr,
		lvl:      h.lvl,
		useColor: h.useColor,
		attrs:    merged,
	}
}

func (h *TerminalHandler) WithGroup(string) slog.Handler {
	// groups are not used in this codebase
	return h
}

func (h *TerminalHandler) appendLevel(buf []byte, level slog.Level) []byte {
	label, color := "INFO", escapeGreen
	switch {
	case level >= slog.LevelError:
		label, color = "EROR", escapeRed
	case level >= slog.LevelWarn:
		label, color = "WARN", escapeYellow
	case level < slog.LevelInfo:
		label, color = "DBUG", escapeCyan
	}
	if h.useColor {
		return append(buf, fmt.Sprintf("%s[%s]%s", color, label, escapeReset)...)
	}
	return append(buf, "["+label+"]"...)
}

func appendAttr(buf []byte, attr slog.Attr) []byte {
	buf = append(buf, ' ')
	buf = append(buf, attr.Key...)
	buf = append(buf, '=')
	switch v := attr.Value.Any().(type) {
	case string:
		if needsQuoting(v) {
			return strconv.AppendQuote(buf, v)
		}
		return append(buf, v...)
	case time.Duration:
		return append(buf, v.String()...)
	case error:
		return strconv.AppendQuote(buf, v.Error())
	default:
		return fmt.Appendf(buf, "%v", v)
	}
}

func needsQuoting(s string) bool {
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return len(s) == 0
}

// LevelFromVerbosity maps the CLI verbosity flag (0=error .. 4=debug and up)
// onto a slog level.
func LevelFromVerbosity(v int) slog.Level {
	switch v {
	case 0:
		return slog.LevelError
	case 1:
		return slog.LevelWarn
	case 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
