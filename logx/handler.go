// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// in the form "LEVEL message key=value ...", coloring the level
// according to the color profile of its output.
type Handler struct {
	level   slog.Leveler
	out     *termenv.Output
	mu      *sync.Mutex
	attrs   string
	groups  []string
	noColor bool
}

// NewHandler returns a new [Handler] writing to the given writer,
// showing records at or above the given level. Colors are only used
// when the writer is a terminal that supports them.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	out := termenv.NewOutput(w)
	return &Handler{
		level:   level,
		out:     out,
		mu:      &sync.Mutex{},
		noColor: out.Profile == termenv.Ascii,
	}
}

// Enabled implements [slog.Handler].
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle implements [slog.Handler].
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs implements [slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		writeAttr(&b, prefix, a)
	}
	nh := *h
	nh.attrs += b.String()
	return &nh
}

// WithGroup implements [slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *Handler) levelString(l slog.Level) string {
	s := l.String()
	if h.noColor {
		return s
	}
	st := h.out.String(s).Bold()
	switch {
	case l >= slog.LevelError:
		st = st.Foreground(h.out.Color("1"))
	case l >= slog.LevelWarn:
		st = st.Foreground(h.out.Color("3"))
	case l >= slog.LevelInfo:
		st = st.Foreground(h.out.Color("4"))
	default:
		st = st.Foreground(h.out.Color("8"))
	}
	return st.String()
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}

// SetDefaultLogger sets the default logger to use a [Handler] writing
// to [os.Stderr] with a level of [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &userLeveler{})))
}

// userLeveler reads [UserLevel] on every call, so that changes to it
// after [SetDefaultLogger] take effect.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }
