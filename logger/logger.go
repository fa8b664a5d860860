/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Package logger keeps recent log lines in a scrollable buffer for the
// debug panel, fed by log/slog.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// DefaultCapacity is how many lines are kept before the oldest is dropped.
const DefaultCapacity = 1000

// Logger creates a new output log that can be viewed and scrolled.
type Logger struct {
	mu sync.Mutex

	// buf contains each line of logged text.
	buf []string

	// pos is the current user read position within the log.
	pos int

	// capacity is the most lines buf holds.
	capacity int
}

// NewLog creates a new Logger.
func NewLog(capacity int) *Logger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Logger{
		buf:      make([]string, 0, 100),
		capacity: capacity,
	}
}

// Log outputs a new line to the log.
func (log *Logger) Log(s ...string) {
	log.mu.Lock()
	defer log.mu.Unlock()

	log.append(strings.Join(s, " "))
}

// Logln outputs a new line to the log, with an empty line prefixed.
func (log *Logger) Logln(s ...string) {
	log.mu.Lock()
	defer log.mu.Unlock()

	log.append("", strings.Join(s, " "))
}

func (log *Logger) append(lines ...string) {
	scroll := log.pos == len(log.buf)

	log.buf = append(log.buf, lines...)

	// drop the oldest lines, keeping the read position on the same text
	if over := len(log.buf) - log.capacity; over > 0 {
		log.buf = append(log.buf[:0], log.buf[over:]...)

		if log.pos -= over; log.pos < 0 {
			log.pos = 0
		}
	}

	if scroll {
		log.pos = len(log.buf)
	}
}

// Len is the number of lines in the log.
func (log *Logger) Len() int {
	log.mu.Lock()
	defer log.mu.Unlock()

	return len(log.buf)
}

// Window returns up to n lines ending at the read position.
func (log *Logger) Window(n int) []string {
	log.mu.Lock()
	defer log.mu.Unlock()

	start := log.pos - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	end := start + n
	if end > len(log.buf) {
		end = len(log.buf)
	}

	return append([]string(nil), log.buf[start:end]...)
}

// Home scrolls the log to the beginning.
func (log *Logger) Home() {
	log.mu.Lock()
	defer log.mu.Unlock()

	log.pos = 0
}

// End scrolls the log to the end.
func (log *Logger) End() {
	log.mu.Lock()
	defer log.mu.Unlock()

	log.pos = len(log.buf)
}

// ScrollUp scrolls the log back one position.
func (log *Logger) ScrollUp() {
	log.mu.Lock()
	defer log.mu.Unlock()

	log.pos -= 1

	// clamp to home
	if log.pos < 0 {
		log.pos = 0
	}
}

// ScrollDown scrolls the log forward one position.
func (log *Logger) ScrollDown(windowSize int) {
	log.mu.Lock()
	defer log.mu.Unlock()

	log.pos += 1

	// if less than the window size, drop to it
	if log.pos < windowSize {
		log.pos = windowSize
	}

	// clamp to end
	if log.pos > len(log.buf) {
		log.pos = len(log.buf)
	}
}

// Handler is a slog.Handler writing one line per record into a Logger,
// and passing the record on to another handler if there is one.
type Handler struct {
	log   *Logger
	level slog.Leveler
	next  slog.Handler

	// pre-formatted attributes and the open group prefix
	attrs  string
	prefix string
}

// NewHandler returns a handler logging records at or above level into log.
// When next is not nil every record is also passed to it.
func NewHandler(log *Logger, level slog.Leveler, next slog.Handler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}

	return &Handler{log: log, level: level, next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= h.level.Level() {
		return true
	}
	return h.next != nil && h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level.Level() {
		var sb strings.Builder

		if r.Level != slog.LevelInfo {
			sb.WriteString(r.Level.String())
			sb.WriteByte(' ')
		}

		sb.WriteString(r.Message)
		sb.WriteString(h.attrs)

		r.Attrs(func(a slog.Attr) bool {
			writeAttr(&sb, h.prefix, a)
			return true
		})

		h.log.Log(sb.String())
	}

	if h.next != nil && h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}

	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder

	sb.WriteString(h.attrs)

	for _, a := range attrs {
		writeAttr(&sb, h.prefix, a)
	}

	h2 := *h
	h2.attrs = sb.String()

	if h.next != nil {
		h2.next = h.next.WithAttrs(attrs)
	}

	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.prefix = h.prefix + name + "."

	if h.next != nil {
		h2.next = h.next.WithGroup(name)
	}

	return &h2
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			writeAttr(sb, prefix, g)
		}

		return
	}

	fmt.Fprintf(sb, " %s%s=%s", prefix, a.Key, a.Value)
}
