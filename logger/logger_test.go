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

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(log *Logger, n int) {
	for i := 0; i < n; i++ {
		log.Log(fmt.Sprint(i))
	}
}

func TestWindow(t *testing.T) {
	assert := assert.New(t)

	log := NewLog(0)
	assert.Empty(log.Window(4))

	fill(log, 10)
	assert.Equal([]string{"6", "7", "8", "9"}, log.Window(4))

	// fewer lines than the window
	log = NewLog(0)
	fill(log, 2)
	assert.Equal([]string{"0", "1"}, log.Window(4))
}

func TestScroll(t *testing.T) {
	assert := assert.New(t)

	log := NewLog(0)
	fill(log, 10)

	log.ScrollUp()
	log.ScrollUp()
	assert.Equal([]string{"4", "5", "6", "7"}, log.Window(4))

	// new lines don't move a scrolled back view
	log.Log("10")
	assert.Equal([]string{"4", "5", "6", "7"}, log.Window(4))

	log.ScrollDown(4)
	assert.Equal([]string{"5", "6", "7", "8"}, log.Window(4))

	log.Home()
	assert.Equal([]string{"0", "1", "2", "3"}, log.Window(4))

	log.ScrollUp()
	log.ScrollDown(4)
	assert.Equal([]string{"0", "1", "2", "3"}, log.Window(4))

	log.End()
	assert.Equal([]string{"7", "8", "9", "10"}, log.Window(4))

	log.ScrollDown(4)
	assert.Equal([]string{"7", "8", "9", "10"}, log.Window(4))
}

func TestLogln(t *testing.T) {
	log := NewLog(0)
	log.Log("a", "b")
	log.Logln("c")

	assert.Equal(t, []string{"a b", "", "c"}, log.Window(10))
}

func TestCapacity(t *testing.T) {
	assert := assert.New(t)

	log := NewLog(5)
	fill(log, 12)

	assert.Equal(5, log.Len())
	assert.Equal([]string{"7", "8", "9", "10", "11"}, log.Window(5))

	log.Home()
	log.Log("12")
	assert.Equal([]string{"8", "9", "10", "11", "12"}, log.Window(5))
}

func TestHandler(t *testing.T) {
	assert := assert.New(t)

	log := NewLog(0)
	var stderr bytes.Buffer

	text := slog.NewTextHandler(&stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := slog.New(NewHandler(log, slog.LevelInfo, text))

	l.Debug("exec", "pc", "#0200")
	l.Info("loaded rom", "size", 246)
	l.With("rom", "PONG").WithGroup("vm").Error("fault", "pc", "#0204", slog.Group("op", "word", "5001"))

	assert.Equal([]string{
		"loaded rom size=246",
		"ERROR fault rom=PONG vm.pc=#0204 vm.op.word=5001",
	}, log.Window(10))

	// everything reached the next handler
	assert.Contains(stderr.String(), "msg=exec")
	assert.Contains(stderr.String(), "msg=\"loaded rom\"")
	assert.Contains(stderr.String(), "vm.op.word=5001")
}

func TestHandlerEnabled(t *testing.T) {
	h := NewHandler(NewLog(0), slog.LevelWarn, nil)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
