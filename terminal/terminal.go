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

// Package terminal runs a CHIP-8 in a text terminal with termbox. Two
// pixel rows share one character cell using half block glyphs.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/nsf/termbox-go"

	"github.com/massung/chip8vm/chip8"
)

const (
	// KeyHold is how long a key stays down after the terminal reports it.
	// Terminals only send presses (and repeats), never releases.
	KeyHold = 150 * time.Millisecond

	// UpdateInterval is how often the clock is advanced.
	UpdateInterval = 2 * time.Millisecond
)

// Recorder receives the buzzer state every update.
type Recorder interface {
	Record(ticks int, buzzing bool)
}

// Terminal is the termbox frontend.
type Terminal struct {
	Clock *chip8.Clock

	// Recorder, if not nil, is fed the buzzer.
	Recorder Recorder

	// Hold is the auto release delay of a key.
	Hold time.Duration

	keys map[rune]int

	// release deadline of every held key, zero when up
	held [chip8.KeyCount]time.Time
}

// New returns a terminal frontend driving clock with a key map of key
// names to keypad keys.
func New(clock *chip8.Clock, keys map[string]int) *Terminal {
	return &Terminal{
		Clock: clock,
		Hold:  KeyHold,
		keys:  KeyRunes(keys),
	}
}

// KeyRunes converts key names to the characters a terminal sends. Only
// single character names can be typed, in either case.
func KeyRunes(keys map[string]int) map[rune]int {
	runes := make(map[rune]int, len(keys)*2)

	for name, key := range keys {
		r, size := utf8.DecodeRuneInString(name)
		if size == 0 || size != len(name) {
			slog.Debug("key not available in a terminal", "name", name)
			continue
		}

		runes[unicode.ToLower(r)] = key
		runes[unicode.ToUpper(r)] = key
	}

	return runes
}

// HalfBlock returns the glyph drawing a top and bottom pixel in one cell.
func HalfBlock(top, bottom byte) rune {
	switch {
	case top != 0 && bottom != 0:
		return '█'
	case top != 0:
		return '▀'
	case bottom != 0:
		return '▄'
	}
	return ' '
}

// Render calls set for every cell of the screen.
func Render(v *chip8.VRAM, set func(x, y int, ch rune)) {
	w, h := v.Resolution()
	buffer := v.Buffer()

	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := buffer[y*w+x]
			bottom := byte(0)

			if y+1 < h {
				bottom = buffer[(y+1)*w+x]
			}

			set(x, y/2, HalfBlock(top, bottom))
		}
	}
}

// Press a keypad key at a time. Repeats extend how long it's held.
func (t *Terminal) Press(key int, now time.Time) error {
	if key < 0 || key >= chip8.KeyCount {
		return &chip8.InvalidKeyError{Key: key}
	}

	if t.held[key].IsZero() {
		if err := t.Clock.VM.PressKey(key); err != nil {
			return err
		}
	}

	t.held[key] = now.Add(t.Hold)

	return nil
}

// Expire releases every key held past its deadline.
func (t *Terminal) Expire(now time.Time) error {
	for key, deadline := range t.held {
		if deadline.IsZero() || now.Before(deadline) {
			continue
		}

		t.held[key] = time.Time{}

		if err := t.Clock.VM.ReleaseKey(key); err != nil {
			return err
		}
	}

	return nil
}

// Run until ESC, ^C, the program exits or faults, or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("termbox: %w", err)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// termbox blocks reading input, so read it elsewhere
	events := make(chan termbox.Event)

	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	defer termbox.Interrupt()

	ticker := time.NewTicker(UpdateInterval)
	defer ticker.Stop()

	t.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			quit, err := t.handle(ev)
			if quit || err != nil {
				return err
			}
		case now := <-ticker.C:
			if err := t.Expire(now); err != nil {
				return err
			}

			r, err := t.Clock.Update()

			if t.Recorder != nil {
				t.Recorder.Record(r.Ticks, t.Clock.VM.Buzzing())
			}

			if r.Draw || r.ModeChanged {
				t.draw()
			}

			if err != nil {
				if errors.Is(err, chip8.ErrExit) || errors.Is(err, chip8.ErrStopped) {
					return nil
				}
				return err
			}
		}
	}
}

func (t *Terminal) handle(ev termbox.Event) (bool, error) {
	switch ev.Type {
	case termbox.EventError:
		return true, ev.Err
	case termbox.EventResize:
		t.draw()
	case termbox.EventKey:
		switch ev.Key {
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return true, nil
		case termbox.KeyBackspace, termbox.KeyBackspace2:
			t.Clock.Reset()
			t.held = [chip8.KeyCount]time.Time{}
		case termbox.KeyF5:
			t.Clock.Pause(!t.Clock.Paused())
			t.draw()
		}

		if key, ok := t.keys[ev.Ch]; ok {
			return false, t.Press(key, time.Now())
		}
	}

	return false, nil
}

func (t *Terminal) draw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	Render(t.Clock.VM.VRAM, func(x, y int, ch rune) {
		if ch != ' ' {
			termbox.SetCell(x, y, ch, termbox.ColorWhite, termbox.ColorDefault)
		}
	})

	_, h := t.Clock.VM.VRAM.Resolution()

	// status line under the screen
	status := fmt.Sprintf("%d Hz  F5 pause  BS reset  ESC quit", t.Clock.Speed())
	if t.Clock.Paused() {
		status = "PAUSED  " + status
	}

	for x, ch := range []rune(strings.TrimSpace(status)) {
		termbox.SetCell(x, h/2+1, ch, termbox.ColorYellow, termbox.ColorDefault)
	}

	termbox.Flush()
}
