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

package terminal

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massung/chip8vm/chip8"
)

func machine(t *testing.T, program ...byte) *chip8.Clock {
	t.Helper()

	vm := chip8.New()
	vm.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, vm.Load(program))

	return chip8.NewClock(vm)
}

func set(t *testing.T, v *chip8.VRAM, x, y int) {
	t.Helper()

	_, err := v.XOR(x, y, 1)
	require.NoError(t, err)
}

func TestHalfBlock(t *testing.T) {
	assert.Equal(t, ' ', HalfBlock(0, 0))
	assert.Equal(t, '▀', HalfBlock(1, 0))
	assert.Equal(t, '▄', HalfBlock(0, 1))
	assert.Equal(t, '█', HalfBlock(1, 1))
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	v := chip8.NewVRAM()
	set(t, v, 0, 0)
	set(t, v, 0, 1)
	set(t, v, 5, 3)
	set(t, v, 63, 30)

	cells := make(map[[2]int]rune)
	Render(v, func(x, y int, ch rune) {
		cells[[2]int{x, y}] = ch
	})

	assert.Len(cells, chip8.ScreenWidth*chip8.ScreenHeight/2)
	assert.Equal('█', cells[[2]int{0, 0}])
	assert.Equal('▄', cells[[2]int{5, 1}])
	assert.Equal('▀', cells[[2]int{63, 15}])
	assert.Equal(' ', cells[[2]int{1, 0}])
}

func TestKeyRunes(t *testing.T) {
	assert := assert.New(t)

	runes := KeyRunes(map[string]int{"X": 0, "1": 1, "Up": 2, "": 3})

	assert.Equal(map[rune]int{'x': 0, 'X': 0, '1': 1}, runes)
}

func TestKeyHold(t *testing.T) {
	assert := assert.New(t)

	// LD V3, K
	clock := machine(t, 0xF3, 0x0A)
	term := New(clock, nil)

	_, err := clock.StepOnce()
	require.NoError(t, err)
	require.True(t, clock.VM.Waiting())

	now := time.Unix(0, 0)
	require.NoError(t, term.Press(0xB, now))

	down, _ := clock.VM.Keypad.IsKeyDown(0xB)
	assert.True(down)
	assert.False(clock.VM.Waiting())

	v3, _ := clock.VM.Registers.V(3)
	assert.Equal(byte(0xB), v3)

	// a repeat extends the hold
	require.NoError(t, term.Press(0xB, now.Add(KeyHold/2)))
	require.NoError(t, term.Expire(now.Add(KeyHold)))

	down, _ = clock.VM.Keypad.IsKeyDown(0xB)
	assert.True(down)

	require.NoError(t, term.Expire(now.Add(2*KeyHold)))

	down, _ = clock.VM.Keypad.IsKeyDown(0xB)
	assert.False(down)
}

func TestPressInvalid(t *testing.T) {
	term := New(machine(t), nil)

	var invalid *chip8.InvalidKeyError
	assert.ErrorAs(t, term.Press(chip8.KeyCount, time.Now()), &invalid)
}
