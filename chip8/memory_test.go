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

package chip8

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFonts(t *testing.T) {
	m := NewMemory()

	if diff := cmp.Diff(Font[:], m.Slice(FontAddress, len(Font))); diff != "" {
		t.Errorf("font (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ExtendedFont[:], m.Slice(ExtendedFontAddress, len(ExtendedFont))); diff != "" {
		t.Errorf("extended font (-want +got):\n%s", diff)
	}
}

func TestLoadProgram(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	require.NoError(t, m.Load([]byte{0x12, 0x34, 0x56}))

	assert.Equal(ProgramAddress, m.ProgramIndex())
	assert.Equal([]byte{0x12, 0x34, 0x56, 0x00}, m.Slice(ProgramAddress, 4))

	op, err := m.ReadInstruction(ProgramAddress)
	require.NoError(t, err)
	assert.Equal(Opcode(0x1234), op)

	// a second load wipes the first
	require.NoError(t, m.Load([]byte{0xAA}))
	assert.Equal([]byte{0xAA, 0x00, 0x00}, m.Slice(ProgramAddress, 3))
}

func TestLoadETI(t *testing.T) {
	assert := assert.New(t)

	rom := make([]byte, ETIProgramSize)
	rom[0] = 0x60

	m := NewMemory()
	require.NoError(t, m.Load(rom))

	assert.Equal(ETIProgramAddress, m.ProgramIndex())

	b, _ := m.Read(ETIProgramAddress)
	assert.Equal(byte(0x60), b)

	_, err := m.ReadInstruction(ProgramAddress)
	assert.Error(err)

	// one byte either side is a normal program
	require.NoError(t, m.Load(rom[1:]))
	assert.Equal(ProgramAddress, m.ProgramIndex())
}

func TestLoadTooLarge(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.Load(make([]byte, MaxProgramSize)))

	err := m.Load(make([]byte, MaxProgramSize+1))

	var large *RomTooLargeError
	require.True(t, errors.As(err, &large))
	assert.Equal(t, MaxProgramSize+1, large.Size)
}

func TestMemoryBounds(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()

	for _, address := range []int{-1, MemorySize, 0xFFFF} {
		_, err := m.Read(address)

		var invalid *InvalidAddressError
		if assert.True(errors.As(err, &invalid)) {
			assert.Equal(address, invalid.Address)
		}

		assert.Error(m.Write(address, 0))
	}

	// the last word straddles the end of memory
	_, err := m.ReadInstruction(ProgramEnd)
	assert.Error(err)

	_, err = m.ReadInstruction(ProgramEnd - 1)
	assert.NoError(err)

	assert.Len(m.Slice(ProgramEnd, 10), 1)
	assert.Nil(m.Slice(MemorySize, 1))
}

func TestMemoryWrite(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	require.NoError(t, m.Write(0x300, 0x1AB))

	b, _ := m.Read(0x300)
	assert.Equal(byte(0xAB), b)

	// interpreter area is writable, just not executable
	require.NoError(t, m.Write(0x000, 0xFF))

	_, err := m.ReadInstruction(0x000)
	assert.Error(err)
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Load([]byte{0x00, 0xE0}))

	require.NoError(t, m.Write(ProgramAddress, 0x12))
	require.NoError(t, m.Write(FontAddress, 0x00))
	require.NoError(t, m.Write(0xFFF, 0x34))

	m.Reset()

	op, err := m.ReadInstruction(ProgramAddress)
	require.NoError(t, err)
	assert.Equal(t, Opcode(0x00E0), op)

	if diff := cmp.Diff(Font[:], m.Slice(FontAddress, len(Font))); diff != "" {
		t.Errorf("font not restored (-want +got):\n%s", diff)
	}

	b, _ := m.Read(0xFFF)
	assert.Equal(t, byte(0), b)
}
