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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMasking(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}

	require.NoError(t, r.SetV(3, 0x1FF))
	b, err := r.V(3)
	require.NoError(t, err)
	assert.Equal(byte(0xFF), b)

	r.SetI(0x12345)
	assert.Equal(uint16(0x2345), r.I())

	r.SetDT(0x101)
	assert.Equal(byte(0x01), r.DT())

	r.SetST(-1)
	assert.Equal(byte(0xFF), r.ST())

	r.SetPC(0xFFFE)
	r.IncrementPC()
	assert.Equal(uint16(0), r.PC())
}

func TestRegisterIndex(t *testing.T) {
	r := &Registers{}

	for _, index := range []int{-1, RegisterCount} {
		var invalid *InvalidRegisterIndexError

		_, err := r.V(index)
		if assert.True(t, errors.As(err, &invalid)) {
			assert.Equal(t, index, invalid.Index)
		}

		assert.Error(t, r.SetV(index, 0))
	}

	_, err := r.Flag(FlagCount)
	assert.Error(t, err)
	assert.Error(t, r.SetFlag(-1, 0))
}

func TestTimersSaturate(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	r.SetDT(2)

	assert.Equal(byte(1), r.DecrementDT())
	assert.Equal(byte(0), r.DecrementDT())
	assert.Equal(byte(0), r.DecrementDT())
	assert.Equal(byte(0), r.DecrementST())
}

func TestRegistersReset(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	require.NoError(t, r.SetV(VF, 1))
	require.NoError(t, r.SetFlag(7, 0x42))
	r.SetI(0x300)
	r.SetDT(10)

	r.Reset(ProgramAddress)

	assert.Equal([RegisterCount]byte{}, r.Snapshot())
	assert.Equal(uint16(0), r.I())
	assert.Equal(byte(0), r.DT())
	assert.Equal(uint16(ProgramAddress), r.PC())

	f, _ := r.Flag(7)
	assert.Equal(byte(0x42), f)
}
