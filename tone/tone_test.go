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

package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareWave(t *testing.T) {
	g := New(8000, 1000, 1)
	buf := make([]byte, 12)

	g.Fill(buf, true)

	hi, lo := byte(Silence+127), byte(Silence-127)
	assert.Equal(t, []byte{hi, hi, hi, hi, lo, lo, lo, lo, hi, hi, hi, hi}, buf)

	// continues where it left off
	g.Fill(buf[:4], true)
	assert.Equal(t, []byte{lo, lo, lo, lo}, buf[:4])
}

func TestSilence(t *testing.T) {
	g := New(8000, 1000, 0.5)
	buf := make([]byte, 6)

	g.Fill(buf, true)
	g.Fill(buf, false)

	for _, b := range buf {
		assert.Equal(t, byte(Silence), b)
	}

	// restarts on a high half period
	g.Fill(buf[:1], true)
	assert.Equal(t, byte(Silence+63), buf[0])
}

func TestWholeSecond(t *testing.T) {
	g := New(22050, 440, 1)
	buf := make([]byte, 22050)

	g.Fill(buf, true)

	// every sample is one of the two levels, and both are used equally
	high := 0
	for _, b := range buf {
		if b == Silence+127 {
			high++
		} else {
			assert.Equal(t, byte(Silence-127), b)
		}
	}

	assert.InDelta(t, len(buf)/2, high, 440)
}
