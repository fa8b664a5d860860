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

func TestKeypad(t *testing.T) {
	assert := assert.New(t)

	k := &Keypad{}

	_, fired, err := k.SetKeyStatus(0xA, true)
	require.NoError(t, err)
	assert.False(fired)

	down, _ := k.IsKeyDown(0xA)
	assert.True(down)

	_, _, err = k.SetKeyStatus(0xA, false)
	require.NoError(t, err)

	down, _ = k.IsKeyDown(0xA)
	assert.False(down)
}

func TestKeypadWait(t *testing.T) {
	assert := assert.New(t)

	k := &Keypad{}
	k.WaitKey(5)

	target, waiting := k.Target()
	assert.True(waiting)
	assert.Equal(5, target)

	// releases don't satisfy a wait
	_, fired, _ := k.SetKeyStatus(3, false)
	assert.False(fired)
	assert.True(k.IsWaiting())

	target, fired, err := k.SetKeyStatus(3, true)
	require.NoError(t, err)
	assert.True(fired)
	assert.Equal(5, target)
	assert.False(k.IsWaiting())

	// only the first press fires
	_, fired, _ = k.SetKeyStatus(4, true)
	assert.False(fired)
}

func TestKeypadWaitReplaced(t *testing.T) {
	assert := assert.New(t)

	k := &Keypad{}
	k.WaitKey(1)
	k.WaitKey(5)

	target, fired, err := k.SetKeyStatus(3, true)
	require.NoError(t, err)
	assert.True(fired)
	assert.Equal(5, target)
	assert.False(k.IsWaiting())
}

func TestKeypadInvalid(t *testing.T) {
	k := &Keypad{}

	for _, key := range []int{-1, KeyCount, 0xFF} {
		var invalid *InvalidKeyError

		_, _, err := k.SetKeyStatus(key, true)
		if assert.True(t, errors.As(err, &invalid)) {
			assert.Equal(t, key, invalid.Key)
		}

		_, err = k.IsKeyDown(key)
		assert.Error(t, err)
	}
}

func TestKeypadReset(t *testing.T) {
	k := &Keypad{}
	k.WaitKey(1)
	_, _, _ = k.SetKeyStatus(2, true)
	k.WaitKey(1)

	k.Reset()

	assert.False(t, k.IsWaiting())

	down, _ := k.IsKeyDown(2)
	assert.False(t, down)
}
