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

/// KeyCount is the number of keys on the hex keypad.
///
const KeyCount = 16

/// Keypad holds the state of the 16 keys and whether the machine is
/// suspended waiting for one of them (Fx0A).
///
type Keypad struct {
	keys [KeyCount]bool

	// true while an Fx0A is pending
	waiting bool

	// V register the pending Fx0A will write the key to
	target int
}

func validKey(key int) error {
	if key < 0 || key >= KeyCount {
		return &InvalidKeyError{Key: key}
	}
	return nil
}

/// WaitKey suspends until the next key press, which will be written to
/// register. Any previously pending wait is discarded.
///
func (k *Keypad) WaitKey(register int) {
	k.waiting = true
	k.target = register
}

/// IsWaiting is true while a key press is pending.
///
func (k *Keypad) IsWaiting() bool {
	return k.waiting
}

/// Target is the register the pending wait will write to.
///
func (k *Keypad) Target() (int, bool) {
	return k.target, k.waiting
}

/// SetKeyStatus records a key edge. If the key went down while waiting,
/// the wait is over and the register that should receive the key is
/// returned with fired set.
///
func (k *Keypad) SetKeyStatus(key int, down bool) (target int, fired bool, err error) {
	if err = validKey(key); err != nil {
		return 0, false, err
	}

	k.keys[key] = down

	if down && k.waiting {
		k.waiting = false

		return k.target, true, nil
	}

	return 0, false, nil
}

/// IsKeyDown returns true if key is held.
///
func (k *Keypad) IsKeyDown(key int) (bool, error) {
	if err := validKey(key); err != nil {
		return false, err
	}
	return k.keys[key], nil
}

/// Reset releases all keys and cancels any wait.
///
func (k *Keypad) Reset() {
	k.keys = [KeyCount]bool{}
	k.waiting = false
	k.target = 0
}
