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

/// StackSize is the maximum call depth.
///
const StackSize = 16

/// Stack of subroutine return addresses.
///
type Stack struct {
	addresses [StackSize]uint16

	// number of addresses pushed
	sp int
}

/// Push a return address.
///
func (s *Stack) Push(address uint16) error {
	if s.sp == StackSize {
		return &StackOverflowError{Address: address}
	}

	s.addresses[s.sp] = address
	s.sp++

	return nil
}

/// Pop the most recently pushed return address.
///
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, &StackUnderflowError{}
	}

	s.sp--

	return s.addresses[s.sp], nil
}

/// Depth is the number of addresses on the stack.
///
func (s *Stack) Depth() int {
	return s.sp
}

/// Reset empties the stack.
///
func (s *Stack) Reset() {
	s.sp = 0
}
