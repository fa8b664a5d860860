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

/// Opcode is a decoded 16-bit instruction word. The field views follow
/// the usual CHIP-8 notation:
///
///   Class  - c___
///   X      - _x__
///   Y      - __y_
///   N      - ___n
///   KK     - __kk
///   NNN    - _nnn
///
type Opcode uint16

/// Decode an instruction word. Every word decodes, only Resolve can
/// reject one.
///
func Decode(word uint16) Opcode {
	return Opcode(word)
}

func (op Opcode) Class() int {
	return int(op >> 12 & 0xF)
}

func (op Opcode) X() int {
	return int(op >> 8 & 0xF)
}

func (op Opcode) Y() int {
	return int(op >> 4 & 0xF)
}

func (op Opcode) N() int {
	return int(op & 0xF)
}

func (op Opcode) KK() int {
	return int(op & 0xFF)
}

func (op Opcode) NNN() int {
	return int(op & 0xFFF)
}

/// Bytes returns the big-endian encoding of the opcode.
///
func (op Opcode) Bytes() [2]byte {
	return [2]byte{byte(op >> 8), byte(op)}
}
