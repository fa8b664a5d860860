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

	"github.com/massung/chip8vm/translate"
)

var f = translate.From

var (
	/// ErrExit is returned by Step when the program executes 00FD.
	///
	ErrExit = errors.New(f("program exited"))

	/// ErrStopped is returned by the clock once it has been stopped.
	///
	ErrStopped = errors.New(f("emulation stopped"))
)

/// InvalidAddressError is a memory access outside of the addressable range.
///
type InvalidAddressError struct {
	Address int
}

func (err *InvalidAddressError) Error() string {
	return f("invalid address #%04X", err.Address)
}

/// InvalidRegisterIndexError is a V-register index outside of V0..VF.
///
type InvalidRegisterIndexError struct {
	Index int
}

func (err *InvalidRegisterIndexError) Error() string {
	return f("invalid register index %d", err.Index)
}

/// InvalidKeyError is a keypad key outside of 0..F.
///
type InvalidKeyError struct {
	Key int
}

func (err *InvalidKeyError) Error() string {
	return f("invalid key #%X", err.Key)
}

/// RomTooLargeError is returned when a program doesn't fit in memory.
///
type RomTooLargeError struct {
	Size int
}

func (err *RomTooLargeError) Error() string {
	return f("rom too large (%d bytes, limit %d)", err.Size, MaxProgramSize)
}

/// StackOverflowError is a push onto a full call stack.
///
type StackOverflowError struct {
	Address uint16
}

func (err *StackOverflowError) Error() string {
	return f("stack overflow pushing #%04X", err.Address)
}

/// StackUnderflowError is a pop from an empty call stack.
///
type StackUnderflowError struct{}

func (err *StackUnderflowError) Error() string {
	return f("stack underflow")
}

/// PointOutOfBoundsError is a pixel outside of the current resolution.
///
type PointOutOfBoundsError struct {
	X, Y int
}

func (err *PointOutOfBoundsError) Error() string {
	return f("point (%d, %d) out of bounds", err.X, err.Y)
}

/// UnknownInstructionError is an opcode with no matching instruction.
///
type UnknownInstructionError struct {
	Opcode Opcode
}

func (err *UnknownInstructionError) Error() string {
	return f("unknown instruction %04X", uint16(err.Opcode))
}

/// Fault is a fatal error raised while executing the instruction at PC.
/// Fetched is false when the instruction itself could not be read.
///
type Fault struct {
	PC      uint16
	Opcode  Opcode
	Fetched bool
	Err     error
}

func (err *Fault) Error() string {
	if !err.Fetched {
		return f("fault at #%04X: %v", err.PC, err.Err)
	}
	return f("fault at #%04X (%04X %s): %v", err.PC, uint16(err.Opcode), err.Opcode.Mnemonic(), err.Err)
}

func (err *Fault) Unwrap() error {
	return err.Err
}
