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

const (
	/// RegisterCount is the number of V registers.
	///
	RegisterCount = 16

	/// VF is the flag register written by carry, borrow and collisions.
	///
	VF = 0xF

	/// FlagCount is the number of Super-CHIP RPL user flags.
	///
	FlagCount = 8
)

/// Registers holds V0..VF, I, PC and the two timers. Every write is
/// truncated to the width of the register.
///
type Registers struct {
	v  [RegisterCount]byte
	i  uint16
	pc uint16
	dt byte
	st byte

	// Super-CHIP RPL user flags (Fx75/Fx85)
	flags [FlagCount]byte
}

func validRegister(index int) error {
	if index < 0 || index >= RegisterCount {
		return &InvalidRegisterIndexError{Index: index}
	}
	return nil
}

/// V returns the value of register Vindex.
///
func (r *Registers) V(index int) (byte, error) {
	if err := validRegister(index); err != nil {
		return 0, err
	}
	return r.v[index], nil
}

/// SetV stores value & 0xFF in Vindex.
///
func (r *Registers) SetV(index int, value int) error {
	if err := validRegister(index); err != nil {
		return err
	}

	r.v[index] = byte(value & 0xFF)

	return nil
}

/// Snapshot returns a copy of V0..VF.
///
func (r *Registers) Snapshot() [RegisterCount]byte {
	return r.v
}

/// I returns the address register.
///
func (r *Registers) I() uint16 {
	return r.i
}

/// SetI stores value & 0xFFFF in the address register.
///
func (r *Registers) SetI(value int) {
	r.i = uint16(value & 0xFFFF)
}

/// PC returns the program counter.
///
func (r *Registers) PC() uint16 {
	return r.pc
}

/// SetPC stores value & 0xFFFF in the program counter.
///
func (r *Registers) SetPC(value int) {
	r.pc = uint16(value & 0xFFFF)
}

/// IncrementPC advances the program counter one instruction.
///
func (r *Registers) IncrementPC() {
	r.pc += 2
}

/// DT returns the delay timer.
///
func (r *Registers) DT() byte {
	return r.dt
}

/// SetDT stores value & 0xFF in the delay timer.
///
func (r *Registers) SetDT(value int) {
	r.dt = byte(value & 0xFF)
}

/// ST returns the sound timer.
///
func (r *Registers) ST() byte {
	return r.st
}

/// SetST stores value & 0xFF in the sound timer.
///
func (r *Registers) SetST(value int) {
	r.st = byte(value & 0xFF)
}

/// DecrementDT counts the delay timer down, stopping at zero.
///
func (r *Registers) DecrementDT() byte {
	if r.dt > 0 {
		r.dt--
	}
	return r.dt
}

/// DecrementST counts the sound timer down, stopping at zero.
///
func (r *Registers) DecrementST() byte {
	if r.st > 0 {
		r.st--
	}
	return r.st
}

/// Flag returns RPL user flag index.
///
func (r *Registers) Flag(index int) (byte, error) {
	if index < 0 || index >= FlagCount {
		return 0, &InvalidRegisterIndexError{Index: index}
	}
	return r.flags[index], nil
}

/// SetFlag stores value & 0xFF in RPL user flag index.
///
func (r *Registers) SetFlag(index int, value int) error {
	if index < 0 || index >= FlagCount {
		return &InvalidRegisterIndexError{Index: index}
	}

	r.flags[index] = byte(value & 0xFF)

	return nil
}

/// Reset zeroes all registers. The RPL flags survive a reset, like the
/// HP-48 calculator they came from.
///
func (r *Registers) Reset(pc int) {
	r.v = [RegisterCount]byte{}
	r.i = 0
	r.dt = 0
	r.st = 0
	r.SetPC(pc)
}
