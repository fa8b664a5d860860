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

/// handlers maps every instruction to its semantics.
///
var handlers = [InstructionCount]func(*CHIP_8, Opcode) error{
	INST_SCD:       (*CHIP_8).scd,
	INST_CLS:       (*CHIP_8).cls,
	INST_RET:       (*CHIP_8).ret,
	INST_SCR:       (*CHIP_8).scr,
	INST_SCL:       (*CHIP_8).scl,
	INST_EXIT:      (*CHIP_8).exit,
	INST_LOW:       (*CHIP_8).low,
	INST_HIGH:      (*CHIP_8).high,
	INST_JP:        (*CHIP_8).jump,
	INST_CALL:      (*CHIP_8).call,
	INST_SE_VX_KK:  (*CHIP_8).skipIf,
	INST_SNE_VX_KK: (*CHIP_8).skipIfNot,
	INST_SE_VX_VY:  (*CHIP_8).skipIfXY,
	INST_LD_VX_KK:  (*CHIP_8).loadX,
	INST_ADD_VX_KK: (*CHIP_8).addX,
	INST_LD_VX_VY:  (*CHIP_8).loadXY,
	INST_OR:        (*CHIP_8).or,
	INST_AND:       (*CHIP_8).and,
	INST_XOR:       (*CHIP_8).xor,
	INST_ADD_VX_VY: (*CHIP_8).addXY,
	INST_SUB:       (*CHIP_8).subXY,
	INST_SHR:       (*CHIP_8).shr,
	INST_SUBN:      (*CHIP_8).subYX,
	INST_SHL:       (*CHIP_8).shl,
	INST_SNE_VX_VY: (*CHIP_8).skipIfNotXY,
	INST_LD_I:      (*CHIP_8).loadI,
	INST_JP_V0:     (*CHIP_8).jumpV0,
	INST_RND:       (*CHIP_8).rnd,
	INST_DRW:       (*CHIP_8).drw,
	INST_SKP:       (*CHIP_8).skipIfPressed,
	INST_SKNP:      (*CHIP_8).skipIfNotPressed,
	INST_LD_VX_DT:  (*CHIP_8).loadXDT,
	INST_LD_VX_K:   (*CHIP_8).loadXK,
	INST_LD_DT_VX:  (*CHIP_8).loadDTX,
	INST_LD_ST_VX:  (*CHIP_8).loadSTX,
	INST_ADD_I_VX:  (*CHIP_8).addIX,
	INST_LD_F:      (*CHIP_8).loadF,
	INST_LD_HF:     (*CHIP_8).loadHF,
	INST_LD_B:      (*CHIP_8).loadB,
	INST_LD_MEM_VX: (*CHIP_8).saveRegs,
	INST_LD_VX_MEM: (*CHIP_8).loadRegs,
	INST_LD_R_VX:   (*CHIP_8).saveFlags,
	INST_LD_VX_R:   (*CHIP_8).loadFlags,
}

/// Execute the semantics of an already resolved instruction.
///
func (vm *CHIP_8) Execute(inst Instruction, op Opcode) error {
	if int(inst) >= InstructionCount {
		return &UnknownInstructionError{Opcode: op}
	}
	return handlers[inst](vm, op)
}

/// scroll the display down n rows.
///
func (vm *CHIP_8) scd(op Opcode) error {
	vm.VRAM.ScrollDown(op.N())
	return nil
}

/// clear the video display memory.
///
func (vm *CHIP_8) cls(op Opcode) error {
	vm.VRAM.Clear()
	return nil
}

/// return from subroutine.
///
func (vm *CHIP_8) ret(op Opcode) error {
	address, err := vm.Stack.Pop()
	if err != nil {
		return err
	}

	vm.Registers.SetPC(int(address))

	return nil
}

/// scroll the display right 4 pixels.
///
func (vm *CHIP_8) scr(op Opcode) error {
	vm.VRAM.ScrollRight(4)
	return nil
}

/// scroll the display left 4 pixels.
///
func (vm *CHIP_8) scl(op Opcode) error {
	vm.VRAM.ScrollLeft(4)
	return nil
}

/// exit the interpreter, the program counter stays on the 00FD.
///
func (vm *CHIP_8) exit(op Opcode) error {
	vm.Registers.SetPC(int(vm.Registers.PC()) - 2)
	return ErrExit
}

/// set low res mode.
///
func (vm *CHIP_8) low(op Opcode) error {
	vm.VRAM.SetMode(false)
	return nil
}

/// set high res mode.
///
func (vm *CHIP_8) high(op Opcode) error {
	vm.VRAM.SetMode(true)
	return nil
}

/// jump to address.
///
func (vm *CHIP_8) jump(op Opcode) error {
	vm.Registers.SetPC(op.NNN())
	return nil
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(op Opcode) error {
	if err := vm.Stack.Push(vm.Registers.PC()); err != nil {
		return err
	}

	vm.Registers.SetPC(op.NNN())

	return nil
}

/// skip next instruction if vx == n.
///
func (vm *CHIP_8) skipIf(op Opcode) error {
	if int(vm.Registers.v[op.X()]) == op.KK() {
		vm.Registers.IncrementPC()
	}
	return nil
}

/// skip next instruction if vx != n.
///
func (vm *CHIP_8) skipIfNot(op Opcode) error {
	if int(vm.Registers.v[op.X()]) != op.KK() {
		vm.Registers.IncrementPC()
	}
	return nil
}

/// skip next instruction if vx == vy.
///
func (vm *CHIP_8) skipIfXY(op Opcode) error {
	if vm.Registers.v[op.X()] == vm.Registers.v[op.Y()] {
		vm.Registers.IncrementPC()
	}
	return nil
}

/// skip next instruction if vx != vy.
///
func (vm *CHIP_8) skipIfNotXY(op Opcode) error {
	if vm.Registers.v[op.X()] != vm.Registers.v[op.Y()] {
		vm.Registers.IncrementPC()
	}
	return nil
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *CHIP_8) skipIfPressed(op Opcode) error {
	down, err := vm.Keypad.IsKeyDown(int(vm.Registers.v[op.X()]))
	if err != nil {
		return err
	}

	if down {
		vm.Registers.IncrementPC()
	}

	return nil
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *CHIP_8) skipIfNotPressed(op Opcode) error {
	down, err := vm.Keypad.IsKeyDown(int(vm.Registers.v[op.X()]))
	if err != nil {
		return err
	}

	if !down {
		vm.Registers.IncrementPC()
	}

	return nil
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(op Opcode) error {
	return vm.Registers.SetV(op.X(), op.KK())
}

/// add n to vx, vf is untouched.
///
func (vm *CHIP_8) addX(op Opcode) error {
	return vm.Registers.SetV(op.X(), int(vm.Registers.v[op.X()])+op.KK())
}

/// load vy into vx.
///
func (vm *CHIP_8) loadXY(op Opcode) error {
	vm.Registers.v[op.X()] = vm.Registers.v[op.Y()]
	return nil
}

/// or vx with vy into vx.
///
func (vm *CHIP_8) or(op Opcode) error {
	vm.Registers.v[op.X()] |= vm.Registers.v[op.Y()]
	return nil
}

/// and vx with vy into vx.
///
func (vm *CHIP_8) and(op Opcode) error {
	vm.Registers.v[op.X()] &= vm.Registers.v[op.Y()]
	return nil
}

/// xor vx with vy into vx.
///
func (vm *CHIP_8) xor(op Opcode) error {
	vm.Registers.v[op.X()] ^= vm.Registers.v[op.Y()]
	return nil
}

/// carry converts a condition into a vf value.
///
func carry(c bool) byte {
	if c {
		return 1
	}
	return 0
}

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(op Opcode) error {
	r := vm.Registers
	sum := int(r.v[op.X()]) + int(r.v[op.Y()])

	r.v[op.X()] = byte(sum)
	r.v[VF] = carry(sum > 0xFF)

	return nil
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *CHIP_8) subXY(op Opcode) error {
	r := vm.Registers
	vx, vy := r.v[op.X()], r.v[op.Y()]

	r.v[op.X()] = vx - vy
	r.v[VF] = carry(vx >= vy)

	return nil
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *CHIP_8) subYX(op Opcode) error {
	r := vm.Registers
	vx, vy := r.v[op.X()], r.v[op.Y()]

	r.v[op.X()] = vy - vx
	r.v[VF] = carry(vy >= vx)

	return nil
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *CHIP_8) shr(op Opcode) error {
	r := vm.Registers
	vx := r.v[op.X()]

	r.v[op.X()] = vx >> 1
	r.v[VF] = vx & 1

	return nil
}

/// shl vy 1 bit into vx, set carry to MSB of vy before shift. Unlike shr
/// this reads vy.
///
func (vm *CHIP_8) shl(op Opcode) error {
	r := vm.Registers
	vy := r.v[op.Y()]

	r.v[op.X()] = vy << 1
	r.v[VF] = vy >> 7

	return nil
}

/// load address register.
///
func (vm *CHIP_8) loadI(op Opcode) error {
	vm.Registers.SetI(op.NNN())
	return nil
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(op Opcode) error {
	vm.Registers.SetPC(int(vm.Registers.v[0]) + op.NNN())
	return nil
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd(op Opcode) error {
	return vm.Registers.SetV(op.X(), int(vm.rng.Uint32()&0xFF)&op.KK())
}

/// draw a sprite at I to video memory at vx, vy. Sprites wrap around the
/// edges of the screen. In extended mode n=0 draws a 16x16 sprite.
///
func (vm *CHIP_8) drw(op Opcode) error {
	r := vm.Registers
	w, h := vm.VRAM.Resolution()

	// sprite geometry
	rows, pitch := op.N(), 1

	if rows == 0 && vm.VRAM.Extended() {
		rows, pitch = ExtendedSpriteSize, vm.VRAM.SpriteWidth()/8
	}

	x, y := int(r.v[op.X()]), int(r.v[op.Y()])
	c := byte(0)

	for row := 0; row < rows; row++ {
		for col := 0; col < pitch; col++ {
			s, err := vm.Memory.Read(int(r.i) + row*pitch + col)
			if err != nil {
				return err
			}

			for bit := 0; bit < 8; bit++ {
				if s&(0x80>>bit) == 0 {
					continue
				}

				px := (x + col*8 + bit) % w
				py := (y + row) % h

				unset, err := vm.VRAM.XOR(px, py, 1)
				if err != nil {
					return err
				}

				c |= unset
			}
		}
	}

	// set carry flag if any collision occurred
	r.v[VF] = c

	return nil
}

/// load delay timer into vx.
///
func (vm *CHIP_8) loadXDT(op Opcode) error {
	return vm.Registers.SetV(op.X(), int(vm.Registers.DT()))
}

/// load vx with next key hit (blocking).
///
func (vm *CHIP_8) loadXK(op Opcode) error {
	vm.Keypad.WaitKey(op.X())
	return nil
}

/// load vx into delay timer.
///
func (vm *CHIP_8) loadDTX(op Opcode) error {
	vm.Registers.SetDT(int(vm.Registers.v[op.X()]))
	return nil
}

/// load vx into sound timer.
///
func (vm *CHIP_8) loadSTX(op Opcode) error {
	vm.Registers.SetST(int(vm.Registers.v[op.X()]))
	return nil
}

/// add vx to i.
///
func (vm *CHIP_8) addIX(op Opcode) error {
	vm.Registers.SetI(int(vm.Registers.I()) + int(vm.Registers.v[op.X()]))
	return nil
}

/// load font sprite for vx into I.
///
func (vm *CHIP_8) loadF(op Opcode) error {
	vm.Registers.SetI(FontAddress + int(vm.Registers.v[op.X()]&0xF)*5)
	return nil
}

/// load extended font sprite for vx into I.
///
func (vm *CHIP_8) loadHF(op Opcode) error {
	vm.Registers.SetI(ExtendedFontAddress + int(vm.Registers.v[op.X()]&0xF)*10)
	return nil
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(op Opcode) error {
	n := int(vm.Registers.v[op.X()])
	i := int(vm.Registers.I())

	digits := [3]int{n / 100, n / 10 % 10, n % 10}

	for d, b := range digits {
		if err := vm.Memory.Write(i+d, b); err != nil {
			return err
		}
	}

	return nil
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(op Opcode) error {
	i := int(vm.Registers.I())

	for n := 0; n <= op.X(); n++ {
		if err := vm.Memory.Write(i+n, int(vm.Registers.v[n])); err != nil {
			return err
		}
	}

	return nil
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(op Opcode) error {
	i := int(vm.Registers.I())

	for n := 0; n <= op.X(); n++ {
		b, err := vm.Memory.Read(i + n)
		if err != nil {
			return err
		}

		vm.Registers.v[n] = b
	}

	return nil
}

/// save registers v0..vx to the RPL flags, x < 8.
///
func (vm *CHIP_8) saveFlags(op Opcode) error {
	if op.X() >= FlagCount {
		return &InvalidRegisterIndexError{Index: op.X()}
	}

	for n := 0; n <= op.X(); n++ {
		if err := vm.Registers.SetFlag(n, int(vm.Registers.v[n])); err != nil {
			return err
		}
	}

	return nil
}

/// load registers v0..vx from the RPL flags, x < 8.
///
func (vm *CHIP_8) loadFlags(op Opcode) error {
	if op.X() >= FlagCount {
		return &InvalidRegisterIndexError{Index: op.X()}
	}

	for n := 0; n <= op.X(); n++ {
		b, err := vm.Registers.Flag(n)
		if err != nil {
			return err
		}

		vm.Registers.v[n] = b
	}

	return nil
}
