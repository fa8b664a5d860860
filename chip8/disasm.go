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

import "fmt"

/// Mnemonic returns the assembly form of an opcode, eg. "ADD V3, V4".
/// Opcodes that don't resolve are "??".
///
func (op Opcode) Mnemonic() string {
	inst, err := Resolve(op)
	if err != nil {
		return "??"
	}

	// 12-bit address, byte and nibble operands
	a := op.NNN()
	b := op.KK()
	n := op.N()

	// x and y register operands
	x := op.X()
	y := op.Y()

	switch inst {
	case INST_SCD:
		return fmt.Sprintf("SCD    %d", n)
	case INST_JP, INST_CALL:
		return fmt.Sprintf("%-6s #%04X", inst.Name(), a)
	case INST_SE_VX_KK, INST_SNE_VX_KK, INST_LD_VX_KK, INST_ADD_VX_KK, INST_RND:
		return fmt.Sprintf("%-6s V%X, #%02X", inst.Name(), x, b)
	case INST_SE_VX_VY, INST_SNE_VX_VY, INST_LD_VX_VY, INST_OR, INST_AND, INST_XOR,
		INST_ADD_VX_VY, INST_SUB, INST_SHR, INST_SUBN, INST_SHL:
		return fmt.Sprintf("%-6s V%X, V%X", inst.Name(), x, y)
	case INST_LD_I:
		return fmt.Sprintf("LD     I, #%04X", a)
	case INST_JP_V0:
		return fmt.Sprintf("JP     V0, #%04X", a)
	case INST_DRW:
		return fmt.Sprintf("DRW    V%X, V%X, %d", x, y, n)
	case INST_SKP, INST_SKNP:
		return fmt.Sprintf("%-6s V%X", inst.Name(), x)
	case INST_LD_VX_DT:
		return fmt.Sprintf("LD     V%X, DT", x)
	case INST_LD_VX_K:
		return fmt.Sprintf("LD     V%X, K", x)
	case INST_LD_DT_VX:
		return fmt.Sprintf("LD     DT, V%X", x)
	case INST_LD_ST_VX:
		return fmt.Sprintf("LD     ST, V%X", x)
	case INST_ADD_I_VX:
		return fmt.Sprintf("ADD    I, V%X", x)
	case INST_LD_F:
		return fmt.Sprintf("LD     F, V%X", x)
	case INST_LD_HF:
		return fmt.Sprintf("LD     HF, V%X", x)
	case INST_LD_B:
		return fmt.Sprintf("LD     B, V%X", x)
	case INST_LD_MEM_VX:
		return fmt.Sprintf("LD     [I], V%X", x)
	case INST_LD_VX_MEM:
		return fmt.Sprintf("LD     V%X, [I]", x)
	case INST_LD_R_VX:
		return fmt.Sprintf("LD     R, V%X", x)
	case INST_LD_VX_R:
		return fmt.Sprintf("LD     V%X, R", x)
	}

	// no operands
	return inst.Name()
}

/// Disassemble the instruction at an address for the debugger.
///
func (vm *CHIP_8) Disassemble(address int) string {
	if address < 0 || address >= MemorySize-1 {
		return ""
	}

	msb, _ := vm.Memory.Read(address)
	lsb, _ := vm.Memory.Read(address + 1)

	op := Decode(uint16(msb)<<8 | uint16(lsb))

	// end of program memory?
	if op == 0 {
		return fmt.Sprintf("%04X -", address)
	}

	return fmt.Sprintf("%04X - %s", address, op.Mnemonic())
}
