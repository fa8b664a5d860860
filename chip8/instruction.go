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

/// Instruction is one of the enumerated CHIP-8 and Super-CHIP
/// instructions an opcode resolves to.
///
type Instruction uint8

const (
	INST_SCD Instruction = iota
	INST_CLS
	INST_RET
	INST_SCR
	INST_SCL
	INST_EXIT
	INST_LOW
	INST_HIGH
	INST_JP
	INST_CALL
	INST_SE_VX_KK
	INST_SNE_VX_KK
	INST_SE_VX_VY
	INST_LD_VX_KK
	INST_ADD_VX_KK
	INST_LD_VX_VY
	INST_OR
	INST_AND
	INST_XOR
	INST_ADD_VX_VY
	INST_SUB
	INST_SHR
	INST_SUBN
	INST_SHL
	INST_SNE_VX_VY
	INST_LD_I
	INST_JP_V0
	INST_RND
	INST_DRW
	INST_SKP
	INST_SKNP
	INST_LD_VX_DT
	INST_LD_VX_K
	INST_LD_DT_VX
	INST_LD_ST_VX
	INST_ADD_I_VX
	INST_LD_F
	INST_LD_HF
	INST_LD_B
	INST_LD_MEM_VX
	INST_LD_VX_MEM
	INST_LD_R_VX
	INST_LD_VX_R

	/// InstructionCount is the number of instructions.
	///
	InstructionCount int = iota
)

/// pattern is the mask/value form of an instruction, eg. 8xy4 is
/// mask F00F and value 8004.
///
type pattern struct {
	mask  uint16
	value uint16
	name  string
}

/// Patterns of every instruction, indexed by Instruction. No opcode
/// matches more than one of them.
///
var patterns = [InstructionCount]pattern{
	INST_SCD:       {0xFFF0, 0x00C0, "SCD"},
	INST_CLS:       {0xFFFF, 0x00E0, "CLS"},
	INST_RET:       {0xFFFF, 0x00EE, "RET"},
	INST_SCR:       {0xFFFF, 0x00FB, "SCR"},
	INST_SCL:       {0xFFFF, 0x00FC, "SCL"},
	INST_EXIT:      {0xFFFF, 0x00FD, "EXIT"},
	INST_LOW:       {0xFFFF, 0x00FE, "LOW"},
	INST_HIGH:      {0xFFFF, 0x00FF, "HIGH"},
	INST_JP:        {0xF000, 0x1000, "JP"},
	INST_CALL:      {0xF000, 0x2000, "CALL"},
	INST_SE_VX_KK:  {0xF000, 0x3000, "SE"},
	INST_SNE_VX_KK: {0xF000, 0x4000, "SNE"},
	INST_SE_VX_VY:  {0xF00F, 0x5000, "SE"},
	INST_LD_VX_KK:  {0xF000, 0x6000, "LD"},
	INST_ADD_VX_KK: {0xF000, 0x7000, "ADD"},
	INST_LD_VX_VY:  {0xF00F, 0x8000, "LD"},
	INST_OR:        {0xF00F, 0x8001, "OR"},
	INST_AND:       {0xF00F, 0x8002, "AND"},
	INST_XOR:       {0xF00F, 0x8003, "XOR"},
	INST_ADD_VX_VY: {0xF00F, 0x8004, "ADD"},
	INST_SUB:       {0xF00F, 0x8005, "SUB"},
	INST_SHR:       {0xF00F, 0x8006, "SHR"},
	INST_SUBN:      {0xF00F, 0x8007, "SUBN"},
	INST_SHL:       {0xF00F, 0x800E, "SHL"},
	INST_SNE_VX_VY: {0xF00F, 0x9000, "SNE"},
	INST_LD_I:      {0xF000, 0xA000, "LD"},
	INST_JP_V0:     {0xF000, 0xB000, "JP"},
	INST_RND:       {0xF000, 0xC000, "RND"},
	INST_DRW:       {0xF000, 0xD000, "DRW"},
	INST_SKP:       {0xF0FF, 0xE09E, "SKP"},
	INST_SKNP:      {0xF0FF, 0xE0A1, "SKNP"},
	INST_LD_VX_DT:  {0xF0FF, 0xF007, "LD"},
	INST_LD_VX_K:   {0xF0FF, 0xF00A, "LD"},
	INST_LD_DT_VX:  {0xF0FF, 0xF015, "LD"},
	INST_LD_ST_VX:  {0xF0FF, 0xF018, "LD"},
	INST_ADD_I_VX:  {0xF0FF, 0xF01E, "ADD"},
	INST_LD_F:      {0xF0FF, 0xF029, "LD"},
	INST_LD_HF:     {0xF0FF, 0xF030, "LD"},
	INST_LD_B:      {0xF0FF, 0xF033, "LD"},
	INST_LD_MEM_VX: {0xF0FF, 0xF055, "LD"},
	INST_LD_VX_MEM: {0xF0FF, 0xF065, "LD"},
	INST_LD_R_VX:   {0xF0FF, 0xF075, "LD"},
	INST_LD_VX_R:   {0xF0FF, 0xF085, "LD"},
}

/// Name is the assembler mnemonic of the instruction.
///
func (inst Instruction) Name() string {
	if int(inst) >= InstructionCount {
		return "??"
	}
	return patterns[inst].name
}

/// Matches is true if op has the bit pattern of the instruction.
///
func (inst Instruction) Matches(op Opcode) bool {
	if int(inst) >= InstructionCount {
		return false
	}

	p := patterns[inst]

	return uint16(op)&p.mask == p.value
}

/// Resolve an opcode to the instruction it encodes.
///
func Resolve(op Opcode) (Instruction, error) {
	switch op.Class() {
	case 0x0:
		if op&0xFFF0 == 0x00C0 {
			return INST_SCD, nil
		}

		switch op.NNN() {
		case 0x0E0:
			return INST_CLS, nil
		case 0x0EE:
			return INST_RET, nil
		case 0x0FB:
			return INST_SCR, nil
		case 0x0FC:
			return INST_SCL, nil
		case 0x0FD:
			return INST_EXIT, nil
		case 0x0FE:
			return INST_LOW, nil
		case 0x0FF:
			return INST_HIGH, nil
		}
	case 0x1:
		return INST_JP, nil
	case 0x2:
		return INST_CALL, nil
	case 0x3:
		return INST_SE_VX_KK, nil
	case 0x4:
		return INST_SNE_VX_KK, nil
	case 0x5:
		if op.N() == 0 {
			return INST_SE_VX_VY, nil
		}
	case 0x6:
		return INST_LD_VX_KK, nil
	case 0x7:
		return INST_ADD_VX_KK, nil
	case 0x8:
		switch op.N() {
		case 0x0:
			return INST_LD_VX_VY, nil
		case 0x1:
			return INST_OR, nil
		case 0x2:
			return INST_AND, nil
		case 0x3:
			return INST_XOR, nil
		case 0x4:
			return INST_ADD_VX_VY, nil
		case 0x5:
			return INST_SUB, nil
		case 0x6:
			return INST_SHR, nil
		case 0x7:
			return INST_SUBN, nil
		case 0xE:
			return INST_SHL, nil
		}
	case 0x9:
		if op.N() == 0 {
			return INST_SNE_VX_VY, nil
		}
	case 0xA:
		return INST_LD_I, nil
	case 0xB:
		return INST_JP_V0, nil
	case 0xC:
		return INST_RND, nil
	case 0xD:
		return INST_DRW, nil
	case 0xE:
		switch op.KK() {
		case 0x9E:
			return INST_SKP, nil
		case 0xA1:
			return INST_SKNP, nil
		}
	case 0xF:
		switch op.KK() {
		case 0x07:
			return INST_LD_VX_DT, nil
		case 0x0A:
			return INST_LD_VX_K, nil
		case 0x15:
			return INST_LD_DT_VX, nil
		case 0x18:
			return INST_LD_ST_VX, nil
		case 0x1E:
			return INST_ADD_I_VX, nil
		case 0x29:
			return INST_LD_F, nil
		case 0x30:
			return INST_LD_HF, nil
		case 0x33:
			return INST_LD_B, nil
		case 0x55:
			return INST_LD_MEM_VX, nil
		case 0x65:
			return INST_LD_VX_MEM, nil
		case 0x75:
			return INST_LD_R_VX, nil
		case 0x85:
			return INST_LD_VX_R, nil
		}
	}

	return 0, &UnknownInstructionError{Opcode: op}
}
