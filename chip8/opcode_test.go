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
)

func TestOpcodeFields(t *testing.T) {
	assert := assert.New(t)

	op := Decode(0xD12F)

	assert.Equal(0xD, op.Class())
	assert.Equal(0x1, op.X())
	assert.Equal(0x2, op.Y())
	assert.Equal(0xF, op.N())
	assert.Equal(0x2F, op.KK())
	assert.Equal(0x12F, op.NNN())
	assert.Equal([2]byte{0xD1, 0x2F}, op.Bytes())
}

func TestResolve(t *testing.T) {
	table := []struct {
		op   Opcode
		inst Instruction
	}{
		{0x00C5, INST_SCD},
		{0x00E0, INST_CLS},
		{0x00EE, INST_RET},
		{0x00FB, INST_SCR},
		{0x00FC, INST_SCL},
		{0x00FD, INST_EXIT},
		{0x00FE, INST_LOW},
		{0x00FF, INST_HIGH},
		{0x1ABC, INST_JP},
		{0x2ABC, INST_CALL},
		{0x3A12, INST_SE_VX_KK},
		{0x4A12, INST_SNE_VX_KK},
		{0x5AB0, INST_SE_VX_VY},
		{0x6A12, INST_LD_VX_KK},
		{0x7A12, INST_ADD_VX_KK},
		{0x8AB0, INST_LD_VX_VY},
		{0x8AB1, INST_OR},
		{0x8AB2, INST_AND},
		{0x8AB3, INST_XOR},
		{0x8AB4, INST_ADD_VX_VY},
		{0x8AB5, INST_SUB},
		{0x8AB6, INST_SHR},
		{0x8AB7, INST_SUBN},
		{0x8ABE, INST_SHL},
		{0x9AB0, INST_SNE_VX_VY},
		{0xAABC, INST_LD_I},
		{0xBABC, INST_JP_V0},
		{0xCA12, INST_RND},
		{0xDAB5, INST_DRW},
		{0xEA9E, INST_SKP},
		{0xEAA1, INST_SKNP},
		{0xFA07, INST_LD_VX_DT},
		{0xFA0A, INST_LD_VX_K},
		{0xFA15, INST_LD_DT_VX},
		{0xFA18, INST_LD_ST_VX},
		{0xFA1E, INST_ADD_I_VX},
		{0xFA29, INST_LD_F},
		{0xFA30, INST_LD_HF},
		{0xFA33, INST_LD_B},
		{0xFA55, INST_LD_MEM_VX},
		{0xFA65, INST_LD_VX_MEM},
		{0xFA75, INST_LD_R_VX},
		{0xFA85, INST_LD_VX_R},
	}

	assert.Len(t, table, InstructionCount)

	for _, entry := range table {
		inst, err := Resolve(entry.op)
		if assert.NoError(t, err, "%04X", uint16(entry.op)) {
			assert.Equal(t, entry.inst, inst, "%04X", uint16(entry.op))
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, op := range []Opcode{0x0000, 0x0123, 0x00E1, 0x5121, 0x8008, 0x800F, 0x9001, 0xE000, 0xE19F, 0xF000, 0xF1FF} {
		_, err := Resolve(op)

		var unknown *UnknownInstructionError
		if assert.True(t, errors.As(err, &unknown), "%04X", uint16(op)) {
			assert.Equal(t, op, unknown.Opcode)
		}
	}
}

// Every word resolves to at most one pattern, and Resolve agrees with it.
func TestResolveAgreesWithPatterns(t *testing.T) {
	for word := 0; word <= 0xFFFF; word++ {
		op := Decode(uint16(word))

		matched := -1

		for i := 0; i < InstructionCount; i++ {
			if !Instruction(i).Matches(op) {
				continue
			}
			if matched >= 0 {
				t.Fatalf("%04X matches %s and %s", word, Instruction(matched).Name(), Instruction(i).Name())
			}
			matched = i
		}

		inst, err := Resolve(op)

		if matched < 0 {
			if err == nil {
				t.Fatalf("%04X resolved to %s, matches nothing", word, inst.Name())
			}
			continue
		}

		if err != nil || int(inst) != matched {
			t.Fatalf("%04X resolved to %d (%v), matches %d", word, inst, err, matched)
		}
	}
}

func TestHandlerTable(t *testing.T) {
	for i, h := range handlers {
		assert.NotNil(t, h, "no handler for %s", Instruction(i).Name())
	}

	assert.Equal(t, "??", Instruction(InstructionCount).Name())
	assert.False(t, Instruction(InstructionCount).Matches(0x00E0))
}
