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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMnemonic(t *testing.T) {
	table := map[Opcode]string{
		0x00C4: "SCD    4",
		0x00E0: "CLS",
		0x00FD: "EXIT",
		0x1234: "JP     #0234",
		0x2ABC: "CALL   #0ABC",
		0x3A0F: "SE     VA, #0F",
		0xC1FF: "RND    V1, #FF",
		0x8344: "ADD    V3, V4",
		0x812E: "SHL    V1, V2",
		0xA300: "LD     I, #0300",
		0xB210: "JP     V0, #0210",
		0xD125: "DRW    V1, V2, 5",
		0xE59E: "SKP    V5",
		0xF00A: "LD     V0, K",
		0xF129: "LD     F, V1",
		0xF230: "LD     HF, V2",
		0xF355: "LD     [I], V3",
		0xF465: "LD     V4, [I]",
		0xF775: "LD     R, V7",
		0xF785: "LD     V7, R",
		0x5001: "??",
	}

	for op, want := range table {
		assert.Equal(t, want, op.Mnemonic(), "%04X", uint16(op))
	}
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	vm := boot(t, 0x6005, 0x0000, 0x5001)

	assert.Equal("0200 - LD     V5, #05", vm.Disassemble(0x200))
	assert.Equal("0202 -", vm.Disassemble(0x202))
	assert.Equal("0204 - ??", vm.Disassemble(0x204))

	// font data isn't code, but still disassembles
	assert.NotEmpty(vm.Disassemble(FontAddress))

	assert.Empty(vm.Disassemble(-1))
	assert.Empty(vm.Disassemble(ProgramEnd))
}
