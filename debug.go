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

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/massung/chip8vm/chip8"
)

/// LogLines is how many lines of the log the panel shows.
///
const LogLines = 16

var (
	/// Current debug window address.
	///
	Address int
)

/// Show the HELP text in the log.
///
func DebugHelp() {
	Log.Logln("Virtual keys:")
	Log.Log("  1-2-3-4")
	Log.Log("  Q-W-E-R")
	Log.Log("  A-S-D-F")
	Log.Log("  Z-X-C-V")
	Log.Logln("Emulation keys:")
	Log.Log("  ESC      - Quit")
	Log.Log("  BS       - Reboot (CTRL paused)")
	Log.Log("  F2       - Reload ROM")
	Log.Log("  F3       - Open ROM")
	Log.Log("  Up/Dn    - Scroll log")
	Log.Log("  [ / ]    - Speed -/+")
	Log.Log("  F5/SPACE - Pause")
	Log.Log("  F6/F10   - Step")
	Log.Log("  F8       - Dump memory at I")
}

/// ReportError logs err and shows it in a message box.
///
func ReportError(err error) {
	slog.Error(err.Error())

	// the box blocks, so time spent in it isn't emulated
	release := Clock.Hold()
	defer release()

	dialog.Message("%s", err.Error()).Title("CHIP-8").Error()
}

/// LoadDialog asks for a ROM to load.
///
func LoadDialog() {
	release := Clock.Hold()
	file, err := dialog.File().Filter("CHIP-8 ROMs", "ch8", "c8", "sc8").Filter("All files", "*").Title("Load ROM").Load()
	release()

	if err != nil {
		if err != dialog.ErrCancelled {
			slog.Error("open dialog", "err", err)
		}
		return
	}

	if err := LoadFile(file); err != nil {
		ReportError(err)
		return
	}

	reported = nil
	Dirty = true
}

/// DebugAssembly renders the disassembled instructions around
/// the CHIP-8 program counter.
///
func DebugAssembly(x, y int) {
	pc := int(VM.Registers.PC())

	if Address <= pc-30 || Address >= pc-2 || (Address^pc)&1 == 1 {
		Address = pc - 2
	}

	// show the disassembled instructions
	for i := 0; i < 32; i += 2 {
		if Address+i == pc {
			if Clock.Paused() {
				Renderer.SetDrawColor(176, 32, 57, 255)
			} else {
				Renderer.SetDrawColor(57, 102, 176, 255)
			}

			// highlight the current instruction
			Renderer.FillRect(&sdl.Rect{
				X: int32(x),
				Y: int32(y+i*5) - 1,
				W: 200,
				H: 10,
			})
		}

		DrawText(VM.Disassemble(Address+i), x, y+i*5)
	}
}

/// Show the current value of all the CHIP-8 registers.
///
func DebugRegisters(x, y int) {
	v := VM.Registers.Snapshot()

	for i := 0; i < chip8.RegisterCount; i++ {
		DrawText(fmt.Sprintf("  V%X - #%02X", i, v[i]), x, y+i*10)
	}

	// shift over for the other registers
	x += 98

	DrawText(fmt.Sprintf("PC - #%04X", VM.Registers.PC()), x, y)
	DrawText(fmt.Sprintf("SP - #%02X", VM.Stack.Depth()), x, y+10)
	DrawText(fmt.Sprintf("I  - #%04X", VM.Registers.I()), x, y+30)
	DrawText(fmt.Sprintf("DT - #%02X", VM.Registers.DT()), x, y+50)
	DrawText(fmt.Sprintf("ST - #%02X", VM.Registers.ST()), x, y+60)

	if r, ok := VM.Keypad.Target(); ok {
		DrawText(fmt.Sprintf("K  - V%X", r), x, y+80)
	}

	DrawText(fmt.Sprintf("%d HZ", Clock.Speed()), x, y+150)
}

/// Show the current log text.
///
func DebugLog(x, y int) {
	for _, line := range Log.Window(LogLines) {
		if len(line) >= 45 {
			DrawText(line[:42]+"...", x, y)
		} else {
			DrawText(line, x, y)
		}

		// advance to the next line
		y += 10
	}
}

/// DebugMemory dumps the memory at I to the log.
///
func DebugMemory() {
	i := int(VM.Registers.I())

	Log.Logln(fmt.Sprintf("Memory at #%04X:", i))

	for row := 0; row < 8; row++ {
		bytes := VM.Memory.Slice(i+row*8, 8)
		if len(bytes) == 0 {
			break
		}

		hex := make([]string, len(bytes))
		for n, b := range bytes {
			hex[n] = fmt.Sprintf("%02X", b)
		}

		Log.Log(fmt.Sprintf("%04X - %s", i+row*8, strings.Join(hex, " ")))
	}
}
