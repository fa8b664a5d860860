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
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"
)

/// CHIP_8 virtual machine emulator. It owns all of the machine state and
/// is driven by one goroutine at a time; none of it is locked.
///
type CHIP_8 struct {
	/// Memory addressable by CHIP-8. The first 512 bytes are reserved
	/// for the font sprites and the interpreter.
	///
	Memory *Memory

	/// Registers V0..VF, I, PC and the delay and sound timers.
	///
	Registers *Registers

	/// Stack of subroutine return addresses.
	///
	Stack *Stack

	/// VRAM is the 64x32 (or 128x64 in extended mode) display.
	///
	VRAM *VRAM

	/// Keypad holds the current state for the 16-key pad keys.
	///
	Keypad *Keypad

	/// Cycles is how many instructions have been executed.
	///
	Cycles int64

	/// Log receives a debug record per executed instruction.
	///
	Log *slog.Logger

	// random number generator for Cxkk, and what it was seeded with
	rng  *rand.Rand
	seed uint64
}

/// New returns a CHIP-8 virtual machine with the fonts installed and no
/// program loaded. The random number generator is seeded from the time.
///
func New() *CHIP_8 {
	vm := &CHIP_8{
		Memory:    NewMemory(),
		Registers: &Registers{},
		Stack:     &Stack{},
		VRAM:      NewVRAM(),
		Keypad:    &Keypad{},
		Log:       slog.Default(),
	}

	vm.Seed(uint64(time.Now().UnixNano()))
	vm.Registers.SetPC(vm.Memory.ProgramIndex())

	return vm
}

/// Load a program into memory and reboot the machine.
///
func (vm *CHIP_8) Load(program []byte) error {
	if err := vm.Memory.Load(program); err != nil {
		return err
	}

	vm.Reset()

	vm.Log.Info("loaded rom",
		"size", len(program),
		"base", fmt.Sprintf("#%04X", vm.Memory.ProgramIndex()))

	return nil
}

/// LoadFile reads a ROM file from disk and loads it.
///
func (vm *CHIP_8) LoadFile(path string) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := vm.Load(program); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return nil
}

/// Seed the random number generator so Cxkk sequences can be replayed.
/// The generator is re-seeded with the same value on Reset.
///
func (vm *CHIP_8) Seed(seed uint64) {
	vm.seed = seed
	vm.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

/// Reset the CHIP-8 virtual machine back to the state right after the
/// program was loaded.
///
func (vm *CHIP_8) Reset() {
	vm.Memory.Reset()

	// reset registers, point at the first instruction
	vm.Registers.Reset(vm.Memory.ProgramIndex())

	vm.Stack.Reset()
	vm.Keypad.Reset()

	// back to low res, cleared
	if vm.VRAM.Extended() {
		vm.VRAM.SetMode(false)
	} else {
		vm.VRAM.Clear()
	}
	vm.VRAM.Draw()

	vm.Cycles = 0

	// replay the same random sequence
	vm.Seed(vm.seed)
}

/// Waiting is true while the machine is suspended on an Fx0A.
///
func (vm *CHIP_8) Waiting() bool {
	return vm.Keypad.IsWaiting()
}

/// SetKeyStatus reports a key edge from the outside world. When the
/// machine is waiting on Fx0A the key is written to the waiting register.
///
func (vm *CHIP_8) SetKeyStatus(key int, down bool) error {
	target, fired, err := vm.Keypad.SetKeyStatus(key, down)
	if err != nil {
		return err
	}

	if fired {
		return vm.Registers.SetV(target, key)
	}

	return nil
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *CHIP_8) PressKey(key int) error {
	return vm.SetKeyStatus(key, true)
}

/// ReleaseKey emulates a CHIP-8 key being released.
///
func (vm *CHIP_8) ReleaseKey(key int) error {
	return vm.SetKeyStatus(key, false)
}

/// Step the CHIP-8 virtual machine a single instruction. Nothing happens
/// while waiting for a key. Any error is returned as a *Fault.
///
func (vm *CHIP_8) Step() error {
	if vm.Keypad.IsWaiting() {
		return nil
	}

	pc := vm.Registers.PC()

	// fetch the next instruction
	op, err := vm.Memory.ReadInstruction(int(pc))
	if err != nil {
		return &Fault{PC: pc, Err: err}
	}

	// advance the program counter
	vm.Registers.IncrementPC()

	inst, err := Resolve(op)
	if err != nil {
		return &Fault{PC: pc, Opcode: op, Fetched: true, Err: err}
	}

	if vm.Log.Enabled(context.Background(), slog.LevelDebug) {
		vm.Log.Debug("exec",
			"pc", fmt.Sprintf("#%04X", pc),
			"opcode", fmt.Sprintf("%04X", uint16(op)),
			"inst", op.Mnemonic())
	}

	if err := vm.Execute(inst, op); err != nil {
		return &Fault{PC: pc, Opcode: op, Fetched: true, Err: err}
	}

	// increment the cycle count
	vm.Cycles += 1

	return nil
}

/// Tick counts the timers down one 60 Hz step and requests a redraw.
///
func (vm *CHIP_8) Tick() {
	vm.Registers.DecrementDT()
	vm.Registers.DecrementST()

	vm.VRAM.Draw()
}

/// Buzzing is true while the sound timer is running.
///
func (vm *CHIP_8) Buzzing() bool {
	return vm.Registers.ST() > 0
}
