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
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// MaxProgramSize is the most a ROM can be (0x200-0xFFF).
	///
	MaxProgramSize = 3584

	/// FontAddress is where the 4x5 font is installed.
	///
	FontAddress = 0x050

	/// ExtendedFontAddress is where the 8x10 font is installed.
	///
	ExtendedFontAddress = 0x0A0

	/// ProgramAddress is where almost all programs begin.
	///
	ProgramAddress = 0x200

	/// ETIProgramAddress is where ETI-660 programs begin.
	///
	ETIProgramAddress = 0x600

	/// ProgramEnd is the last addressable byte.
	///
	ProgramEnd = 0xFFF

	/// ETIProgramSize is the exact size that marks a ROM as an ETI-660 image.
	///
	ETIProgramSize = ProgramEnd - ETIProgramAddress
)

/// Memory addressable by CHIP-8. The first 512 bytes are reserved for the
/// fonts and the interpreter, programs follow at ProgramIndex.
///
type Memory struct {
	ram [MemorySize]byte

	// pristine copy of ram taken after a load, used to reboot
	image [MemorySize]byte

	// first address of the program, set once by Load
	programIndex int
}

/// NewMemory returns zeroed memory with the fonts installed.
///
func NewMemory() *Memory {
	m := &Memory{programIndex: ProgramAddress}

	m.LoadFont()
	m.image = m.ram

	return m
}

/// ProgramIndex is the address the program was loaded at.
///
func (m *Memory) ProgramIndex() int {
	return m.programIndex
}

/// LoadFont installs the standard and extended fonts.
///
func (m *Memory) LoadFont() {
	copy(m.ram[FontAddress:], Font[:])
	copy(m.ram[ExtendedFontAddress:], ExtendedFont[:])
}

/// Load copies a program into memory. ROMs of exactly ETIProgramSize bytes
/// are ETI-660 images and are based at 0x600.
///
func (m *Memory) Load(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return &RomTooLargeError{Size: len(rom)}
	}

	if len(rom) == ETIProgramSize {
		m.programIndex = ETIProgramAddress
	} else {
		m.programIndex = ProgramAddress
	}

	// wipe anything left from a previous program
	for i := ProgramAddress; i < MemorySize; i++ {
		m.ram[i] = 0
	}

	copy(m.ram[m.programIndex:], rom)

	// this is the state Reset returns to
	m.image = m.ram

	return nil
}

/// Reset restores memory to how it was right after Load.
///
func (m *Memory) Reset() {
	m.ram = m.image
}

/// Read a byte.
///
func (m *Memory) Read(address int) (byte, error) {
	if address < 0 || address > ProgramEnd {
		return 0, &InvalidAddressError{Address: address}
	}

	return m.ram[address], nil
}

/// Write a byte, the value is truncated to 8 bits.
///
func (m *Memory) Write(address int, value int) error {
	if address < 0 || address > ProgramEnd {
		return &InvalidAddressError{Address: address}
	}

	m.ram[address] = byte(value & 0xFF)

	return nil
}

/// ReadInstruction fetches the big-endian instruction word at address.
/// Only addresses within the program can be executed.
///
func (m *Memory) ReadInstruction(address int) (Opcode, error) {
	if address < m.programIndex || address > ProgramEnd {
		return 0, &InvalidAddressError{Address: address}
	}

	msb, err := m.Read(address)
	if err != nil {
		return 0, err
	}

	lsb, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return Decode(uint16(msb)<<8 | uint16(lsb)), nil
}

/// Slice returns a copy of n bytes at address, clipped to the end of memory.
///
func (m *Memory) Slice(address, n int) []byte {
	if address < 0 || address >= MemorySize || n <= 0 {
		return nil
	}

	end := address + n
	if end > MemorySize {
		end = MemorySize
	}

	return append([]byte(nil), m.ram[address:end]...)
}
