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
	/// ScreenWidth and ScreenHeight are the standard resolution.
	///
	ScreenWidth  = 64
	ScreenHeight = 32

	/// ExtendedScreenWidth and ExtendedScreenHeight are the Super-CHIP
	/// high resolution.
	///
	ExtendedScreenWidth  = 128
	ExtendedScreenHeight = 64

	/// SpriteWidth is the pixel width of a standard sprite row.
	///
	SpriteWidth = 8

	/// ExtendedSpriteSize is the width and height of a Dxy0 sprite in
	/// extended mode.
	///
	ExtendedSpriteSize = 16
)

/// VRAM is the monochrome frame buffer. Each byte is one pixel, 0 or 1,
/// at index y*width+x.
///
type VRAM struct {
	buffer []byte

	// current geometry
	width, height int

	// true if in the 128x64 mode
	extended bool

	// pending events for the frontend
	draw        bool
	modeChanged bool
}

/// NewVRAM returns a cleared standard resolution frame buffer.
///
func NewVRAM() *VRAM {
	v := &VRAM{}
	v.resize(false)

	return v
}

func (v *VRAM) resize(extended bool) {
	v.extended = extended

	if extended {
		v.width, v.height = ExtendedScreenWidth, ExtendedScreenHeight
	} else {
		v.width, v.height = ScreenWidth, ScreenHeight
	}

	v.buffer = make([]byte, v.width*v.height)
}

/// SetMode switches between standard and extended resolution. The buffer
/// is reallocated (cleared) and a mode change is recorded.
///
func (v *VRAM) SetMode(extended bool) {
	v.resize(extended)
	v.modeChanged = true
}

/// Extended is true in the 128x64 mode.
///
func (v *VRAM) Extended() bool {
	return v.extended
}

/// Resolution returns the width and height in pixels.
///
func (v *VRAM) Resolution() (int, int) {
	return v.width, v.height
}

/// SpriteWidth is how wide a Dxy0 sprite is in the current mode.
///
func (v *VRAM) SpriteWidth() int {
	if v.extended {
		return ExtendedSpriteSize
	}
	return SpriteWidth
}

func (v *VRAM) index(x, y int) (int, error) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return 0, &PointOutOfBoundsError{X: x, Y: y}
	}
	return y*v.width + x, nil
}

/// ToPoint converts a buffer index back into a coordinate.
///
func (v *VRAM) ToPoint(index int) (int, int) {
	return index % v.width, index / v.width
}

/// XOR a pixel bit onto the screen, returning 1 if it turned a lit
/// pixel off.
///
func (v *VRAM) XOR(x, y int, bit byte) (byte, error) {
	i, err := v.index(x, y)
	if err != nil {
		return 0, err
	}

	bit &= 1

	// was a lit pixel turned off?
	unset := v.buffer[i] & bit

	v.buffer[i] ^= bit

	return unset, nil
}

/// Pixel returns the pixel at x, y.
///
func (v *VRAM) Pixel(x, y int) (byte, error) {
	i, err := v.index(x, y)
	if err != nil {
		return 0, err
	}
	return v.buffer[i], nil
}

/// Clear the screen.
///
func (v *VRAM) Clear() {
	for i := range v.buffer {
		v.buffer[i] = 0
	}
}

/// Draw requests the frontend redraw the screen.
///
func (v *VRAM) Draw() {
	v.draw = true
}

/// Events returns and clears the pending draw and mode change requests.
///
func (v *VRAM) Events() (draw bool, modeChanged bool) {
	draw, modeChanged = v.draw, v.modeChanged

	// each event is only consumed once
	v.draw = false
	v.modeChanged = false

	return
}

/// Buffer returns a snapshot of the screen.
///
func (v *VRAM) Buffer() []byte {
	return append([]byte(nil), v.buffer...)
}

/// ScrollDown moves every row down n pixels, blank rows enter at the top.
///
func (v *VRAM) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	if n > v.height {
		n = v.height
	}

	copy(v.buffer[n*v.width:], v.buffer[:(v.height-n)*v.width])

	// clear the vacated rows
	for i := 0; i < n*v.width; i++ {
		v.buffer[i] = 0
	}
}

/// ScrollRight moves every column right n pixels.
///
func (v *VRAM) ScrollRight(n int) {
	if n <= 0 {
		return
	}
	if n > v.width {
		n = v.width
	}

	for y := 0; y < v.height; y++ {
		row := v.buffer[y*v.width : (y+1)*v.width]

		copy(row[n:], row[:v.width-n])

		for x := 0; x < n; x++ {
			row[x] = 0
		}
	}
}

/// ScrollLeft moves every column left n pixels.
///
func (v *VRAM) ScrollLeft(n int) {
	if n <= 0 {
		return
	}
	if n > v.width {
		n = v.width
	}

	for y := 0; y < v.height; y++ {
		row := v.buffer[y*v.width : (y+1)*v.width]

		copy(row, row[n:])

		for x := v.width - n; x < v.width; x++ {
			row[x] = 0
		}
	}
}
