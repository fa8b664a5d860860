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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/massung/chip8vm/chip8"
)

var (
	Screen *sdl.Texture
)

/// InitScreen creates the render target for the CHIP-8 video memory.
///
func InitScreen() error {
	var err error

	// big enough for the extended resolution
	w, h := int32(chip8.ExtendedScreenWidth), int32(chip8.ExtendedScreenHeight)

	// create a render target for the display
	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, w, h)

	return err
}

/// RefreshScreen with the CHIP-8 video memory.
///
func RefreshScreen() {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		return
	}

	// the background color for the screen
	bg := Config.Background()
	Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	Renderer.Clear()

	// set the pixel color
	fg := Config.Foreground()
	Renderer.SetDrawColor(fg.R, fg.G, fg.B, 255)

	// redraw only the dimensions of the video
	buffer := VM.VRAM.Buffer()

	// draw all the pixels
	for p, bit := range buffer {
		if bit != 0 {
			x, y := VM.VRAM.ToPoint(p)

			// render the pixel to the screen
			Renderer.DrawPoint(int32(x), int32(y))
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)
}

/// CopyScreen to the render target.
///
func CopyScreen(x, y, w, h int32) {
	vw, vh := VM.VRAM.Resolution()

	// source area of the screen target
	src := sdl.Rect{
		W: int32(vw),
		H: int32(vh),
	}

	// stretch the render target to fit
	Renderer.Copy(Screen, &src, &sdl.Rect{X: x, Y: y, W: w, H: h})
}
