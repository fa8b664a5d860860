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
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys, built from the config.
	///
	KeyMap map[sdl.Scancode]int
)

/// InitKeys looks up the scancode of every key name in the config.
///
func InitKeys() {
	KeyMap = make(map[sdl.Scancode]int, len(Config.Keys))

	for name, key := range Config.Keys {
		code := sdl.GetScancodeFromName(name)
		if code == sdl.SCANCODE_UNKNOWN {
			slog.Warn("unknown key name", "name", name)
			continue
		}

		KeyMap[code] = key
	}
}

/// ProcessEvents from SDL and map keys to the CHIP-8 VM.
///
func ProcessEvents() bool {
	if KeyMap == nil {
		InitKeys()
	}

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			key, mapped := KeyMap[ev.Keysym.Scancode]

			if ev.Type == sdl.KEYUP {
				if mapped {
					VM.ReleaseKey(key)
				}
				continue
			}

			if mapped {
				VM.PressKey(key)
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_BACKSPACE:
				Reset()

				// holding control during reset will reboot paused
				if ev.Keysym.Mod&sdl.KMOD_CTRL != 0 {
					Clock.Pause(true)
				}
			case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
				Log.ScrollUp()
			case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
				Log.ScrollDown(LogLines)
			case sdl.SCANCODE_HOME:
				Log.Home()
			case sdl.SCANCODE_END:
				Log.End()
			case sdl.SCANCODE_F2:
				if File != "" {
					if err := LoadFile(File); err != nil {
						ReportError(err)
					}
				}
			case sdl.SCANCODE_F3:
				LoadDialog()
			case sdl.SCANCODE_H:
				DebugHelp()
			case sdl.SCANCODE_LEFTBRACKET:
				Clock.DecSpeed()
			case sdl.SCANCODE_RIGHTBRACKET:
				Clock.IncSpeed()
			case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
				Clock.Pause(!Clock.Paused())
			case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
				if Clock.Paused() {
					StepOnce()
				}
			case sdl.SCANCODE_F8:
				if Clock.Paused() {
					DebugMemory()
				}
			}
		}
	}

	return true
}
