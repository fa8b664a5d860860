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

// Package tone generates the CHIP-8 buzzer as unsigned 8-bit mono samples.
package tone

// Silence is the resting level of an unsigned 8-bit sample.
const Silence = 128

// Generator is a square wave oscillator.
type Generator struct {
	SampleRate int
	Frequency  int

	// amplitude either side of Silence
	amplitude int

	// samples into the current second
	phase int
}

// New returns a generator, volume is 0..1.
func New(sampleRate, frequency int, volume float64) *Generator {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	return &Generator{
		SampleRate: sampleRate,
		Frequency:  frequency,
		amplitude:  int(volume * 127),
	}
}

// Fill buf with the tone when on, or with silence. The wave restarts
// at the beginning of a period whenever the buzzer is off.
func (g *Generator) Fill(buf []byte, on bool) {
	if !on || g.SampleRate <= 0 {
		for i := range buf {
			buf[i] = Silence
		}

		g.phase = 0
		return
	}

	for i := range buf {
		// which half period this sample falls in
		if g.phase*2*g.Frequency/g.SampleRate%2 == 0 {
			buf[i] = byte(Silence + g.amplitude)
		} else {
			buf[i] = byte(Silence - g.amplitude)
		}

		if g.phase++; g.phase == g.SampleRate {
			g.phase = 0
		}
	}
}
