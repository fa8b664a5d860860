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

// Package wavwriter records the buzzer to a WAV file. Samples are buffered
// in memory in their entirety and written to disk when recording ends.
package wavwriter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/youpy/go-wav"

	"github.com/massung/chip8vm/chip8"
	"github.com/massung/chip8vm/tone"
	"github.com/massung/chip8vm/translate"
)

// WavWriter turns 60 Hz timer ticks into tone samples.
type WavWriter struct {
	filename string
	tone     *tone.Generator
	buffer   []wav.Sample

	// fraction of a sample owed, scaled by the timer rate
	carry int

	// scratch space for one call to Record
	scratch []byte
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, gen *tone.Generator) (*WavWriter, error) {
	if gen == nil || gen.SampleRate <= 0 {
		return nil, errors.New(translate.From("wavwriter: bad sample rate"))
	}

	aw := &WavWriter{
		filename: filename,
		tone:     gen,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// Record the buzzer for a number of timer ticks.
func (aw *WavWriter) Record(ticks int, buzzing bool) {
	if ticks <= 0 {
		return
	}

	aw.carry += ticks * aw.tone.SampleRate

	n := aw.carry / chip8.TimerRate
	aw.carry %= chip8.TimerRate

	if cap(aw.scratch) < n {
		aw.scratch = make([]byte, n)
	}

	samples := aw.scratch[:n]
	aw.tone.Fill(samples, buzzing)

	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)

		aw.buffer = append(aw.buffer, w)
	}
}

// Samples is the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Encode writes the recording as 8-bit mono PCM.
func (aw *WavWriter) Encode(w io.Writer) error {
	enc := wav.NewWriter(w, uint32(len(aw.buffer)), 1, uint32(aw.tone.SampleRate), 8)
	if enc == nil {
		return errors.New(translate.From("wavwriter: bad parameters for wav encoding"))
	}

	return enc.WriteSamples(aw.buffer)
}

// EndMixing writes the recording to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	slog.Info("writing audio", "file", aw.filename, "samples", len(aw.buffer))

	if err := aw.Encode(f); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
