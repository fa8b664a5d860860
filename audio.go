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
	"errors"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/massung/chip8vm/tone"
)

var (
	/// Audio device the buzzer plays on, 0 when there is no audio.
	///
	AudioDevice sdl.AudioDeviceID

	// the buzzer wave and the size of the queue to keep filled
	buzzer  *tone.Generator
	latency uint32
	samples []byte
)

/// InitAudio opens an 8-bit mono device. Samples are queued from the main
/// loop, so there is no audio callback.
///
func InitAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     int32(Config.Audio.SampleRate),
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var actual sdl.AudioSpec
	var err error

	if AudioDevice, err = sdl.OpenAudioDevice("", false, spec, &actual, 0); err != nil {
		return err
	}

	if actual.Format != sdl.AUDIO_U8 || actual.Channels != 1 {
		CloseAudio()
		return errors.New("no 8-bit mono audio")
	}

	buzzer = tone.New(int(actual.Freq), Config.Audio.Frequency, Config.Audio.Volume)

	// two video frames worth of samples
	latency = uint32(actual.Freq) / 30

	// start playing immediately
	sdl.PauseAudioDevice(AudioDevice, false)

	return nil
}

/// UpdateAudio tops up the queue with the tone or silence.
///
func UpdateAudio() {
	if AudioDevice == 0 {
		return
	}

	queued := sdl.GetQueuedAudioSize(AudioDevice)
	if queued >= latency {
		return
	}

	n := int(latency - queued)
	if cap(samples) < n {
		samples = make([]byte, n)
	}

	buzzer.Fill(samples[:n], VM.Buzzing() && !Clock.Paused())

	if err := sdl.QueueAudio(AudioDevice, samples[:n]); err != nil {
		slog.Warn("audio", "err", err)
	}
}

/// CloseAudio stops the buzzer.
///
func CloseAudio() {
	if AudioDevice != 0 {
		sdl.CloseAudioDevice(AudioDevice)
		AudioDevice = 0
	}
}
