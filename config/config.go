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

// Package config holds the emulator settings, read from a TOML file and
// layered under the command line.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/massung/chip8vm/chip8"
	"github.com/massung/chip8vm/translate"
)

// Config is everything the frontends can be told.
type Config struct {
	// Speed is the instruction rate in Hz.
	Speed int `toml:"speed"`

	// Scale is the size of one CHIP-8 pixel in window pixels.
	Scale int `toml:"scale"`

	// Seed for the random number generator, 0 seeds from the time.
	Seed uint64 `toml:"seed"`

	Colors Colors `toml:"colors"`
	Audio  Audio  `toml:"audio"`

	// Keys maps a keyboard key name to a keypad key.
	Keys map[string]int `toml:"keys"`
}

// Colors of the display, as #RRGGBB.
type Colors struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
}

// Audio settings for the buzzer.
type Audio struct {
	SampleRate int     `toml:"sample_rate"`
	Frequency  int     `toml:"frequency"`
	Volume     float64 `toml:"volume"`
}

// Color is a parsed display color.
type Color struct {
	R, G, B uint8
}

// DefaultKeys is the usual layout of the hex keypad on a QWERTY keyboard:
//
//	1 2 3 C     1 2 3 4
//	4 5 6 D     Q W E R
//	7 8 9 E     A S D F
//	A 0 B F     Z X C V
var DefaultKeys = map[string]int{
	"X": 0x0,
	"1": 0x1,
	"2": 0x2,
	"3": 0x3,
	"Q": 0x4,
	"W": 0x5,
	"E": 0x6,
	"A": 0x7,
	"S": 0x8,
	"D": 0x9,
	"Z": 0xA,
	"C": 0xB,
	"4": 0xC,
	"R": 0xD,
	"F": 0xE,
	"V": 0xF,
}

// Default returns the settings used when there is no config file.
func Default() *Config {
	keys := make(map[string]int, len(DefaultKeys))
	for name, key := range DefaultKeys {
		keys[name] = key
	}

	return &Config{
		Speed: chip8.DefaultSpeed,
		Scale: 5,
		Colors: Colors{
			Background: "#8F9185",
			Foreground: "#111D2B",
		},
		Audio: Audio{
			SampleRate: 22050,
			Frequency:  440,
			Volume:     0.25,
		},
		Keys: keys,
	}
}

// Load reads a TOML file over the defaults. A [keys] table replaces the
// default key map entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	// decoding merges maps, start with an empty one
	cfg.Keys = nil

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return nil, errors.New(translate.From("%s: unknown settings %s", path, strings.Join(keys, ", ")))
	}

	if cfg.Keys == nil {
		cfg.Keys = Default().Keys
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every setting is usable.
func (c *Config) Validate() error {
	if c.Speed < chip8.MinSpeed || c.Speed > chip8.MaxSpeed {
		return errors.New(translate.From("speed %d outside of %d..%d", c.Speed, chip8.MinSpeed, chip8.MaxSpeed))
	}
	if c.Scale < 1 || c.Scale > 20 {
		return errors.New(translate.From("scale %d outside of 1..20", c.Scale))
	}

	if _, err := ParseColor(c.Colors.Background); err != nil {
		return err
	}
	if _, err := ParseColor(c.Colors.Foreground); err != nil {
		return err
	}

	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 96000 {
		return errors.New(translate.From("audio sample rate %d outside of 8000..96000", c.Audio.SampleRate))
	}
	if c.Audio.Frequency < 20 || c.Audio.Frequency > c.Audio.SampleRate/2 {
		return errors.New(translate.From("audio frequency %d outside of 20..%d", c.Audio.Frequency, c.Audio.SampleRate/2))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.New(translate.From("audio volume %g outside of 0..1", c.Audio.Volume))
	}

	return c.validateKeys()
}

func (c *Config) validateKeys() error {
	if len(c.Keys) == 0 {
		return errors.New(translate.From("no keys mapped"))
	}

	// sorted for a stable error
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if key := c.Keys[name]; key < 0 || key >= chip8.KeyCount {
			return &chip8.InvalidKeyError{Key: key}
		}
		if name == "" {
			return errors.New(translate.From("empty key name"))
		}
	}

	return nil
}

// ParseColor parses a #RRGGBB color.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return Color{}, errors.New(translate.From("bad color %q, want #RRGGBB", s))
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.New(translate.From("bad color %q, want #RRGGBB", s))
	}

	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb)}, nil
}

// Background returns the parsed background color. Validate has already
// rejected a bad one.
func (c *Config) Background() Color {
	color, _ := ParseColor(c.Colors.Background)
	return color
}

// Foreground returns the parsed pixel color.
func (c *Config) Foreground() Color {
	color, _ := ParseColor(c.Colors.Foreground)
	return color
}
