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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massung/chip8vm/chip8"
)

func write(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chip8.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(chip8.DefaultSpeed, cfg.Speed)
	assert.Len(cfg.Keys, chip8.KeyCount)

	// every keypad key is reachable
	seen := make(map[int]bool)
	for _, key := range cfg.Keys {
		seen[key] = true
	}
	assert.Len(seen, chip8.KeyCount)

	// the defaults are copies
	cfg.Keys["X"] = 5
	assert.Equal(0, DefaultKeys["X"])
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := write(t, `
speed = 1000
seed = 42

[colors]
foreground = "#FFFFFF"

[audio]
frequency = 880

[keys]
Up = 2
Down = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(1000, cfg.Speed)
	assert.Equal(uint64(42), cfg.Seed)
	assert.Equal(880, cfg.Audio.Frequency)
	assert.Equal(Default().Audio.SampleRate, cfg.Audio.SampleRate)
	assert.Equal(Color{R: 0xFF, G: 0xFF, B: 0xFF}, cfg.Foreground())
	assert.Equal(Default().Background(), cfg.Background())

	if diff := cmp.Diff(map[string]int{"Up": 2, "Down": 8}, cfg.Keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestLoadWithoutKeys(t *testing.T) {
	cfg, err := Load(write(t, "scale = 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, DefaultKeys, cfg.Keys)
}

func TestLoadErrors(t *testing.T) {
	table := map[string]string{
		"unknown setting": "sped = 100\n",
		"bad syntax":      "speed = \n",
		"slow":            "speed = 1\n",
		"fast":            "speed = 100000\n",
		"scale":           "scale = 0\n",
		"color":           "[colors]\nbackground = \"red\"\n",
		"short color":     "[colors]\nbackground = \"#FFF\"\n",
		"frequency":       "[audio]\nfrequency = 20000\n",
		"volume":          "[audio]\nvolume = 2.0\n",
		"sample rate":     "[audio]\nsample_rate = 100\n",
	}

	for name, text := range table {
		t.Run(name, func(t *testing.T) {
			_, err := Load(write(t, text))
			assert.Error(t, err)
		})
	}
}

func TestLoadBadKey(t *testing.T) {
	_, err := Load(write(t, "[keys]\nX = 16\n"))

	var invalid *chip8.InvalidKeyError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 16, invalid.Key)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#8F9185")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x8F, G: 0x91, B: 0x85}, c)

	for _, s := range []string{"", "8F9185", "#8F918", "#GGGGGG", "#8F91850"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}
