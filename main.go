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
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/massung/chip8vm/chip8"
	"github.com/massung/chip8vm/config"
	"github.com/massung/chip8vm/logger"
	"github.com/massung/chip8vm/statsview"
	"github.com/massung/chip8vm/terminal"
	"github.com/massung/chip8vm/tone"
	"github.com/massung/chip8vm/wavwriter"
)

var (
	/// The CHIP-8 virtual machine and the clock driving it.
	///
	VM    *chip8.CHIP_8
	Clock *chip8.Clock

	/// Settings from the config file and command line.
	///
	Config *config.Config

	/// Log of recent messages shown in the debug panel.
	///
	Log *logger.Logger

	/// File is the path of the loaded ROM.
	///
	File string

	/// Recorder of the buzzer, if -wav was given.
	///
	Recorder *wavwriter.WavWriter

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer
)

func init() {
	runtime.LockOSThread()
}

func main() {
	romFlag := flag.String("rom", "", "ROM file to load")
	configFlag := flag.String("config", "", "TOML config file")
	termFlag := flag.Bool("term", false, "run in the terminal instead of a window")
	wavFlag := flag.String("wav", "", "record the buzzer to a WAV file")
	speedFlag := flag.Int("speed", 0, "instructions per second")
	seedFlag := flag.Uint64("seed", 0, "random number seed, 0 seeds from the time")
	scaleFlag := flag.Int("scale", 0, "window pixels per CHIP-8 pixel")
	pausedFlag := flag.Bool("paused", false, "boot paused")
	statsFlag := flag.String("statsview", "", "serve runtime stats at this address")
	verboseFlag := flag.Bool("v", false, "log every instruction")
	flag.Parse()

	if *romFlag == "" && flag.NArg() > 0 {
		*romFlag = flag.Arg(0)
	}

	if err := setup(*configFlag, *verboseFlag, *termFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// command line wins over the config file
	if *speedFlag != 0 {
		Config.Speed = *speedFlag
	}
	if *seedFlag != 0 {
		Config.Seed = *seedFlag
	}
	if *scaleFlag != 0 {
		Config.Scale = *scaleFlag
	}

	if err := Config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *statsFlag != "" {
		statsview.Launch(*statsFlag, os.Stderr)
	}

	// create a new CHIP-8 virtual machine, must happen early!
	VM = chip8.New()
	VM.Log = slog.Default()

	if Config.Seed != 0 {
		VM.Seed(Config.Seed)
	}

	Clock = chip8.NewClock(VM)
	Clock.SetSpeed(Config.Speed)
	Clock.Pause(*pausedFlag)

	if *wavFlag != "" {
		var err error

		gen := tone.New(Config.Audio.SampleRate, Config.Audio.Frequency, Config.Audio.Volume)
		if Recorder, err = wavwriter.New(*wavFlag, gen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	var err error

	if *termFlag {
		err = runTerminal(*romFlag)
	} else {
		err = runWindow(*romFlag)
	}

	if Recorder != nil {
		if werr := Recorder.EndMixing(); werr != nil {
			slog.Error("recording failed", "err", werr)
		}
	}

	if err != nil {
		slog.Error("emulation failed", "err", err)
		os.Exit(1)
	}
}

/// setup loads the config and the log. In the terminal the log can't go
/// to stderr while termbox owns the screen, so it's only buffered.
///
func setup(path string, verbose, term bool) (err error) {
	if path == "" {
		Config = config.Default()
	} else if Config, err = config.Load(path); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	Log = logger.NewLog(logger.DefaultCapacity)

	var stderr slog.Handler
	if !term {
		stderr = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	// per instruction records only go to stderr, the panel shows the code
	slog.SetDefault(slog.New(logger.NewHandler(Log, slog.LevelInfo, stderr)))

	return nil
}

/// LoadFile reads a ROM and reboots the machine with it.
///
func LoadFile(path string) error {
	if err := VM.LoadFile(path); err != nil {
		return err
	}

	File = path

	// clears any fault from the previous program
	Clock.Reset()

	if Window != nil {
		Window.SetTitle(fmt.Sprintf("CHIP-8 - %s", filepath.Base(path)))
	}

	return nil
}

func runTerminal(rom string) error {
	if rom == "" {
		return errors.New("no ROM given")
	}
	if err := LoadFile(rom); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := terminal.New(Clock, Config.Keys)
	if Recorder != nil {
		term.Recorder = Recorder
	}

	err := term.Run(ctx)

	// show what was logged while the screen was taken
	for _, line := range Log.Window(20) {
		fmt.Fprintln(os.Stderr, line)
	}

	return err
}

func runWindow(rom string) error {
	var err error

	// initialize SDL
	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return err
	}
	defer sdl.Quit()

	// the screen is 128x64 pixels with a border, the debug panels below
	scale := int32(Config.Scale)
	w := max(128*scale+20, 660)
	h := 64*scale + 190

	// create the main window and renderer
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, uint32(sdl.WINDOW_SHOWN)); err != nil {
		return err
	}
	defer Window.Destroy()

	// set the icon
	if icon, err := sdl.LoadBMP("data/chip_8.bmp"); err == nil {
		mask := sdl.MapRGB(icon.Format, 255, 0, 255)

		// create the mask color key and set the icon
		icon.SetColorKey(true, mask)
		Window.SetIcon(icon)
	}

	// set the title
	Window.SetTitle("CHIP-8")

	// initialize subsystems
	if err = InitScreen(); err != nil {
		return err
	}
	if err = InitAudio(); err != nil {
		slog.Warn("no audio", "err", err)
	}
	defer CloseAudio()

	InitFont()

	if rom != "" {
		if err := LoadFile(rom); err != nil {
			ReportError(err)
		}
	} else {
		slog.Info("press F3 to load a ROM, H for help")
	}

	// emulation and refresh rate
	clock := time.NewTicker(time.Millisecond * 2)
	video := time.NewTicker(time.Second / 60)

	defer clock.Stop()
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		select {
		case <-video.C:
			UpdateAudio()
			Refresh()
		case <-clock.C:
			Update()
		}
	}

	return nil
}

var (
	/// Dirty is set when the screen texture needs redrawing.
	///
	Dirty = true

	// last error reported to the user
	reported error
)

/// Update advances emulation to the current time.
///
func Update() {
	if File == "" {
		return
	}

	r, err := Clock.Update()

	if Recorder != nil {
		Recorder.Record(r.Ticks, VM.Buzzing())
	}

	if r.Draw || r.ModeChanged {
		Dirty = true
	}

	if err != nil && err != reported {
		reported = err

		// a program exiting on its own isn't an error
		if !errors.Is(err, chip8.ErrExit) && !errors.Is(err, chip8.ErrStopped) {
			ReportError(err)
		}
	}
}

/// StepOnce single steps while paused.
///
func StepOnce() {
	if File == "" {
		return
	}

	if _, err := Clock.StepOnce(); err != nil && err != reported {
		reported = err

		if !errors.Is(err, chip8.ErrExit) {
			ReportError(err)
		}
	}

	Dirty = true
}

/// Reset reboots the loaded program.
///
func Reset() {
	Clock.Reset()

	reported = nil
	Dirty = true
}

func Refresh() {
	Renderer.SetDrawColor(32, 42, 53, 255)
	Renderer.Clear()

	scale := int32(Config.Scale)
	w, _ := Window.GetSize()

	// frame various portions of the app
	Frame(8, 8, 128*scale+4, 64*scale+4)
	Frame(8, 64*scale+18, 146, 164)
	Frame(162, 64*scale+18, 204, 164)
	Frame(374, 64*scale+18, w-384, 164)

	// update the video screen and copy it
	if Dirty {
		RefreshScreen()
		Dirty = false
	}
	CopyScreen(10, 10, 128*scale, 64*scale)

	// debug registers, assembly and the log
	DebugRegisters(12, int(64*scale+22))
	DebugAssembly(166, int(64*scale+22))
	DebugLog(378, int(64*scale+22))

	// show the new frame
	Renderer.Present()
}

func Frame(x, y, w, h int32) {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.DrawLine(x, y, x+w, y)
	Renderer.DrawLine(x, y, x, y+h)

	// highlight
	Renderer.SetDrawColor(95, 112, 120, 255)
	Renderer.DrawLine(x+w, y, x+w, y+h)
	Renderer.DrawLine(x, y+h, x+w, y+h)
}
