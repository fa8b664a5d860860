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

import (
	"errors"
	"fmt"
	"time"
)

const (
	/// DefaultSpeed is the instruction rate in Hz. Best estimations are the
	/// RCA 1802 could interpret 500 CHIP-8 instructions per second.
	///
	DefaultSpeed = 500

	/// MinSpeed and MaxSpeed bound SetSpeed.
	///
	MinSpeed = 50
	MaxSpeed = 5000

	/// SpeedStep is how much IncSpeed and DecSpeed change the rate.
	///
	SpeedStep = 50

	/// TimerRate is the rate in Hz the delay and sound timers count down
	/// and the screen is redrawn.
	///
	TimerRate = 60

	/// DefaultMaxCatchUp is the most wall clock time a single Advance will
	/// emulate, so a stalled host doesn't cause a huge burst.
	///
	DefaultMaxCatchUp = 250 * time.Millisecond
)

/// Report is what happened during a call to Advance.
///
type Report struct {
	/// Cycles is the number of instructions executed.
	///
	Cycles int

	/// Ticks is the number of 60 Hz timer cycles run.
	///
	Ticks int

	/// Draw is true if the screen should be redrawn.
	///
	Draw bool

	/// ModeChanged is true if the resolution changed.
	///
	ModeChanged bool
}

/// Clock drives a CHIP-8 at a fixed instruction rate and a fixed 60 Hz
/// timer rate from elapsed wall clock time. Both rates use their own
/// accumulator, measured in nanoseconds times the rate, so whole ticks are
/// drained without any rounding drift.
///
type Clock struct {
	VM *CHIP_8

	/// Now is the wall clock, replaced in tests.
	///
	Now func() time.Time

	/// MaxCatchUp caps the time a single Advance emulates.
	///
	MaxCatchUp time.Duration

	// instructions per second
	speed int

	// owed time scaled by the rate, a tick is owed per second
	cycles int64
	timers int64

	// time of the previous Update
	last    time.Time
	started bool

	paused  bool
	stopped bool

	// the first fatal error, sticky until Reset
	fault error
}

/// NewClock returns a clock driving vm at DefaultSpeed.
///
func NewClock(vm *CHIP_8) *Clock {
	return &Clock{
		VM:         vm,
		Now:        time.Now,
		MaxCatchUp: DefaultMaxCatchUp,
		speed:      DefaultSpeed,
	}
}

/// Speed returns the instruction rate in Hz.
///
func (c *Clock) Speed() int {
	return c.speed
}

/// SetSpeed changes the instruction rate, clamped to MinSpeed..MaxSpeed.
///
func (c *Clock) SetSpeed(hz int) {
	if hz < MinSpeed {
		hz = MinSpeed
	}
	if hz > MaxSpeed {
		hz = MaxSpeed
	}

	c.speed = hz
}

/// IncSpeed speeds emulation up a step.
///
func (c *Clock) IncSpeed() {
	c.SetSpeed(c.speed + SpeedStep)
}

/// DecSpeed slows emulation down a step.
///
func (c *Clock) DecSpeed() {
	c.SetSpeed(c.speed - SpeedStep)
}

/// Pause or resume emulation. Time that passes while paused is dropped.
///
func (c *Clock) Pause(paused bool) {
	c.paused = paused
}

/// Paused is true while emulation is paused.
///
func (c *Clock) Paused() bool {
	return c.paused
}

/// Hold pauses emulation and returns a func that puts back whatever
/// pause state the clock had before.
///
func (c *Clock) Hold() func() {
	paused := c.paused
	c.paused = true

	return func() {
		c.Pause(paused)
	}
}

/// Stop the clock for good, later calls to Advance return ErrStopped.
///
func (c *Clock) Stop() {
	c.stopped = true
}

func (c *Clock) Stopped() bool {
	return c.stopped
}

/// Fault returns the error that stopped emulation, if any.
///
func (c *Clock) Fault() error {
	return c.fault
}

/// Reset reboots the machine and clears any fault.
///
func (c *Clock) Reset() {
	c.VM.Reset()

	c.cycles = 0
	c.timers = 0
	c.started = false
	c.stopped = false
	c.fault = nil
}

/// Update advances the emulation by the wall clock time passed since the
/// previous call.
///
func (c *Clock) Update() (Report, error) {
	now := c.Now()

	if !c.started {
		c.started = true
		c.last = now
	}

	elapsed := now.Sub(c.last)
	c.last = now

	return c.Advance(elapsed)
}

/// Advance emulates elapsed time: every whole instruction period executes
/// one instruction and every whole 1/60 s runs one timer cycle. A fault
/// stops both and is returned from every call until Reset.
///
func (c *Clock) Advance(elapsed time.Duration) (Report, error) {
	var r Report

	if c.stopped {
		return r, ErrStopped
	}
	if c.fault != nil {
		return r, c.fault
	}
	if c.paused {
		return r, nil
	}

	if elapsed < 0 {
		elapsed = 0
	}
	if c.MaxCatchUp > 0 && elapsed > c.MaxCatchUp {
		elapsed = c.MaxCatchUp
	}

	c.cycles += int64(elapsed) * int64(c.speed)
	c.timers += int64(elapsed) * TimerRate

	for c.cycles >= int64(time.Second) {
		if c.VM.Waiting() {
			// suspended cycles aren't owed once the key arrives
			c.cycles %= int64(time.Second)
			break
		}

		c.cycles -= int64(time.Second)

		if err := c.VM.Step(); err != nil {
			return c.halt(r, err)
		}

		r.Cycles++
	}

	for c.timers >= int64(time.Second) {
		c.timers -= int64(time.Second)

		c.VM.Tick()
		r.Ticks++
	}

	r.Draw, r.ModeChanged = c.VM.VRAM.Events()

	return r, nil
}

/// StepOnce executes a single instruction regardless of pause, for
/// single stepping in a debugger.
///
func (c *Clock) StepOnce() (Report, error) {
	var r Report

	if c.stopped {
		return r, ErrStopped
	}
	if c.fault != nil {
		return r, c.fault
	}

	before := c.VM.Cycles

	if err := c.VM.Step(); err != nil {
		return c.halt(r, err)
	}

	// nothing runs while waiting for a key
	r.Cycles = int(c.VM.Cycles - before)
	r.Draw, r.ModeChanged = c.VM.VRAM.Events()

	// always show the result of a single step
	r.Draw = true

	return r, nil
}

/// halt stops the clock on an error from Step. 00FD is a clean stop, any
/// other error is a fault.
///
func (c *Clock) halt(r Report, err error) (Report, error) {
	r.Draw, r.ModeChanged = c.VM.VRAM.Events()

	if errors.Is(err, ErrExit) {
		c.stopped = true
		c.VM.Log.Info("program exited", "cycles", c.VM.Cycles)

		return r, err
	}

	c.fault = err

	var fault *Fault
	if errors.As(err, &fault) {
		c.VM.Log.Error("fault",
			"pc", fmt.Sprintf("#%04X", fault.PC),
			"opcode", fmt.Sprintf("%04X", uint16(fault.Opcode)),
			"err", fault.Err)
	} else {
		c.VM.Log.Error("fault", "err", err)
	}

	return r, err
}
