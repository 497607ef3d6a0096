// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"fmt"
	"strconv"
)

// ClockTime is a time of day in minutes since midnight
type ClockTime uint16

// Hours returns the whole hours of t
func (t ClockTime) Hours() int {
	return (int(t) - t.Minutes()) / 60
}

// Minutes returns the minutes past the hour
func (t ClockTime) Minutes() int {
	return int(t) % 60
}

// String renders t as "H:M" without zero padding, e.g. "1:30" or "6:0"
func (t ClockTime) String() string {
	return fmt.Sprintf("%d:%d", t.Hours(), t.Minutes())
}

// String returns the display name of the mode
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "Auto"
	case ModeDry:
		return "Dry"
	case ModeCold:
		return "Cold"
	case ModeWarm:
		return "Warm"
	case ModeFan:
		return "Fan"
	default:
		return "Unknown"
	}
}

// Level returns the 1-5 fan level, or 0 for Auto, Night and unknown codes
func (f FanSpeed) Level() int {
	if f >= FanLevel1 && f <= FanLevel5 {
		return int(f-FanLevel1) + 1
	}
	return 0
}

// String returns the display name of the fan speed
func (f FanSpeed) String() string {
	switch {
	case f == FanAuto:
		return "Auto"
	case f == FanNight:
		return "Night"
	case f.Level() > 0:
		return strconv.Itoa(f.Level())
	default:
		return "Unknown"
	}
}

// Settings are the air conditioner settings carried by a message
type Settings struct {
	Power       bool
	Mode        Mode
	Temperature int
	FanSpeed    FanSpeed
	Swing       bool
	Powerful    bool
	Silent      bool
	Clock       ClockTime
	OnTimer     *ClockTime // nil when the on timer is not set
	OffTimer    *ClockTime // nil when the off timer is not set
}

// fieldReader reads named fields from one frame and keeps the first error
type fieldReader struct {
	frame int
	bits  Bits
	err   error
}

func (r *fieldReader) uint(name string, offset, width int) uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.bits.Uint(offset, width)
	if err != nil {
		r.err = fmt.Errorf("%w: %s in frame %d: %v", ErrFieldOutOfRange, name, r.frame, err)
		return 0
	}
	return v
}

func (r *fieldReader) flag(name string, offset int) bool {
	return r.uint(name, offset, 1) == 1
}

// DecodeSettings extracts the settings from decoded frames.
// Frame 2 carries everything but the clock, which comes from frame 1.
func DecodeSettings(frames []Bits) (Settings, error) {
	if len(frames) <= settingsFrame {
		return Settings{}, &FrameCountError{Expected: FrameCount, Got: len(frames)}
	}

	var s Settings

	f2 := &fieldReader{frame: settingsFrame, bits: frames[settingsFrame]}
	s.Power = f2.flag("power", offsetPower)
	s.Mode = Mode(f2.uint("mode", offsetMode, widthMode))
	s.Temperature = int(f2.uint("temperature", offsetTemperature, widthTemperature))
	s.Swing = f2.uint("swing", offsetSwing, widthSwing) == 0b1111
	s.FanSpeed = FanSpeed(f2.uint("fan speed", offsetFanSpeed, widthFanSpeed))
	s.Powerful = f2.flag("powerful", offsetPowerful)
	s.Silent = f2.flag("silent", offsetSilent)

	if f2.flag("on timer flag", offsetOnTimerSet) {
		t := ClockTime(f2.uint("on timer", offsetOnTimer, widthTime))
		s.OnTimer = &t
	}
	if f2.flag("off timer flag", offsetOffTimerSet) {
		t := ClockTime(f2.uint("off timer", offsetOffTimer, widthTime))
		s.OffTimer = &t
	}
	if f2.err != nil {
		return Settings{}, f2.err
	}

	f1 := &fieldReader{frame: clockFrame, bits: frames[clockFrame]}
	s.Clock = ClockTime(f1.uint("clock", offsetClock, widthTime))
	if f1.err != nil {
		return Settings{}, f1.err
	}

	return s, nil
}
