// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package daikin decodes captured Daikin air conditioner infrared remote
// transmissions.
//
// A capture is a finite stream of pulse/space durations. The decoder splits
// it into the three frames of a Daikin message, turns each frame into bits,
// validates the trailing checksum byte of each frame and extracts the
// settings (power, mode, temperature, fan, swing, clock, timers) from fixed
// bit offsets.
//
// Protocol references:
//
//	http://web.archive.org/web/20170107154250/http://rdlab.cdmt.vn/project-2013/daikin-ir-protocol
//	https://github.com/blafois/Daikin-IR-Reverse
package daikin

// Timing windows in microseconds (inclusive)
var (
	MessageGapWindow  = Window{Min: 20000, Max: 40000}
	StartPeakWindow   = Window{Min: 3000, Max: 4000}
	StartTroughWindow = Window{Min: 1500, Max: 1800}
)

// BitThreshold separates a zero space (~420us) from a one space (~1300us).
// Durations strictly above it decode to 1.
const BitThreshold = 600

// Frame layout
const (
	FrameCount = 3
	ByteBits   = 8

	// Retained samples dropped from the head of every frame before bit
	// selection: start peak, start trough and the first separator pulse.
	frameArtifacts = 3
)

// Expected frame lengths in bytes, checksum included
var frameLengths = [FrameCount]int{8, 8, 19}

// frameHeader is the fixed 4-byte prefix of every frame
var frameHeader = [4]byte{0x11, 0xDA, 0x27, 0x00}

// Field bit offsets (frame 2 unless noted)
const (
	offsetPower       = 40
	offsetOnTimerSet  = 41
	offsetOffTimerSet = 42
	offsetMode        = 44
	offsetTemperature = 49
	offsetSwing       = 64
	offsetFanSpeed    = 68
	offsetOnTimer     = 80
	offsetOffTimer    = 92
	offsetPowerful    = 104
	offsetSilent      = 109

	offsetClock = 40 // frame 1

	widthMode        = 3
	widthTemperature = 6
	widthSwing       = 4
	widthFanSpeed    = 4
	widthTime        = 11
)

// Frame indexes carrying settings
const (
	clockFrame    = 1
	settingsFrame = 2
)

// Mode is the operating mode code (3 bits)
type Mode uint8

// Mode values
const (
	ModeAuto Mode = 0b000
	ModeDry  Mode = 0b010
	ModeCold Mode = 0b011
	ModeWarm Mode = 0b100
	ModeFan  Mode = 0b110
)

// FanSpeed is the fan speed code (4 bits)
type FanSpeed uint8

// Fan speed values
const (
	FanLevel1 FanSpeed = 0b0011
	FanLevel2 FanSpeed = 0b0100
	FanLevel3 FanSpeed = 0b0101
	FanLevel4 FanSpeed = 0b0110
	FanLevel5 FanSpeed = 0b0111
	FanAuto   FanSpeed = 0b1010
	FanNight  FanSpeed = 0b1011
)
