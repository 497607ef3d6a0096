// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import "fmt"

// Polarity tells a pulse (mark) from a space
type Polarity uint8

const (
	Pulse Polarity = iota
	Space
)

func (p Polarity) String() string {
	switch p {
	case Pulse:
		return "pulse"
	case Space:
		return "space"
	default:
		return fmt.Sprintf("polarity(%d)", uint8(p))
	}
}

// Opposite returns the polarity that follows p in a well-formed stream
func (p Polarity) Opposite() Polarity {
	if p == Pulse {
		return Space
	}
	return Pulse
}

// Sample is one timed pulse or space of a capture
type Sample struct {
	Polarity Polarity
	Duration uint32 // microseconds
}

func (s Sample) String() string {
	return fmt.Sprintf("%s %d", s.Polarity, s.Duration)
}

// Window is an inclusive duration range in microseconds
type Window struct {
	Min uint32
	Max uint32
}

// InRange reports whether value lies inside w, both ends included
func InRange(value uint32, w Window) bool {
	return w.Min <= value && value <= w.Max
}

// ClassifyBit maps a bit space duration to 0 or 1
func ClassifyBit(duration uint32) uint8 {
	if duration > BitThreshold {
		return 1
	}
	return 0
}

// IsStartMarker reports whether a frame start marker (message gap, start
// peak, start trough) begins at samples[i]. Positions whose marker would run
// past the end of the stream never match.
func IsStartMarker(samples []Sample, i int) bool {
	if i < 0 || i+2 >= len(samples) {
		return false
	}
	return InRange(samples[i].Duration, MessageGapWindow) &&
		InRange(samples[i+1].Duration, StartPeakWindow) &&
		InRange(samples[i+2].Duration, StartTroughWindow)
}
