// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import "fmt"

// AnomalyType represents different kinds of capture anomalies
type AnomalyType int

const (
	AnomalyPartialByte AnomalyType = iota
	AnomalyLengthMismatch
	AnomalyHeaderMismatch
	AnomalyInvalidValue
)

func (a AnomalyType) String() string {
	switch a {
	case AnomalyPartialByte:
		return "PARTIAL_BYTE"
	case AnomalyLengthMismatch:
		return "LENGTH_MISMATCH"
	case AnomalyHeaderMismatch:
		return "HEADER_MISMATCH"
	case AnomalyInvalidValue:
		return "INVALID_VALUE"
	default:
		return "UNKNOWN"
	}
}

// ValidationError is a non-fatal anomaly found in a decoded capture
type ValidationError struct {
	Type    AnomalyType
	Frame   int
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	return v.Message
}

// Temperature range accepted in cooling and heating modes
const (
	minTemperature = 10
	maxTemperature = 32
)

// ValidateFrames checks frame structure against the Daikin layout.
// Returns a slice of validation errors (empty if all frames look sane).
func ValidateFrames(frames []Bits) []ValidationError {
	errors := []ValidationError{}
	for i, b := range frames {
		errors = append(errors, validateFrame(i, b)...)
	}
	return errors
}

func validateFrame(index int, b Bits) []ValidationError {
	errors := []ValidationError{}

	if rem := b.Len() % ByteBits; rem != 0 {
		errors = append(errors, ValidationError{
			Type:    AnomalyPartialByte,
			Frame:   index,
			Message: fmt.Sprintf("Frame %d ends with a partial byte (%d bits, %d extra)", index, b.Len(), rem),
			Details: map[string]interface{}{"bits": b.Len(), "extra": rem},
		})
	}

	data := b.Bytes()
	if index < FrameCount && len(data) != frameLengths[index] {
		errors = append(errors, ValidationError{
			Type:    AnomalyLengthMismatch,
			Frame:   index,
			Message: fmt.Sprintf("Frame %d length mismatch (%d bytes, expected %d)", index, len(data), frameLengths[index]),
			Details: map[string]interface{}{"length": len(data), "expected": frameLengths[index]},
		})
	}

	if len(data) < len(frameHeader) {
		return errors
	}
	for i, want := range frameHeader {
		if data[i] != want {
			errors = append(errors, ValidationError{
				Type:    AnomalyHeaderMismatch,
				Frame:   index,
				Message: fmt.Sprintf("Frame %d header mismatch (% X, expected % X)", index, data[:len(frameHeader)], frameHeader[:]),
				Details: map[string]interface{}{"header": data[:len(frameHeader)], "expected": frameHeader[:]},
			})
			break
		}
	}

	return errors
}

// ValidateSettings flags decoded values that no remote would send
func ValidateSettings(s Settings) []ValidationError {
	errors := []ValidationError{}

	if s.Mode.String() == "Unknown" {
		errors = append(errors, ValidationError{
			Type:    AnomalyInvalidValue,
			Frame:   settingsFrame,
			Message: fmt.Sprintf("Unknown mode code %d", uint8(s.Mode)),
			Details: map[string]interface{}{"mode": uint8(s.Mode)},
		})
	}

	if s.FanSpeed.String() == "Unknown" {
		errors = append(errors, ValidationError{
			Type:    AnomalyInvalidValue,
			Frame:   settingsFrame,
			Message: fmt.Sprintf("Unknown fan speed code %d", uint8(s.FanSpeed)),
			Details: map[string]interface{}{"fan_speed": uint8(s.FanSpeed)},
		})
	}

	// Auto and Dry carry a signed offset, Fan a fixed value
	if (s.Mode == ModeCold || s.Mode == ModeWarm) &&
		(s.Temperature < minTemperature || s.Temperature > maxTemperature) {
		errors = append(errors, ValidationError{
			Type:    AnomalyInvalidValue,
			Frame:   settingsFrame,
			Message: fmt.Sprintf("Temperature out of range (%d, valid: %d to %d)", s.Temperature, minTemperature, maxTemperature),
			Details: map[string]interface{}{"value": s.Temperature, "min": minTemperature, "max": maxTemperature},
		})
	}

	return errors
}
