// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import "fmt"

// FrameReport is the decode of one frame
type FrameReport struct {
	Index    int
	Samples  int
	Bits     Bits
	Checksum ChecksumResult
}

// Report is the full decode of a capture
type Report struct {
	Frames   []FrameReport
	Settings Settings
	Warnings []ValidationError
	Stats    *Statistics
}

// ChecksumsOK reports whether every frame checksum matched
func (r *Report) ChecksumsOK() bool {
	for _, f := range r.Frames {
		if !f.Checksum.Matched {
			return false
		}
	}
	return true
}

// DecodeCapture segments a capture, decodes each frame and checks its
// checksum. Settings are left zero.
//
// Errors:
//   - *FrameCountError when the capture does not hold exactly FrameCount frames
//   - ErrInsufficientBits (wrapped with the frame index) when a frame has no
//     checksum byte
func DecodeCapture(samples []Sample) (*Report, error) {
	stats := NewStatistics()
	stats.AddSamples(samples)

	frames, seg := segment(samples)
	bits := DecodeFrames(frames)
	stats.UpdateSegmentation(seg, bits)

	if len(frames) != FrameCount {
		return nil, &FrameCountError{Expected: FrameCount, Got: len(frames)}
	}

	report := &Report{
		Frames: make([]FrameReport, len(frames)),
		Stats:  stats,
	}
	checksums := make([]ChecksumResult, len(frames))
	for i, f := range frames {
		result, err := ConfirmChecksum(bits[i])
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		checksums[i] = result
		report.Frames[i] = FrameReport{
			Index:    f.Index,
			Samples:  len(f.Samples),
			Bits:     bits[i],
			Checksum: result,
		}
	}

	report.Warnings = ValidateFrames(bits)
	stats.Update(checksums, report.Warnings)

	return report, nil
}

// Analyze decodes a capture down to its settings
func Analyze(samples []Sample) (*Report, error) {
	report, err := DecodeCapture(samples)
	if err != nil {
		return nil, err
	}

	settings, err := DecodeSettings(report.FrameBits())
	if err != nil {
		return nil, err
	}
	report.Settings = settings

	settingsWarnings := ValidateSettings(settings)
	report.Stats.Update(nil, settingsWarnings)
	report.Warnings = append(report.Warnings, settingsWarnings...)

	return report, nil
}

// FrameBits returns the decoded bits of every frame in order
func (r *Report) FrameBits() []Bits {
	out := make([]Bits, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Bits
	}
	return out
}
