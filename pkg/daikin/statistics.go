// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"fmt"
	"time"
)

// Statistics summarises a capture and how it decoded
type Statistics struct {
	// Input
	TotalSamples uint64
	Pulses       uint64
	Spaces       uint64
	SkippedLines uint64
	CaptureSpan  time.Duration // sum of all sample durations

	// Segmentation
	Markers          uint64
	DiscardedSamples uint64 // before the first marker
	Frames           uint64
	BitsPerFrame     []int

	// Validation
	ChecksumMatches    uint64
	ChecksumMismatches uint64
	PartialBytes       uint64
	LengthMismatches   uint64
	HeaderMismatches   uint64
	InvalidValues      uint64
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	return &Statistics{}
}

// AddSamples counts the samples of a capture
func (s *Statistics) AddSamples(samples []Sample) {
	for _, sample := range samples {
		s.TotalSamples++
		if sample.Polarity == Pulse {
			s.Pulses++
		} else {
			s.Spaces++
		}
		s.CaptureSpan += time.Duration(sample.Duration) * time.Microsecond
	}
}

// AddSkipped counts capture lines the parser could not read
func (s *Statistics) AddSkipped(n int) {
	s.SkippedLines += uint64(n)
}

// UpdateSegmentation records what the segmenter found
func (s *Statistics) UpdateSegmentation(seg *Segmenter, bits []Bits) {
	s.Markers = uint64(seg.Markers())
	s.DiscardedSamples = uint64(seg.Discarded())
	s.Frames = uint64(len(bits))
	s.BitsPerFrame = make([]int, len(bits))
	for i, b := range bits {
		s.BitsPerFrame[i] = b.Len()
	}
}

// Update records checksum outcomes and validation anomalies
func (s *Statistics) Update(checksums []ChecksumResult, validationErrors []ValidationError) {
	for _, c := range checksums {
		if c.Matched {
			s.ChecksumMatches++
		} else {
			s.ChecksumMismatches++
		}
	}

	for _, err := range validationErrors {
		switch err.Type {
		case AnomalyPartialByte:
			s.PartialBytes++
		case AnomalyLengthMismatch:
			s.LengthMismatches++
		case AnomalyHeaderMismatch:
			s.HeaderMismatches++
		case AnomalyInvalidValue:
			s.InvalidValues++
		}
	}
}

// Anomalies returns the total number of validation anomalies
func (s *Statistics) Anomalies() uint64 {
	return s.PartialBytes + s.LengthMismatches + s.HeaderMismatches + s.InvalidValues
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	var matchPercent float64
	if total := s.ChecksumMatches + s.ChecksumMismatches; total > 0 {
		matchPercent = float64(s.ChecksumMatches) * 100.0 / float64(total)
	}

	result := fmt.Sprintf("=== Statistics (%.1f ms captured) ===\n", float64(s.CaptureSpan.Microseconds())/1000.0)
	result += fmt.Sprintf("Samples:         %8d (%d pulses, %d spaces)\n", s.TotalSamples, s.Pulses, s.Spaces)
	if s.SkippedLines > 0 {
		result += fmt.Sprintf("Skipped Lines:   %8d\n", s.SkippedLines)
	}
	result += fmt.Sprintf("Start Markers:   %8d\n", s.Markers)
	if s.DiscardedSamples > 0 {
		result += fmt.Sprintf("Preamble:        %8d samples\n", s.DiscardedSamples)
	}
	result += fmt.Sprintf("Frames:          %8d\n", s.Frames)
	for i, n := range s.BitsPerFrame {
		result += fmt.Sprintf("  Frame %d:        %5d bits\n", i, n)
	}
	result += fmt.Sprintf("Checksums OK:    %8d (%.1f%%)\n", s.ChecksumMatches, matchPercent)
	if s.ChecksumMismatches > 0 {
		result += fmt.Sprintf("Checksum Errors: %8d\n", s.ChecksumMismatches)
	}
	if s.Anomalies() > 0 {
		result += fmt.Sprintf("Anomalies:       %8d\n", s.Anomalies())
		if s.PartialBytes > 0 {
			result += fmt.Sprintf("  Partial Byte:     %5d\n", s.PartialBytes)
		}
		if s.LengthMismatches > 0 {
			result += fmt.Sprintf("  Length Mismatch:  %5d\n", s.LengthMismatches)
		}
		if s.HeaderMismatches > 0 {
			result += fmt.Sprintf("  Header Mismatch:  %5d\n", s.HeaderMismatches)
		}
		if s.InvalidValues > 0 {
			result += fmt.Sprintf("  Invalid Value:    %5d\n", s.InvalidValues)
		}
	}
	result += "================================\n"

	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	*s = Statistics{}
}
