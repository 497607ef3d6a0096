// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"fmt"
	"strings"
)

// Styler decorates report fragments, e.g. with terminal colours
type Styler interface {
	Header(s string) string
	OK(s string) string
	Error(s string) string
	Warning(s string) string
}

// PlainStyler leaves text untouched
type PlainStyler struct{}

func (PlainStyler) Header(s string) string  { return s }
func (PlainStyler) OK(s string) string      { return s }
func (PlainStyler) Error(s string) string   { return s }
func (PlainStyler) Warning(s string) string { return s }

// FormatReport renders the full human-readable decode of a capture
func FormatReport(r *Report, st Styler) string {
	if st == nil {
		st = PlainStyler{}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(st.Header("----------MESSAGE----------") + "\n")
	sb.WriteString(FormatFrames(r.Frames, st))
	sb.WriteString("\n")
	sb.WriteString(FormatChecksums(r.Frames, st))
	sb.WriteString("\n")
	sb.WriteString(FormatSettings(r.Settings, st))
	if len(r.Warnings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(FormatWarnings(r.Warnings, st))
	}
	sb.WriteString(st.Header("----------END----------") + "\n")
	return sb.String()
}

// FormatFrames renders each frame as 8-bit groups and as bytes
func FormatFrames(frames []FrameReport, st Styler) string {
	result := st.Header("-----BINARY-----") + "\n"
	for _, f := range frames {
		result += fmt.Sprintf("Frame %d (%d bits): %s\n", f.Index, f.Bits.Len(), f.Bits.GroupedString(ByteBits))
		result += fmt.Sprintf("Frame %d bytes: %s\n", f.Index, formatBytes(f.Bits.Bytes()))
	}
	return result
}

// FormatChecksums renders the checksum outcome of each frame
func FormatChecksums(frames []FrameReport, st Styler) string {
	result := st.Header("-----CHECKSUMS-----") + "\n"
	for _, f := range frames {
		result += FormatChecksum(f.Index, f.Checksum, st) + "\n"
	}
	return result
}

// FormatChecksum renders one checksum outcome
func FormatChecksum(index int, c ChecksumResult, st Styler) string {
	if c.Matched {
		return fmt.Sprintf("Frame %d: %s (%s)", index, st.OK("matched"), c.Expected)
	}
	return fmt.Sprintf("Frame %d: %s (expect %s, actual %s)", index, st.Error("not matched"), c.Expected, c.Actual)
}

// FormatSettings renders decoded settings
func FormatSettings(s Settings, st Styler) string {
	result := st.Header("-----SETTINGS-----") + "\n"
	result += fmt.Sprintf("Power: %t\n", s.Power)
	result += fmt.Sprintf("Temperature: %d\n", s.Temperature)
	result += fmt.Sprintf("Mode: %s\n", s.Mode)
	result += fmt.Sprintf("Fan Speed: %s\n", s.FanSpeed)
	result += "\n"
	result += fmt.Sprintf("Powerful: %t\n", s.Powerful)
	result += fmt.Sprintf("Silent: %t\n", s.Silent)
	result += fmt.Sprintf("Swing: %t\n", s.Swing)
	result += "\n"
	result += fmt.Sprintf("Time: %s\n", s.Clock)
	result += fmt.Sprintf("On Timer: %s\n", formatTimer(s.OnTimer))
	result += fmt.Sprintf("Off Timer: %s\n", formatTimer(s.OffTimer))
	return result
}

// FormatWarnings renders validation anomalies
func FormatWarnings(warnings []ValidationError, st Styler) string {
	result := st.Header("-----WARNINGS-----") + "\n"
	for _, w := range warnings {
		result += fmt.Sprintf("%s %s\n", st.Warning("["+w.Type.String()+"]"), w.Message)
	}
	return result
}

func formatTimer(t *ClockTime) string {
	if t == nil {
		return "None"
	}
	return t.String()
}

func formatBytes(data []byte) string {
	if len(data) == 0 {
		return "(none)"
	}
	return fmt.Sprintf("% X", data)
}
