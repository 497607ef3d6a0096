// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package mode2 reads infrared captures written as text.
//
// Two layouts are understood:
//
//	pulse 3450        LIRC mode2 output, one tagged duration per line
//	space 1750
//
//	3450 1750 430 420 LIRC raw_codes body, untagged durations that alternate
//	430 1300 ...      pulse, space, pulse, ... starting with a pulse
//
// Lines that cannot be read (timeout/carrier lines, remote names, garbage)
// are skipped and reported, they never abort a read.
package mode2

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Thermoquad/irstat/pkg/daikin"
)

// Format selects which line layouts a Reader accepts
type Format int

const (
	FormatAuto Format = iota
	FormatMode2
	FormatRaw
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatMode2:
		return "mode2"
	case FormatRaw:
		return "raw"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat parses a format name as used on the command line
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "mode2":
		return FormatMode2, nil
	case "raw":
		return FormatRaw, nil
	default:
		return FormatAuto, fmt.Errorf("unknown capture format %q (use auto, mode2 or raw)", s)
	}
}

// maxLineLength bounds a single capture line
const maxLineLength = 1024 * 1024

// SkippedLine is a capture line that held no usable duration
type SkippedLine struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (s SkippedLine) String() string {
	return fmt.Sprintf("line %d: %s (%s)", s.Line, s.Text, s.Reason)
}

// Reader turns capture text into tagged samples
type Reader struct {
	scanner *bufio.Scanner
	format  Format
	next    daikin.Polarity
	line    int
	skipped []SkippedLine

	// OnSkip, when set, is called for every skipped line as it is read
	OnSkip func(SkippedLine)
}

// NewReader creates a reader over r accepting the given format
func NewReader(r io.Reader, format Format) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Reader{
		scanner: scanner,
		format:  format,
		next:    daikin.Pulse,
	}
}

// Skipped returns the lines skipped so far
func (r *Reader) Skipped() []SkippedLine {
	return r.skipped
}

// ReadAll reads r to EOF and returns every sample in stream order
func (r *Reader) ReadAll() ([]daikin.Sample, error) {
	var samples []daikin.Sample
	for r.scanner.Scan() {
		r.line++
		samples = append(samples, r.parseLine(r.scanner.Text())...)
	}
	if err := r.scanner.Err(); err != nil {
		return samples, fmt.Errorf("failed to read capture at line %d: %w", r.line+1, err)
	}
	return samples, nil
}

// ReadSamples reads a whole capture from r
func ReadSamples(r io.Reader, format Format) ([]daikin.Sample, []SkippedLine, error) {
	reader := NewReader(r, format)
	samples, err := reader.ReadAll()
	return samples, reader.Skipped(), err
}

func (r *Reader) parseLine(text string) []daikin.Sample {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "pulse", "space":
		if r.format == FormatRaw {
			r.skip(text, "mode2 line in raw capture")
			return nil
		}
		return r.parseTagged(text, fields)
	default:
		if r.format == FormatMode2 {
			r.skip(text, "not a pulse or space line")
			return nil
		}
		return r.parseRaw(text, fields)
	}
}

func (r *Reader) parseTagged(text string, fields []string) []daikin.Sample {
	if len(fields) != 2 {
		r.skip(text, "expected keyword and duration")
		return nil
	}
	duration, err := parseDuration(fields[1])
	if err != nil {
		r.skip(text, err.Error())
		return nil
	}

	polarity := daikin.Pulse
	if strings.EqualFold(fields[0], "space") {
		polarity = daikin.Space
	}
	r.next = polarity.Opposite()
	return []daikin.Sample{{Polarity: polarity, Duration: duration}}
}

// parseRaw takes the whole line or nothing, so a line such as "name Control"
// never shifts the pulse/space alternation
func (r *Reader) parseRaw(text string, fields []string) []daikin.Sample {
	durations := make([]uint32, 0, len(fields))
	for _, field := range fields {
		d, err := parseDuration(field)
		if err != nil {
			r.skip(text, err.Error())
			return nil
		}
		durations = append(durations, d)
	}

	samples := make([]daikin.Sample, len(durations))
	for i, d := range durations {
		samples[i] = daikin.Sample{Polarity: r.next, Duration: d}
		r.next = r.next.Opposite()
	}
	return samples
}

func (r *Reader) skip(text, reason string) {
	s := SkippedLine{Line: r.line, Text: strings.TrimSpace(text), Reason: reason}
	r.skipped = append(r.skipped, s)
	if r.OnSkip != nil {
		r.OnSkip(s)
	}
}

func parseDuration(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return uint32(v), nil
}
