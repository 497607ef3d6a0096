// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Thermoquad/irstat/internal/config"
	"github.com/Thermoquad/irstat/internal/logging"
	"github.com/Thermoquad/irstat/pkg/daikin"
	"github.com/Thermoquad/irstat/pkg/mode2"
	"go.bug.st/serial"
	"go.uber.org/zap"
)

// ErrNoCapture is returned when a serial receiver sends nothing before
// the max wait elapses
var ErrNoCapture = errors.New("no capture received")

// CaptureSource is a finite stream of capture text
type CaptureSource = io.ReadCloser

// SerialCapture reads one capture from a serial IR receiver.
// The capture ends, with io.EOF, at the first read timeout after data has
// started to arrive. The port must return (0, nil) when its read timeout
// elapses, as go.bug.st/serial ports do.
type SerialCapture struct {
	port    io.ReadCloser
	maxWait time.Duration
	opened  time.Time
	started bool
	done    bool
}

func newSerialCapture(port io.ReadCloser, maxWait time.Duration) *SerialCapture {
	return &SerialCapture{
		port:    port,
		maxWait: maxWait,
		opened:  time.Now(),
	}
}

func (s *SerialCapture) Read(p []byte) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	for {
		n, err := s.port.Read(p)
		if err != nil {
			return n, err
		}
		if n > 0 {
			s.started = true
			return n, nil
		}

		// Read timeout with no data
		if s.started {
			s.done = true
			return 0, io.EOF
		}
		if time.Since(s.opened) >= s.maxWait {
			return 0, fmt.Errorf("%w within %s", ErrNoCapture, s.maxWait)
		}
	}
}

func (s *SerialCapture) Close() error {
	return s.port.Close()
}

// OpenSerialCapture opens a serial port and returns it as a capture source
func OpenSerialCapture(c config.SerialConfig) (CaptureSource, error) {
	mode := &serial.Mode{
		BaudRate: c.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(c.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", c.Port, err)
	}
	if err := port.SetReadTimeout(c.IdleTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", c.Port, err)
	}

	return newSerialCapture(port, c.MaxWait), nil
}

// OpenSource opens the capture source selected by flags and config.
// A file wins over a serial port; with neither, stdin is read.
func OpenSource() (CaptureSource, string, error) {
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open capture file: %w", err)
		}
		return f, fmt.Sprintf("File: %s", inputFile), nil
	}

	if cfg.Serial.Port != "" {
		src, err := OpenSerialCapture(cfg.Serial)
		if err != nil {
			return nil, "", err
		}
		return src, fmt.Sprintf("Serial: %s @ %d baud", cfg.Serial.Port, cfg.Serial.Baud), nil
	}

	return io.NopCloser(os.Stdin), "Stdin", nil
}

// ReadCapture parses a whole capture from src, logging skipped lines
func ReadCapture(src io.Reader, format string) ([]daikin.Sample, int, error) {
	f, err := mode2.ParseFormat(format)
	if err != nil {
		return nil, 0, err
	}

	reader := mode2.NewReader(src, f)
	reader.OnSkip = func(s mode2.SkippedLine) {
		logging.LogSkippedLine(s.Line, s.Text, s.Reason)
	}

	samples, err := reader.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	return samples, len(reader.Skipped()), nil
}

// OpenAndReadCapture opens the selected source and reads it to the end
func OpenAndReadCapture() ([]daikin.Sample, int, error) {
	src, info, err := OpenSource()
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	if cfg.Serial.Port != "" && inputFile == "" {
		fmt.Fprintf(os.Stderr, "Waiting for capture on %s (press the remote button)...\n", cfg.Serial.Port)
	}

	samples, skipped, err := ReadCapture(src, cfg.Format)
	if err != nil {
		return nil, 0, err
	}
	logging.LogCapture(info, len(samples), skipped)
	if len(samples) == 0 {
		logging.Warn("Capture is empty", zap.String("source", info))
	}
	return samples, skipped, nil
}
