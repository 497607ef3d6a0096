// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		enabled bool
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, true, false},
		{"INFO", zapcore.InfoLevel, true, false},
		{"", zapcore.WarnLevel, true, false},
		{"warning", zapcore.WarnLevel, true, false},
		{"error", zapcore.ErrorLevel, true, false},
		{"off", zapcore.InfoLevel, false, false},
		{"loud", zapcore.WarnLevel, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lvl, enabled, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if lvl != tt.want || enabled != tt.enabled {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.input, lvl, enabled, tt.want, tt.enabled)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	defer SetLogger(nil)

	if err := Initialize("bogus"); err == nil {
		t.Error("Expected error for an unknown level")
	}

	if err := Initialize("off"); err != nil {
		t.Fatalf("Initialize(off) error: %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Logging should be disabled at level off")
	}

	if err := Initialize("error"); err != nil {
		t.Fatalf("Initialize(error) error: %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("Warn should be filtered at level error")
	}
}

func TestInitialize_Environment(t *testing.T) {
	defer SetLogger(nil)
	t.Setenv(LogLevelEnvVar, "debug")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("%s=debug should enable debug logging", LogLevelEnvVar)
	}
}

func TestLogSkippedLine(t *testing.T) {
	defer SetLogger(nil)
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	LogSkippedLine(7, "timeout 120000", "not a pulse or space line")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Errorf("Level = %v, want warn", e.Level)
	}
	if e.Message != "[Skip] timeout 120000" {
		t.Errorf("Message = %q", e.Message)
	}
	if e.ContextMap()["line"] != int64(7) {
		t.Errorf("line field = %v, want 7", e.ContextMap()["line"])
	}
}

func TestWith(t *testing.T) {
	defer SetLogger(nil)
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	With(zap.String("run_id", "abc"))
	LogFrame(2, 310, "1010", true)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["run_id"] != "abc" {
		t.Errorf("run_id = %v, want abc", fields["run_id"])
	}
	if fields["bits"] != int64(4) || fields["checksum_ok"] != true {
		t.Errorf("Unexpected frame fields: %v", fields)
	}
}
