// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package logging provides structured diagnostics for irstat.
//
// It wraps a package-level zap logger. Diagnostics go to stderr so that the
// decode report on stdout stays clean and can be piped.
//
// The level comes from, in order: the --log-level flag, the IRSTAT_LOG_LEVEL
// environment variable, the config file, and finally DefaultLevel. "off"
// disables logging entirely.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity
const LogLevelEnvVar = "IRSTAT_LOG_LEVEL"

// DefaultLevel keeps skipped-line notices visible without debug noise
const DefaultLevel = "warn"

// ParseLevel maps a level name to a zap level.
// ok is false for "off".
func ParseLevel(level string) (lvl zapcore.Level, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off", "none", "silent":
		return zapcore.InfoLevel, false, nil
	case "debug":
		return zapcore.DebugLevel, true, nil
	case "info":
		return zapcore.InfoLevel, true, nil
	case "", "warn", "warning":
		return zapcore.WarnLevel, true, nil
	case "error":
		return zapcore.ErrorLevel, true, nil
	default:
		return zapcore.WarnLevel, true, fmt.Errorf("unknown log level %q", level)
	}
}

// Initialize creates the logger at the given level.
// An empty level falls back to IRSTAT_LOG_LEVEL, then DefaultLevel.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		level = DefaultLevel
	}

	zapLevel, enabled, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if !enabled {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger, mainly for tests
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// With attaches fields to every later log entry, e.g. a run id
func With(fields ...zap.Field) {
	logger = GetLogger().With(fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSkippedLine reports a capture line that held no usable duration
func LogSkippedLine(line int, text, reason string) {
	Warn("[Skip] "+text,
		zap.Int("line", line),
		zap.String("reason", reason),
	)
}

// LogCapture logs what a capture source delivered
func LogCapture(source string, samples, skipped int) {
	Info("Capture read",
		zap.String("source", source),
		zap.Int("samples", samples),
		zap.Int("skipped_lines", skipped),
	)
}

// LogFrame logs the decode of one frame
func LogFrame(index, samples int, bits string, matched bool) {
	Debug("Frame decoded",
		zap.Int("frame", index),
		zap.Int("samples", samples),
		zap.Int("bits", len(bits)),
		zap.String("binary", bits),
		zap.Bool("checksum_ok", matched),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
