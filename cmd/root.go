// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"os"
	"time"

	"github.com/Thermoquad/irstat/internal/config"
	"github.com/Thermoquad/irstat/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Capture source flags
	inputFile   string
	portName    string
	baudRate    int
	idleTimeout time.Duration
	maxWait     time.Duration
	inputFormat string

	// Output and diagnostics flags
	configPath string
	logLevel   string
	colorMode  string

	// Effective configuration after flags are applied
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "irstat",
	Short: "Daikin IR Capture Analyzer",
	Long: `Irstat - A CLI tool for decoding captured Daikin air conditioner remote signals.

A capture is a list of pulse/space durations in microseconds, as printed by
LIRC's mode2 tool or stored in a raw_codes block. Irstat splits it into the
three Daikin frames, checks every frame checksum and prints the settings
the remote sent (power, mode, temperature, fan, swing, clock, timers).

Capture sources:
  File:   --file capture.txt
  Stdin:  mode2 -d /dev/lirc0 | irstat decode
  Serial: --port /dev/ttyUSB0 [--baud 115200] [--idle-timeout 500ms]

Defaults are read from $XDG_CONFIG_HOME/irstat/config.yaml when present.`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Capture source flags
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "Capture file (default: stdin)")
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port of an IR receiver printing mode2 lines")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")
	rootCmd.PersistentFlags().DurationVar(&idleTimeout, "idle-timeout", 500*time.Millisecond, "Silence that ends a serial capture")
	rootCmd.PersistentFlags().DurationVar(&maxWait, "max-wait", 30*time.Second, "Time to wait for the first serial byte")
	rootCmd.PersistentFlags().StringVar(&inputFormat, "format", "auto", "Capture format: auto, mode2 or raw")

	// Output and diagnostics flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error or off (env "+logging.LogLevelEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", config.ColorAuto, "Colour output: auto, always or never")
}

// setup loads the config file, applies explicit flags over it and starts
// logging
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Flag, then environment, then config file
	level := logLevel
	if level == "" && !envLogLevelSet() {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	logging.With(zap.String("run_id", uuid.NewString()))
	logging.Debug("Configuration loaded",
		zap.String("format", cfg.Format),
		zap.String("color", cfg.Color),
		zap.String("serial_port", cfg.Serial.Port),
	)

	return nil
}

// applyFlags copies explicitly set flags over the config file values
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		c.Serial.Port = portName
	}
	if flags.Changed("baud") {
		c.Serial.Baud = baudRate
	}
	if flags.Changed("idle-timeout") {
		c.Serial.IdleTimeout = idleTimeout
	}
	if flags.Changed("max-wait") {
		c.Serial.MaxWait = maxWait
	}
	if flags.Changed("format") {
		c.Format = inputFormat
	}
	if flags.Changed("color") {
		c.Color = colorMode
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
}

func envLogLevelSet() bool {
	return os.Getenv(logging.LogLevelEnvVar) != ""
}

// Execute runs the root command
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}
