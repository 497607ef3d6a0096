// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad
//
// Irstat - Daikin IR Capture Analyzer
//
// A CLI tool for decoding captured Daikin air conditioner remote signals
// into frames, checksums and settings in human-readable format.

package main

import (
	"fmt"
	"os"

	"github.com/Thermoquad/irstat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
