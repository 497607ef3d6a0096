// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"io"

	"github.com/Thermoquad/irstat/internal/logging"
	"github.com/Thermoquad/irstat/pkg/daikin"
	"github.com/spf13/cobra"
)

var showStats bool

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a capture into frames, checksums and settings",
	Long: `Read a complete capture and print its decode in human-readable form.

The report shows, for each of the three frames, the bits in 8-bit groups and
the bytes they spell, then whether each frame checksum matched, then the
settings carried by the message.

A frame too short to hold a checksum byte, or a capture that does not split
into exactly three frames, aborts the decode with a non-zero exit status.`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&showStats, "stats", false, "Print capture statistics after the report")
}

func runDecode(cmd *cobra.Command, args []string) error {
	samples, skipped, err := OpenAndReadCapture()
	if err != nil {
		return err
	}

	return decodeCapture(cmd.OutOrStdout(), samples, skipped, newStyler(cfg.Color), showStats)
}

// decodeCapture analyzes samples and writes the report to out
func decodeCapture(out io.Writer, samples []daikin.Sample, skipped int, st daikin.Styler, stats bool) error {
	report, err := daikin.Analyze(samples)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	report.Stats.AddSkipped(skipped)

	for _, f := range report.Frames {
		logging.LogFrame(f.Index, f.Samples, f.Bits.String(), f.Checksum.Matched)
	}

	fmt.Fprint(out, daikin.FormatReport(report, st))
	if stats {
		fmt.Fprint(out, "\n"+report.Stats.String())
	}
	return nil
}
