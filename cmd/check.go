// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Thermoquad/irstat/pkg/daikin"
	"github.com/spf13/cobra"
)

// Exit codes of the check command
const (
	exitChecksumsOK      = 0
	exitChecksumMismatch = 1
	exitDecodeError      = 2
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify frame checksums of a capture",
	Long: `Read a complete capture and verify the checksum of each of its frames.

Settings are not decoded. Useful for scripting capture quality checks, e.g.
when collecting a library of remote button captures.

Exit codes:
  0 - All frame checksums matched
  1 - At least one frame checksum did not match
  2 - Capture could not be read or decoded (wrong frame count, truncated frame)`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	samples, _, err := OpenAndReadCapture()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Capture error: %v\n", err)
		os.Exit(exitDecodeError)
	}

	os.Exit(checkCapture(cmd.OutOrStdout(), os.Stderr, samples, newStyler(cfg.Color)))
	return nil
}

// checkCapture verifies the checksums of a capture and returns the exit code
func checkCapture(out, errOut io.Writer, samples []daikin.Sample, st daikin.Styler) int {
	report, err := daikin.DecodeCapture(samples)
	if err != nil {
		var fce *daikin.FrameCountError
		switch {
		case errors.As(err, &fce):
			fmt.Fprintf(errOut, "FAILED: capture holds %d frames, expected %d\n", fce.Got, fce.Expected)
		case errors.Is(err, daikin.ErrInsufficientBits):
			fmt.Fprintf(errOut, "FAILED: truncated frame: %v\n", err)
		default:
			fmt.Fprintf(errOut, "FAILED: %v\n", err)
		}
		return exitDecodeError
	}

	for _, f := range report.Frames {
		fmt.Fprintln(out, daikin.FormatChecksum(f.Index, f.Checksum, st))
	}

	if !report.ChecksumsOK() {
		fmt.Fprintf(out, "%s: checksum mismatch\n", st.Error("FAILED"))
		return exitChecksumMismatch
	}
	fmt.Fprintf(out, "%s: all %d frame checksums matched\n", st.OK("SUCCESS"), len(report.Frames))
	return exitChecksumsOK
}
