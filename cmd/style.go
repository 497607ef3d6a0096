// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"os"

	"github.com/Thermoquad/irstat/internal/config"
	"github.com/Thermoquad/irstat/pkg/daikin"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// lipglossStyler colours report headers and checksum status
type lipglossStyler struct {
	header  lipgloss.Style
	ok      lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
}

func (s lipglossStyler) Header(v string) string  { return s.header.Render(v) }
func (s lipglossStyler) OK(v string) string      { return s.ok.Render(v) }
func (s lipglossStyler) Error(v string) string   { return s.err.Render(v) }
func (s lipglossStyler) Warning(v string) string { return s.warning.Render(v) }

// useColor resolves a colour mode against the stdout file descriptor
func useColor(mode string, fd int) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(fd)
	}
}

// newStyler returns the report styler for the configured colour mode
func newStyler(mode string) daikin.Styler {
	if !useColor(mode, int(os.Stdout.Fd())) {
		return daikin.PlainStyler{}
	}

	r := lipgloss.NewRenderer(os.Stdout)
	if mode == config.ColorAlways {
		// Forced colour must survive pipes
		r.SetColorProfile(termenv.ANSI256)
	}

	return lipglossStyler{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		ok: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")),
		err: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")),
		warning: r.NewStyle().
			Foreground(lipgloss.Color("11")),
	}
}
