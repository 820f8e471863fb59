// Package output renders validation and benchmark reports for the terminal.
package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for the different report elements.
type ColorScheme struct {
	Probe     *color.Color
	Success   *color.Color
	Error     *color.Color
	Duration  *color.Color
	Highlight *color.Color
	Dim       *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Probe:     color.New(color.FgCyan),
		Success:   color.New(color.FgGreen),
		Error:     color.New(color.FgRed, color.Bold),
		Duration:  color.New(color.FgYellow),
		Highlight: color.New(color.FgMagenta, color.Bold),
		Dim:       color.New(color.Faint),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Probe.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Duration.DisableColor()
	scheme.Highlight.DisableColor()
	scheme.Dim.DisableColor()

	return scheme
}

// SuccessIcon returns a checkmark symbol with appropriate color.
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color.
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// IsTerminal reports whether f is attached to a terminal. Colors and the
// live progress line are only used when writing to one.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
