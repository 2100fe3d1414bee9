// Package ui provides consistent styled output for the imagegen CLI.
package ui

import (
	"fmt"
	"io"
	"os"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
	colorBold   = "\033[1m"
)

// Writer prints run status lines. Status goes to out, warnings to errOut.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
	dryRun  bool
}

// NewWriter creates a Writer on stdout/stderr.
// Color is disabled when noColor is true or the NO_COLOR env var is set.
func NewWriter(noColor bool) *Writer {
	return NewWriterWithOutputs(os.Stdout, os.Stderr, noColor || os.Getenv("NO_COLOR") != "")
}

// NewWriterWithOutputs creates a Writer with custom output destinations.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	return &Writer{
		out:     out,
		errOut:  errOut,
		noColor: noColor,
	}
}

// SetDryRun marks every following status line as a dry run.
func (w *Writer) SetDryRun(dryRun bool) {
	w.dryRun = dryRun
}

// Successf prints a formatted line with a green checkmark prefix.
func (w *Writer) Successf(format string, args ...any) {
	w.line(w.out, w.styled(colorGreen, "✓"), fmt.Sprintf(format, args...))
}

// Infof prints a formatted line with a cyan prefix.
func (w *Writer) Infof(format string, args ...any) {
	w.line(w.out, w.styled(colorCyan, "info:"), fmt.Sprintf(format, args...))
}

// Warningf prints a formatted line to stderr with a yellow prefix.
func (w *Writer) Warningf(format string, args ...any) {
	w.line(w.errOut, w.styled(colorYellow, "warning:"), fmt.Sprintf(format, args...))
}

// Items prints each item indented under the previous line.
func (w *Writer) Items(items []string) {
	for _, item := range items {
		writeLine(w.out, "   ", w.styled(colorDim, item))
	}
}

// Bold returns text in bold.
func (w *Writer) Bold(text string) string {
	return w.styled(colorBold, text)
}

func (w *Writer) line(out io.Writer, prefix, msg string) {
	if w.dryRun {
		prefix += " " + w.styled(colorDim, "(dry run)")
	}

	writeLine(out, prefix, msg)
}

func (w *Writer) styled(color, text string) string {
	if w.noColor {
		return text
	}

	return color + text + colorReset
}

func writeLine(out io.Writer, prefix, msg string) {
	// Status output is best effort.
	_, _ = fmt.Fprintf(out, "%s %s\n", prefix, msg)
}
