package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/az-ai-labs/numtext-en/numtext"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
)

func colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + colorReset
}

// shouldUseColor respects --no-color and NO_COLOR, and only colors terminals.
func shouldUseColor(w io.Writer, noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// hint returns a fix-it line for a conversion error, or "".
func hint(err error) string {
	switch {
	case errors.Is(err, numtext.ErrUnsupportedMagnitude):
		return "numbers must be below 10^18 (up to quadrillions)"
	case errors.Is(err, numtext.ErrUnknownWord):
		return `use lowercase English number words, "and", hyphens and commas`
	case errors.Is(err, numtext.ErrMalformedInput):
		return `pass unsigned digits ("1234") or number words ("one thousand")`
	}
	return ""
}

// formatError writes a conversion error and its hint.
func formatError(w io.Writer, err error, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", colorize("Error: ", colorRed, useColor), err.Error())
	if h := hint(err); h != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", colorize("Hint: ", colorYellow, useColor), h)
	}
}
