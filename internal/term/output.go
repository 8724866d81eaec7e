package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when styling is applied.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto" // style only when writing to a terminal
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var ErrColorMode = errors.New("invalid color mode")

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrColorMode, s)
}

// Output returns the writer to print the board to and whether it should be
// styled. On Windows consoles the writer translates ANSI sequences.
func Output(f *os.File, mode ColorMode) (io.Writer, bool) {
	switch mode {
	case ColorNever:
		return f, false
	case ColorAlways:
		return colorable.NewColorable(f), true
	}
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	if !tty || os.Getenv("NO_COLOR") != "" {
		return f, false
	}
	return colorable.NewColorable(f), true
}
