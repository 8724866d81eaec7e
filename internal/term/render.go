// internal/term/render.go
//
// Rendering of scored guesses.
//
// Each Feedback maps to an SGR (Select Graphic Rendition) parameter string,
// e.g. "1" for bold or "1;32" for bold green. Styled letters are
// concatenated with no separators.

package term

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

const (
	csi   = "\x1b["
	reset = "\x1b[0m"
)

var ErrSGR = errors.New("invalid SGR parameters")

// Palette holds the SGR parameters used for each feedback.
// An empty entry prints the letter unstyled.
type Palette struct {
	Correct string
	Present string
	Absent  string
}

// DefaultPalette: bold for correct, italic for present, dim for absent.
var DefaultPalette = Palette{Correct: "1", Present: "3", Absent: "2"}

// Plain disables all styling.
var Plain = Palette{}

// ParseSGR validates a list of SGR parameters such as "1;32" or "38;5;208".
// Surrounding whitespace is trimmed; an empty string is allowed.
func ParseSGR(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, part := range strings.Split(s, ";") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return "", fmt.Errorf("%w: %q", ErrSGR, s)
		}
	}
	return s, nil
}

// Renderer turns scored words into display strings.
type Renderer struct {
	palette Palette
}

// NewRenderer returns a Renderer using p.
func NewRenderer(p Palette) *Renderer {
	return &Renderer{palette: p}
}

// Render returns the styled letters of sw. Letters without feedback are
// printed bare.
func (r *Renderer) Render(sw game.ScoredWord) string {
	var b strings.Builder
	for _, s := range sw {
		sgr := r.style(s.Feedback)
		if sgr == "" {
			b.WriteByte(byte(s.Letter))
			continue
		}
		b.WriteString(csi)
		b.WriteString(sgr)
		b.WriteByte('m')
		b.WriteByte(byte(s.Letter))
		b.WriteString(reset)
	}
	return b.String()
}

func (r *Renderer) style(f game.Feedback) string {
	switch f {
	case game.Correct:
		return r.palette.Correct
	case game.Present:
		return r.palette.Present
	case game.Absent:
		return r.palette.Absent
	}
	return ""
}
