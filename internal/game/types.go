// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Letter / Word: validated, uppercase, fixed-size guesses and targets.
//   - Feedback: per-letter result of a comparison (correct/present/absent).
//   - ScoredLetter / ScoredWord: a Word annotated with Feedback.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the number of letters in every word.
	Size = 5
	// MaxTries is the number of guesses a player gets per game.
	MaxTries = 6
)

var (
	ErrNotAWord = errors.New("not a word")
	ErrWordSize = fmt.Errorf("word must be of size %d", Size)
)

// Letter is a single uppercase ASCII letter A–Z.
type Letter byte

// String returns the letter as a one-character string.
func (l Letter) String() string { return string(rune(l)) }

// Word is an immutable sequence of exactly Size uppercase letters.
// The zero value is not a valid word; construct with ParseWord.
type Word struct {
	letters [Size]Letter
}

// ParseWord trims s, checks that it is Size alphabetic characters and
// normalizes it to uppercase.
func ParseWord(s string) (Word, error) {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if !isAlpha(r) {
			return Word{}, fmt.Errorf("%w: %q", ErrNotAWord, s)
		}
	}
	if len(s) != Size {
		return Word{}, ErrWordSize
	}

	var w Word
	for i := 0; i < Size; i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		w.letters[i] = Letter(c)
	}
	return w, nil
}

// MustParseWord is like ParseWord but panics on invalid input.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// At returns the letter at position i.
func (w Word) At(i int) Letter { return w.letters[i] }

// Letters returns a copy of the word's letters.
func (w Word) Letters() [Size]Letter { return w.letters }

func (w Word) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, l := range w.letters {
		b.WriteByte(byte(l))
	}
	return b.String()
}

// isAlpha reports whether r is an ASCII letter (either case).
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Feedback is the evaluation result for a single letter of a guess.
// The zero value means the letter has not been evaluated.
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target at another, unclaimed position.
//   - "absent":  letter is not in the target, or all its occurrences are claimed.
type Feedback string

const (
	Correct Feedback = "correct"
	Present Feedback = "present"
	Absent  Feedback = "absent"
)

// ScoredLetter pairs a letter with its feedback.
type ScoredLetter struct {
	Letter   Letter
	Feedback Feedback
}

// Scored reports whether the letter has been evaluated.
func (s ScoredLetter) Scored() bool { return s.Feedback != "" }

// ScoredWord is a guess annotated letter by letter.
type ScoredWord [Size]ScoredLetter

// unscored returns a ScoredWord holding w's letters with no feedback set.
func unscored(w Word) ScoredWord {
	var sw ScoredWord
	for i, l := range w.letters {
		sw[i] = ScoredLetter{Letter: l}
	}
	return sw
}

// Solved reports whether every letter is Correct.
func (sw ScoredWord) Solved() bool {
	for _, s := range sw {
		if s.Feedback != Correct {
			return false
		}
	}
	return true
}

// Word returns the guessed word without feedback.
func (sw ScoredWord) Word() Word {
	var w Word
	for i, s := range sw {
		w.letters[i] = s.Letter
	}
	return w
}

// Feedbacks returns the feedback of each position in order.
func (sw ScoredWord) Feedbacks() [Size]Feedback {
	var out [Size]Feedback
	for i, s := range sw {
		out[i] = s.Feedback
	}
	return out
}

// State is a coarse representation of a game's progress.
type State string

const (
	Playing State = "playing"
	Won     State = "won"
	Lost    State = "lost"
)

// Game holds the state of a single Wordle game session.
type Game struct {
	Target    Word         // The hidden word.
	TriesLeft int          // Guesses remaining (starts at MaxTries).
	Board     []ScoredWord // Scored guesses so far, oldest first.
	Finished  bool         // True once the game is over (won or lost).
	Won       bool         // True if the game was finished with a win.
}
