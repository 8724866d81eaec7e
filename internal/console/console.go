// internal/console/console.go
//
// Terminal game loop.
// Responsibilities:
//   - Read one validated guess per turn from the Prompter.
//   - Score it with the game engine and print the rendered result.
//   - Report remaining tries, then the win or loss.
//
// Notes:
//   - Invalid input never reaches the engine; the Prompter reprompts.
//   - Read failures (end of input, cancellation) end the game with an error.

package console

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// WordReader supplies validated guesses.
type WordReader interface {
	ReadWord(ctx context.Context) (game.Word, error)
}

// Renderer formats a scored guess for display.
type Renderer interface {
	Render(sw game.ScoredWord) string
}

// Console bundles the I/O a game needs.
type Console struct {
	in     WordReader
	render Renderer
	out    io.Writer
}

// New constructs a Console reading guesses from in and printing to out.
func New(in WordReader, render Renderer, out io.Writer) *Console {
	return &Console{in: in, render: render, out: out}
}

// Play runs one game against target until it is won or lost.
// It returns the final state, or the state so far and an error if reading
// a guess failed.
func (c *Console) Play(ctx context.Context, target game.Word) (game.State, error) {
	g := game.New(target)
	log.Debug().Int("tries", g.TriesLeft).Msg("game started")

	for g.State() == game.Playing {
		guess, err := c.in.ReadWord(ctx)
		if err != nil {
			return g.State(), err
		}

		scored, state, err := g.Guess(guess)
		if err != nil {
			return state, err
		}
		log.Debug().
			Str("guess", guess.String()).
			Str("state", string(state)).
			Int("triesLeft", g.TriesLeft).
			Msg("guess scored")

		fmt.Fprintln(c.out, c.render.Render(scored))

		switch state {
		case game.Won:
			fmt.Fprintln(c.out, "Congrats, you won!")
		case game.Lost:
			fmt.Fprintf(c.out, "You lost! The word was %s.\n", target)
		default:
			fmt.Fprintf(c.out, "Tries left: %d\n", g.TriesLeft)
		}
	}
	return g.State(), nil
}
