package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Prompter reads guesses line by line, reprompting until a line parses as a
// game.Word. A Prompter must not be reused once a ReadWord call has returned
// because its context was done.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewPrompter reads from in, writes prompts to out and validation errors to
// errOut.
func NewPrompter(in io.Reader, out, errOut io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, errOut: errOut}
}

type lineResult struct {
	line string
	err  error
}

// ReadWord prompts until a valid word is entered.
// Returns io.EOF (wrapped) when input ends, or ctx.Err() once ctx is done.
func (p *Prompter) ReadWord(ctx context.Context) (game.Word, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Word{}, err
		}
		fmt.Fprintf(p.out, "Enter a %d-letter word: ", game.Size)

		line, err := p.readLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.out)
			}
			return game.Word{}, fmt.Errorf("read guess: %w", err)
		}

		w, err := game.ParseWord(line)
		if err == nil {
			return w, nil
		}
		fmt.Fprintln(p.errOut, err)
	}
}

// readLine returns the next line. A final line without a newline is
// returned as is; io.EOF is only reported once no input is left.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}
