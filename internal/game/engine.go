// internal/game/engine.go
//
// Game engine for a single Wordle session.
// Responsibilities:
//   - Create new games with the fixed dimensions (MaxTries x Size).
//   - Score guesses with Evaluate and keep the board.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Guesses arrive as validated Words (see ParseWord); the engine does
//     not re-check them.
//   - Nothing here outlives the process; there is no persistence.
package game

import "errors"

var ErrGameOver = errors.New("game finished")

// New constructs a new game for target.
func New(target Word) *Game {
	return &Game{
		Target:    target,
		TriesLeft: MaxTries,
		Board:     make([]ScoredWord, 0, MaxTries),
	}
}

// Guess scores guess against the target, mutating the game state.
// Returns the scored guess, the new state, or ErrGameOver if the game
// has already finished.
//
// State transitions:
//   - If all letters are Correct → Finished = true, Won = true.
//   - Else TriesLeft is decremented; at zero → Finished = true (loss).
func (g *Game) Guess(guess Word) (ScoredWord, State, error) {
	if g.Finished {
		return ScoredWord{}, g.State(), ErrGameOver
	}

	scored := Evaluate(guess, g.Target)
	g.Board = append(g.Board, scored)

	if scored.Solved() {
		g.Finished, g.Won = true, true
		return scored, g.State(), nil
	}
	g.TriesLeft--
	if g.TriesLeft <= 0 {
		g.Finished = true
	}
	return scored, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return Won
		}
		return Lost
	}
	return Playing
}
