// internal/store/store.go
//
// Word pools: the set of candidate target words a game is drawn from.
//
// Implementations:
//   - memory (this package): map + slice, lost on exit.
//   - SQLite (sqlite.go): a file-backed pool that survives restarts, so a
//     large imported list only has to be parsed once.
//
// Selection helpers:
//   - Random: uniform pick using crypto/rand.
//   - Daily:  deterministic pick for the current date (see internal/daily).

package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var (
	ErrEmpty    = errors.New("word pool is empty")
	ErrNotFound = errors.New("not found")
)

// Pool defines the storage interface for candidate target words.
// Words keep their insertion order; re-adding a word is a no-op.
type Pool interface {
	// Add inserts words not already in the pool.
	Add(ctx context.Context, words ...game.Word) error

	// Count returns the number of distinct words.
	Count(ctx context.Context) (int, error)

	// At returns the i-th word in insertion order.
	// Returns ErrNotFound if i is out of range.
	At(ctx context.Context, i int) (game.Word, error)

	// Close releases any resources held by the pool.
	Close() error
}

// Random returns a cryptographically random word from p.
func Random(ctx context.Context, p Pool) (game.Word, error) {
	n, err := p.Count(ctx)
	if err != nil {
		return game.Word{}, fmt.Errorf("count words: %w", err)
	}
	if n == 0 {
		return game.Word{}, ErrEmpty
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return game.Word{}, fmt.Errorf("random index: %w", err)
	}
	return p.At(ctx, int(nBig.Int64()))
}

// Daily returns the word of the day for now, keyed by salt.
// The same date, salt and pool always give the same word.
func Daily(ctx context.Context, p Pool, now time.Time, salt string) (game.Word, error) {
	n, err := p.Count(ctx)
	if err != nil {
		return game.Word{}, fmt.Errorf("count words: %w", err)
	}
	if n == 0 {
		return game.Word{}, ErrEmpty
	}
	return p.At(ctx, daily.WordIndex(now, salt, n))
}
