// internal/store/memory.go
//
// In-memory implementation of the Pool interface.
//
// Characteristics:
//   - Words kept in a slice (insertion order) plus a set for de-duplication.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// memory is an in-memory slice-based Pool implementation.
type memory struct {
	mu    sync.RWMutex           // guards words and seen
	words []game.Word            // insertion order
	seen  map[game.Word]struct{} // membership
}

// NewMemory constructs a new, empty in-memory Pool.
func NewMemory() Pool {
	return &memory{seen: make(map[game.Word]struct{})}
}

// Add appends the words that are not yet in the pool.
func (m *memory) Add(ctx context.Context, words ...game.Word) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range words {
		if _, ok := m.seen[w]; ok {
			continue
		}
		m.seen[w] = struct{}{}
		m.words = append(m.words, w)
	}
	return nil
}

// Count returns the number of words in the pool.
func (m *memory) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.words), nil
}

// At looks up a word by position.
func (m *memory) At(ctx context.Context, i int) (game.Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.words) {
		return game.Word{}, ErrNotFound
	}
	return m.words[i], nil
}

func (m *memory) Close() error { return nil }
