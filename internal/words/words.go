// internal/words/words.go
//
// Word list loading for the target pool.
//
// Sources:
//   - Embedded: the default list compiled into the binary (assets/words.txt).
//   - Load: files named by paths or doublestar globs (e.g. "lists/**/*.txt").
//
// File format:
//   - One word per line; blank lines and lines starting with '#' are ignored.
//   - UTF-8 by default; a UTF-8 or UTF-16 (LE/BE) byte order mark switches
//     the decoder accordingly.
//   - Lines that are not valid words (see game.ParseWord) are skipped and
//     counted, never fatal.
//
// Results are normalized to uppercase and de-duplicated, keeping the order
// of first occurrence.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var ErrNoMatch = errors.New("no word files match")

// Embedded returns the default word list compiled into the binary.
func Embedded() ([]game.Word, error) {
	f, err := assets.DefaultWords()
	if err != nil {
		return nil, fmt.Errorf("open embedded words: %w", err)
	}
	defer f.Close()

	list, skipped, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read embedded words: %w", err)
	}
	log.Debug().Int("words", len(list)).Int("skipped", skipped).Msg("loaded embedded word list")
	return list, nil
}

// Load reads every file matched by patterns. Each pattern is a plain path
// or a doublestar glob; a pattern that matches nothing is an error.
func Load(patterns ...string) ([]game.Word, error) {
	var (
		out  []game.Word
		seen = make(map[game.Word]struct{})
	)
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		paths, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}
		for _, path := range paths {
			list, err := readWordFile(path)
			if err != nil {
				return nil, err
			}
			for _, w := range list {
				if _, ok := seen[w]; ok {
					continue
				}
				seen[w] = struct{}{}
				out = append(out, w)
			}
		}
	}
	return out, nil
}

// readWordFile loads one word per line from path.
func readWordFile(path string) ([]game.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list, skipped, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", len(list)).Int("skipped", skipped).Msg("loaded word file")
	return list, nil
}

// Read parses a word list from r, honoring a leading byte order mark.
// It returns the distinct valid words and the number of skipped lines.
func Read(r io.Reader) (list []game.Word, skipped int, err error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))

	seen := make(map[game.Word]struct{})
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := game.ParseWord(line)
		if err != nil {
			skipped++
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		list = append(list, w)
	}
	return list, skipped, sc.Err()
}
