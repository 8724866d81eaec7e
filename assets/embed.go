// Package assets holds files compiled into the binary.
package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// DefaultWordsName is the name of the embedded default word list.
const DefaultWordsName = "words.txt"

// DefaultWords opens the embedded default word list (one word per line,
// '#' comments allowed).
func DefaultWords() (io.ReadCloser, error) {
	return FS.Open(DefaultWordsName)
}
