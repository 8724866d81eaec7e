package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func count(t *testing.T, p store.Pool) int {
	t.Helper()
	n, err := p.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	return n
}

func TestOpenPoolEmbedded(t *testing.T) {
	ctx := context.Background()
	embedded, err := words.Embedded()
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{DB: filepath.Join(t.TempDir(), "words.db")}

	p, err := openPool(ctx, cfg)
	if err != nil {
		t.Fatalf("openPool: %v", err)
	}
	if got := count(t, p); got != len(embedded) {
		t.Errorf("seeded pool has %d words, want %d", got, len(embedded))
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	p, err = openPool(ctx, cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p.Close()
	if got := count(t, p); got != len(embedded) {
		t.Errorf("reopened pool has %d words, want %d", got, len(embedded))
	}
}

func TestOpenPoolWordFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	first := writeFile(t, filepath.Join(dir, "first.txt"), "crane\nslate\n")
	second := writeFile(t, filepath.Join(dir, "second.txt"), "slate\nabide\n")
	db := filepath.Join(dir, "words.db")

	steps := []struct {
		name  string
		words []string
		want  int
	}{
		{"seed from file", []string{first}, 2},
		// No -words: the stored pool is used as is, not topped up with the
		// built-in list.
		{"reuse stored", nil, 2},
		{"add more files", []string{second}, 3},
	}
	for _, s := range steps {
		p, err := openPool(ctx, &config.Config{DB: db, Words: s.words})
		if err != nil {
			t.Fatalf("%s: openPool: %v", s.name, err)
		}
		if got := count(t, p); got != s.want {
			t.Errorf("%s: pool has %d words, want %d", s.name, got, s.want)
		}
		if err := p.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestOpenPoolNoMatch(t *testing.T) {
	cfg := &config.Config{Words: []string{filepath.Join(t.TempDir(), "**", "*.txt")}}
	if _, err := openPool(context.Background(), cfg); !errors.Is(err, words.ErrNoMatch) {
		t.Errorf("openPool: err = %v, want ErrNoMatch", err)
	}
}

func TestPickTarget(t *testing.T) {
	ctx := context.Background()
	list := writeFile(t, filepath.Join(t.TempDir(), "list.txt"), "crane\nslate\nabide\nalloy\nloyal\n")
	in := map[string]bool{"CRANE": true, "SLATE": true, "ABIDE": true, "ALLOY": true, "LOYAL": true}

	p, err := openPool(ctx, &config.Config{Words: []string{list}})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	daily := &config.Config{Daily: true, DailySalt: "salt"}
	a, err := pickTarget(ctx, daily, p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := pickTarget(ctx, daily, p)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("daily picks differ: %s vs %s", a, b)
	}

	w, err := pickTarget(ctx, &config.Config{}, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, got := range []string{a.String(), w.String()} {
		if !in[got] {
			t.Errorf("picked %s, not in pool", got)
		}
	}

	if _, err := pickTarget(ctx, daily, store.NewMemory()); !errors.Is(err, store.ErrEmpty) {
		t.Errorf("pickTarget on empty pool: err = %v, want ErrEmpty", err)
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	single := writeFile(t, filepath.Join(dir, "single.txt"), "crane\n")

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantCode int
		wantOut  string
	}{
		{name: "help", args: []string{"-help"}, wantCode: 0},
		{name: "bad color", args: []string{"-color=sometimes"}, wantCode: 2},
		{name: "bad style", args: []string{"-style_correct", "bold"}, wantCode: 2},
		{name: "missing words", args: []string{"-words", filepath.Join(dir, "none*.txt")}, wantCode: 1},
		{
			name:     "win",
			args:     []string{"-words", single, "-color", "never"},
			stdin:    "oops\nslate\ncrane\n",
			wantCode: 0,
			wantOut:  "Congrats, you won!",
		},
		{
			name:     "loss",
			args:     []string{"-words", single, "-color", "never"},
			stdin:    strings.Repeat("fuzzy\n", 6),
			wantCode: 0,
			wantOut:  "You lost! The word was CRANE.",
		},
		{
			name:     "input ends",
			args:     []string{"-words", single, "-color", "never"},
			stdin:    "slate\n",
			wantCode: 1,
			wantOut:  "Tries left: 5",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
			if err != nil {
				t.Fatal(err)
			}
			defer out.Close()

			args := append([]string{"wordle"}, tc.args...)
			if got := run(args, strings.NewReader(tc.stdin), out, io.Discard); got != tc.wantCode {
				t.Errorf("run(%q) = %d, want %d", tc.args, got, tc.wantCode)
			}

			b, err := os.ReadFile(out.Name())
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(b), tc.wantOut) {
				t.Errorf("stdout missing %q:\n%s", tc.wantOut, b)
			}
		})
	}
}

func TestRunInterrupted(t *testing.T) {
	single := writeFile(t, filepath.Join(t.TempDir(), "single.txt"), "crane\n")
	out, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	// Nothing is ever written to stdin, so run blocks at the first prompt.
	stdin, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	defer stdin.Close()

	code := make(chan int, 1)
	go func() {
		code <- run([]string{"wordle", "-words", single, "-color", "never"}, stdin, out, io.Discard)
	}()

	// The prompt is written after the interrupt handler is installed.
	deadline := time.Now().Add(5 * time.Second)
	for {
		b, _ := os.ReadFile(out.Name())
		if strings.Contains(string(b), "Enter a 5-letter word") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("no prompt within 5s")
		}
		time.Sleep(10 * time.Millisecond)
	}

	self, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}
	if err := self.Signal(os.Interrupt); err != nil {
		t.Skipf("cannot send interrupt: %v", err)
	}

	select {
	case got := <-code:
		if got != 130 {
			t.Errorf("run = %d, want 130", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after interrupt")
	}
}
