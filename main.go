package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/term"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit code.
// args includes the program name, as os.Args does.
func run(args []string, stdin io.Reader, stdout *os.File, stderr io.Writer) int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(filepath.Base(args[0]), args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 2
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool, err := openPool(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word list")
		return 1
	}
	defer pool.Close()

	target, err := pickTarget(ctx, cfg, pool)
	if err != nil {
		log.Error().Err(err).Msg("failed to pick a word")
		return 1
	}

	out, styled := term.Output(stdout, cfg.Color)
	palette := cfg.Palette
	if !styled {
		palette = term.Plain
	}
	c := console.New(term.NewPrompter(stdin, out, stderr), term.NewRenderer(palette), out)

	state, err := c.Play(ctx, target)
	switch {
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, io.EOF):
		log.Warn().Str("state", string(state)).Msg("input closed before the game finished")
		return 1
	case err != nil:
		log.Error().Err(err).Msg("game aborted")
		return 1
	}
	return 0
}

// openPool builds the target pool: SQLite when -db is set, memory otherwise.
// Word files from -words are always added; the built-in list is only used
// when no files are given and the pool is empty.
func openPool(ctx context.Context, cfg *config.Config) (store.Pool, error) {
	var pool store.Pool = store.NewMemory()
	if cfg.DB != "" {
		p, err := store.OpenSQLite(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		pool = p
	}

	var (
		list []game.Word
		err  error
	)
	switch {
	case len(cfg.Words) > 0:
		list, err = words.Load(cfg.Words...)
	default:
		n, cerr := pool.Count(ctx)
		if cerr != nil {
			_ = pool.Close()
			return nil, cerr
		}
		if n > 0 {
			log.Info().Int("words", n).Str("db", cfg.DB).Msg("using stored word pool")
			return pool, nil
		}
		list, err = words.Embedded()
	}
	if err != nil {
		_ = pool.Close()
		return nil, err
	}

	if err := pool.Add(ctx, list...); err != nil {
		_ = pool.Close()
		return nil, err
	}
	log.Info().Int("words", len(list)).Msg("word pool ready")
	return pool, nil
}

// pickTarget chooses today's word with -daily, a random one otherwise.
func pickTarget(ctx context.Context, cfg *config.Config, pool store.Pool) (game.Word, error) {
	if cfg.Daily {
		return store.Daily(ctx, pool, time.Now(), cfg.DailySalt)
	}
	return store.Random(ctx, pool)
}
