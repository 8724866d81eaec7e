// internal/config/config.go
//
// Command-line configuration.
//
// Every flag can also be set through the environment (WORDLE_<FLAG>, e.g.
// WORDLE_DAILY_SALT) or a config file given with -config, one
// "name value" pair per line. Precedence: command line, environment,
// config file, default. A .env file is loaded into the environment by main
// before Load runs.

package config

import (
	"fmt"
	"strings"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-cli/internal/term"
)

// EnvPrefix is prepended to flag names to form environment variable names.
const EnvPrefix = "WORDLE"

// Config is the resolved runtime configuration.
type Config struct {
	Words     []string       // word list paths or globs; empty means embedded list
	DB        string         // SQLite pool file; empty means in-memory pool
	Daily     bool           // pick today's word instead of a random one
	DailySalt string         // salt for the daily pick
	Color     term.ColorMode // when to style output
	Palette   term.Palette   // styles per feedback
	LogLevel  zerolog.Level
}

// Load parses args (without the program name) into a Config.
// Returns flag.ErrHelp if -h or -help was given.
func Load(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSetWithEnvPrefix(name, EnvPrefix, flag.ContinueOnError)

	var (
		_         = fs.String(flag.DefaultConfigFlagname, "", "Path to a config file with one \"flag value\" pair per line")
		wordList  = fs.String("words", "", "Comma-separated word list files or globs (e.g. lists/**/*.txt). Empty uses the built-in list.")
		db        = fs.String("db", "", "SQLite file to keep the word pool in. Empty keeps it in memory.")
		daily     = fs.Bool("daily", false, "Play today's word instead of a random one")
		dailySalt = fs.String("daily_salt", "local_dev_salt", "Salt used to pick the daily word")
		color     = fs.String("color", string(term.ColorAuto), "When to style output: auto, always or never")
		correct   = fs.String("style_correct", term.DefaultPalette.Correct, "SGR parameters for letters in the right spot")
		present   = fs.String("style_present", term.DefaultPalette.Present, "SGR parameters for letters in the word but elsewhere")
		absent    = fs.String("style_absent", term.DefaultPalette.Absent, "SGR parameters for letters not in the word")
		logLevel  = fs.String("log_level", "warn", "Log level: trace, debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Words:     splitList(*wordList),
		DB:        strings.TrimSpace(*db),
		Daily:     *daily,
		DailySalt: *dailySalt,
	}

	var err error
	if cfg.Color, err = term.ParseColorMode(*color); err != nil {
		return nil, err
	}
	if cfg.Palette.Correct, err = term.ParseSGR(*correct); err != nil {
		return nil, fmt.Errorf("style_correct: %w", err)
	}
	if cfg.Palette.Present, err = term.ParseSGR(*present); err != nil {
		return nil, fmt.Errorf("style_present: %w", err)
	}
	if cfg.Palette.Absent, err = term.ParseSGR(*absent); err != nil {
		return nil, fmt.Errorf("style_absent: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(*logLevel)); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	return cfg, nil
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
