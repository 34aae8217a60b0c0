// Package logging configures zerolog for the command-line tools. Logs go to
// stderr so stdout carries only rendered output.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Config controls logger initialization.
type Config struct {
	Verbosity int    // 0 warn, 1 info, 2 debug, 3+ trace
	Format    string // "auto", "console" or "json"
	Tool      string // optional tool name attached to every line
	Writer    io.Writer
	// RunID is generated when empty.
	RunID string
}

var isTerminalFn = term.IsTerminal

// Init builds the base logger, installs it as log.Logger and returns it.
func Init(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	runID := strings.TrimSpace(cfg.RunID)
	if runID == "" {
		runID = uuid.NewString()
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(LevelFor(cfg.Verbosity))

	ctx := zerolog.New(selectWriter(cfg.Format, w)).With().Timestamp().Str("run_id", runID)
	if cfg.Tool != "" {
		ctx = ctx.Str("tool", cfg.Tool)
	}
	logger := ctx.Logger()
	log.Logger = logger
	return logger
}

// LevelFor maps a -v count to a level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func selectWriter(format string, w io.Writer) io.Writer {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console":
		return newConsoleWriter(w)
	case "json":
		return w
	default:
		if f, ok := w.(*os.File); ok && isTerminalFn(int(f.Fd())) {
			return newConsoleWriter(w)
		}
		return w
	}
}

func newConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isColorTarget(w),
	}
}

func isColorTarget(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminalFn(int(f.Fd()))
}
