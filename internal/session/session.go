// Package session wires the environment, the response cache and the ISE
// client together for one tool invocation, and maps fatal errors to exit
// codes and status lines.
package session

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/dm/ise-go/internal/cache"
	"github.com/dm/ise-go/internal/catalog"
	"github.com/dm/ise-go/internal/client"
	"github.com/dm/ise-go/internal/config"
	"github.com/dm/ise-go/internal/render"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 130
)

// Config describes one session.
type Config struct {
	Env      *config.Env
	Insecure bool
	// NoCache disables the response cache entirely. Refresh keeps it but
	// drops every stored entry first.
	NoCache        bool
	Refresh        bool
	TTL            time.Duration
	CachePath      string
	MaxConnections int
	Logger         zerolog.Logger
}

// Open builds a client for cfg. A cache that cannot be opened is logged
// and the session continues uncached.
func Open(cfg Config) (*client.DefaultClient, error) {
	if cfg.Env == nil {
		return nil, errors.New("session: no environment")
	}
	cc := client.ClientConfig{
		BaseURL:            cfg.Env.BaseURL(),
		Username:           cfg.Env.Username,
		Password:           cfg.Env.Password,
		InsecureSkipVerify: cfg.Insecure || !cfg.Env.CertVerify,
		MaxConnections:     cfg.MaxConnections,
		Retries:            1,
	}
	if !cfg.NoCache {
		if store := openCache(cfg); store != nil {
			cc.Cache = store
		}
	}
	c, err := client.NewDefaultClient(cc)
	if err != nil {
		if cc.Cache != nil {
			_ = cc.Cache.Close()
		}
		return nil, err
	}
	return c, nil
}

func openCache(cfg Config) *cache.Store {
	path := cfg.CachePath
	if path == "" {
		p, err := cache.DefaultPath()
		if err != nil {
			cfg.Logger.Warn().Err(err).Msg("no cache directory; continuing without cache")
			return nil
		}
		path = p
	}
	store, err := cache.Open(path, cfg.TTL, cfg.Refresh)
	if err != nil {
		cfg.Logger.Warn().Err(err).Str("path", path).Msg("cache unavailable; continuing without cache")
		return nil
	}
	n, err := store.Purge()
	if err != nil {
		cfg.Logger.Warn().Err(err).Msg("cache purge failed")
	} else if n > 0 {
		cfg.Logger.Debug().Int64("purged", n).Msg("expired cache entries removed")
	}
	return store
}

// Close closes c and logs a failure; it is meant for defer.
func Close(c io.Closer, logger zerolog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn().Err(err).Msg("close session")
	}
}

// ExitCode maps a fatal error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	default:
		return ExitError
	}
}

// FatalLine is the single stderr line printed for a fatal error.
func FatalLine(alias string, err error) render.StatusLine {
	var unknown *catalog.UnknownResourceError
	if errors.As(err, &unknown) {
		alias = ""
	}
	msg := err.Error()
	if errors.Is(err, context.Canceled) {
		msg = "cancelled"
	}
	return render.StatusLine{
		Status:  client.StatusCode(err),
		Alias:   alias,
		Message: msg,
	}
}
