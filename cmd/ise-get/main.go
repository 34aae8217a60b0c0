// Command ise-get fetches every record of an ISE resource and renders it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dm/ise-go/internal/catalog"
	"github.com/dm/ise-go/internal/client"
	"github.com/dm/ise-go/internal/config"
	"github.com/dm/ise-go/internal/engine"
	"github.com/dm/ise-go/internal/format"
	"github.com/dm/ise-go/internal/logging"
	"github.com/dm/ise-go/internal/model"
	"github.com/dm/ise-go/internal/render"
	"github.com/dm/ise-go/internal/session"
)

const (
	toolName = "ise-get"
	allAlias = "all"
)

type app struct {
	stdout    io.Writer
	stderr    io.Writer
	loadEnv   func() (*config.Env, error)
	catalog   *catalog.Catalog
	cachePath string
	opts      config.Options
}

func newApp() *app {
	return &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		loadEnv: config.LoadEnv,
		catalog: catalog.Default(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ise-get <resource|all>",
		Short: "Fetch all records of an ISE resource",
		Long: `Fetch every record of an ISE ERS or OpenAPI resource and render it.

Connection settings come from ISE_PPAN, ISE_REST_USERNAME, ISE_REST_PASSWORD
and ISE_CERT_VERIFY (a .env file in the working directory is honoured).
Use "all" to fetch every resource in the catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0])
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&a.opts.Details, "details", "d", false, "fetch the full record of every ERS resource")
	f.BoolVar(&a.opts.NoID, "noid", false, "omit the id attribute")
	f.StringVarP(&a.opts.Format, "format", "f", string(render.DefaultFormat), "output format: csv|json|line|pretty|yaml|grid|table")
	f.StringVarP(&a.opts.SaveDir, "save", "s", "", "write {resource}.{format} into this directory instead of stdout")
	f.BoolVarP(&a.opts.Insecure, "insecure", "i", false, "skip TLS certificate verification")
	f.BoolVarP(&a.opts.NoCache, "nocache", "n", false, "bypass the response cache")
	f.BoolVar(&a.opts.Refresh, "refresh", false, "discard cached responses before fetching")
	f.IntVarP(&a.opts.Expiration, "expiration", "e", config.DefaultExpiration, "cache expiration in seconds")
	f.StringVar(&a.opts.Hide, "hide", "", "comma-separated attributes to remove")
	f.StringVar(&a.opts.Show, "show", "", "comma-separated attributes to keep")
	f.StringVar(&a.opts.Vars, "vars", "", "path variables, e.g. id=<policy-set-id>")
	f.StringVar(&a.opts.Sort, "sort", "", "sort records by this attribute")
	f.CountVarP(&a.opts.Verbosity, "verbosity", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	f.BoolVarP(&a.opts.Timer, "timer", "t", false, "log the elapsed time")
	f.IntVarP(&a.opts.Workers, "workers", "w", engine.DefaultFetchWorkers, fmt.Sprintf("concurrent requests (1-%d)", config.MaxWorkers))
	f.IntVar(&a.opts.PageSize, "pagesize", engine.DefaultPageSize, fmt.Sprintf("ERS page size (1-%d)", config.MaxPageSize))
	f.StringVar(&a.opts.LogFormat, "log-format", "auto", "log format: auto|console|json")
	return cmd
}

func (a *app) run(ctx context.Context, alias string) error {
	v, err := a.opts.Validate()
	if err != nil {
		return err
	}
	logger := logging.Init(logging.Config{
		Verbosity: v.Verbosity,
		Format:    v.LogFormat,
		Tool:      toolName,
		Writer:    a.stderr,
	})

	var targets []catalog.Resource
	if alias == allAlias {
		targets = a.resolveAll(v.Vars, logger)
	} else {
		res, err := a.catalog.Resolve(alias, v.Vars)
		if err != nil {
			return err
		}
		targets = []catalog.Resource{res}
	}

	env, err := a.loadEnv()
	if err != nil {
		return err
	}
	c, err := session.Open(session.Config{
		Env:            env,
		Insecure:       v.Insecure,
		NoCache:        v.NoCache,
		Refresh:        v.Refresh,
		TTL:            v.TTL,
		CachePath:      a.cachePath,
		MaxConnections: v.Workers,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer session.Close(c, logger)

	fetcher := engine.NewFetcher(c,
		engine.WithWorkers(v.Workers),
		engine.WithPageSize(v.PageSize),
		engine.WithLogger(logger),
	)

	start := time.Now()
	total := 0
	for _, res := range targets {
		n, err := a.fetchOne(ctx, fetcher, res, v, logger)
		if err != nil {
			if alias != allAlias {
				return err
			}
			if stopsAll(ctx, err) {
				return fmt.Errorf("%s: %w", res.Alias, err)
			}
			logger.Warn().Err(err).Str("alias", res.Alias).Msg("resource skipped")
			continue
		}
		total += n
	}

	if v.Timer {
		elapsed := time.Since(start)
		logger.Log().
			Str("elapsed", format.FormatDuration(elapsed)).
			Str("rate", format.FormatRate(format.Rate(total, elapsed))).
			Msgf("fetched %s", format.Plural(total, "record"))
	}
	return nil
}

// resolveAll returns every catalog resource whose path can be completed
// from vars, in alias order.
func (a *app) resolveAll(vars map[string]string, logger zerolog.Logger) []catalog.Resource {
	var out []catalog.Resource
	for _, alias := range a.catalog.Aliases() {
		res, err := a.catalog.Resolve(alias, vars)
		if err != nil {
			logger.Debug().Err(err).Str("alias", alias).Msg("resource skipped")
			continue
		}
		out = append(out, res)
	}
	return out
}

func (a *app) fetchOne(ctx context.Context, f *engine.Fetcher, res catalog.Resource, v *config.Validated, logger zerolog.Logger) (int, error) {
	records, err := f.Fetch(ctx, res, engine.FetchOptions{Details: v.Details, NoID: v.NoID})
	if err != nil {
		return 0, err
	}
	if err := v.Projection.Apply(records); err != nil {
		return 0, err
	}
	if v.Sort != "" {
		render.Sort(records, v.Sort)
	}
	path, err := render.Write(v.SaveDir, a.stdout, res.Alias, records, v.Format)
	if err != nil {
		return 0, err
	}
	logRecords(logger, res, records, path)
	return len(records), nil
}

func logRecords(logger zerolog.Logger, res catalog.Resource, records []model.Record, path string) {
	ev := logger.Info().Str("alias", res.Alias).Int("records", len(records))
	if path != "" {
		ev = ev.Str("path", path)
	}
	ev.Msg("fetched")
}

// stopsAll reports whether err ends an "all" run: bad credentials, an
// unreachable node and cancellation affect every remaining resource.
func stopsAll(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var unreachable *client.UnreachableError
	return client.IsAuth(err) || errors.As(err, &unreachable)
}

func execute(ctx context.Context, a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.ExecuteContext(ctx); err != nil {
		alias := ""
		if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
			alias = args[0]
		}
		_ = render.WriteStatus(a.stderr, session.FatalLine(alias, err))
		return session.ExitCode(err)
	}
	return session.ExitOK
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newApp(), os.Args[1:])
	stop()
	os.Exit(code)
}
