// Command ise-delete removes every record of an ISE resource after
// confirmation.
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

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dm/ise-go/internal/catalog"
	"github.com/dm/ise-go/internal/client"
	"github.com/dm/ise-go/internal/config"
	"github.com/dm/ise-go/internal/engine"
	"github.com/dm/ise-go/internal/format"
	"github.com/dm/ise-go/internal/logging"
	"github.com/dm/ise-go/internal/render"
	"github.com/dm/ise-go/internal/session"
	"github.com/dm/ise-go/internal/tui"
)

const toolName = "ise-delete"

// errNoTTY is returned when confirmation is needed but nobody can answer.
var errNoTTY = errors.New("refusing to delete: stdin is not a terminal (use --yes to skip confirmation)")

type confirmFunc func(ctx context.Context, in io.Reader, out io.Writer, alias, host string, ids []string) (bool, error)

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	stdin      io.Reader
	loadEnv    func() (*config.Env, error)
	catalog    *catalog.Catalog
	isTerminal func() bool
	confirm    confirmFunc
	opts       config.Options
}

func newApp() *app {
	return &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stdin:      os.Stdin,
		loadEnv:    config.LoadEnv,
		catalog:    catalog.Default(),
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		confirm:    tui.Confirm,
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ise-delete <resource>",
		Short: "Delete all records of an ISE resource",
		Long: `Delete every record of an ISE resource, one DELETE per id.

The ids are listed fresh from the node (the response cache is never used)
and the delete is confirmed interactively unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0])
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&a.opts.Insecure, "insecure", "i", false, "skip TLS certificate verification")
	f.StringVar(&a.opts.Vars, "vars", "", "path variables, e.g. id=<policy-set-id>")
	f.BoolVarP(&a.opts.Yes, "yes", "y", false, "do not ask for confirmation")
	f.CountVarP(&a.opts.Verbosity, "verbosity", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	f.BoolVarP(&a.opts.Timer, "timer", "t", false, "log the elapsed time")
	f.IntVarP(&a.opts.Workers, "workers", "w", engine.DefaultDeleteWorkers, fmt.Sprintf("concurrent requests (1-%d)", config.MaxWorkers))
	f.IntVar(&a.opts.PageSize, "pagesize", engine.DefaultPageSize, fmt.Sprintf("ERS page size (1-%d)", config.MaxPageSize))
	f.StringVar(&a.opts.LogFormat, "log-format", "auto", "log format: auto|console|json")
	return cmd
}

func (a *app) run(ctx context.Context, alias string) error {
	a.opts.NoCache = true
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

	res, err := a.catalog.Resolve(alias, v.Vars)
	if err != nil {
		return err
	}
	env, err := a.loadEnv()
	if err != nil {
		return err
	}
	c, err := session.Open(session.Config{
		Env:            env,
		Insecure:       v.Insecure,
		NoCache:        true,
		MaxConnections: v.Workers,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer session.Close(c, logger)

	start := time.Now()
	fetcher := engine.NewFetcher(c,
		engine.WithWorkers(v.Workers),
		engine.WithPageSize(v.PageSize),
		engine.WithLogger(logger),
	)
	ids, err := fetcher.IDs(ctx, res)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintf(a.stdout, "No %s resources to delete\n", res.Alias)
		return nil
	}

	if !v.Yes {
		if !a.isTerminal() {
			return errNoTTY
		}
		ok, err := a.confirm(ctx, a.stdin, a.stderr, res.Alias, c.BaseURL(), ids)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.stdout, "aborted")
			return nil
		}
	}

	deleter := engine.NewDeleter(c, engine.WithWorkers(v.Workers), engine.WithLogger(logger))
	sum, err := deleter.Delete(ctx, res, ids, func(r engine.DeleteResult) {
		_ = render.WriteStatus(a.stdout, statusFor(res.Alias, r))
	})
	fmt.Fprintf(a.stdout, "%s: %s deleted, %s failed\n",
		res.Alias, format.FormatNumber(int64(sum.Deleted)), format.FormatNumber(int64(sum.Failed)))

	if v.Timer {
		elapsed := time.Since(start)
		logger.Log().
			Str("elapsed", format.FormatDuration(elapsed)).
			Str("rate", format.FormatRate(format.Rate(sum.Deleted+sum.Failed, elapsed))).
			Msgf("processed %s", format.Plural(sum.Deleted+sum.Failed, "delete"))
	}
	return err
}

func statusFor(alias string, r engine.DeleteResult) render.StatusLine {
	line := render.StatusLine{OK: r.OK(), Status: r.StatusCode, Alias: alias, Target: r.ID}
	if r.OK() {
		line.Message = "deleted"
		return line
	}
	line.Message = itemMessage(r.Err)
	return line
}

// itemMessage prefers the message ISE returned over the wrapped error chain.
func itemMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var itemErr *engine.ItemError
	if errors.As(err, &itemErr) {
		return itemErr.Err.Error()
	}
	return err.Error()
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
