package engine

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/dm/ise-go/internal/catalog"
	"github.com/dm/ise-go/internal/client"
	"github.com/dm/ise-go/internal/model"
)

const (
	// DefaultPageSize is also the ERS server-side maximum.
	DefaultPageSize = 100
	MaxPageSize     = 100
)

// Option configures a Fetcher or Deleter.
type Option func(*settings)

type settings struct {
	workers  int
	pageSize int
	logger   zerolog.Logger
}

// WithWorkers sets the pool size; values are clamped to 1..MaxWorkers.
func WithWorkers(n int) Option {
	return func(s *settings) { s.workers = n }
}

// WithPageSize sets the ERS page size; values are clamped to 1..MaxPageSize.
func WithPageSize(n int) Option {
	return func(s *settings) { s.pageSize = n }
}

// WithLogger sets the logger used for per-item failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func newSettings(defWorkers int, opts []Option) settings {
	s := settings{logger: zerolog.Nop()}
	for _, o := range opts {
		o(&s)
	}
	s.workers = ClampWorkers(s.workers, defWorkers)
	if s.pageSize <= 0 || s.pageSize > MaxPageSize {
		s.pageSize = DefaultPageSize
	}
	return s
}

// FetchOptions controls a single Fetch.
type FetchOptions struct {
	// Details replaces ERS summaries with the full GET-by-id records.
	Details bool
	// NoID strips the id attribute after all fetching is done.
	NoID bool
}

// Fetcher retrieves complete collections for catalog resources.
type Fetcher struct {
	client client.ISEClient
	settings
	sleep func(ctx context.Context, d time.Duration) error
}

// NewFetcher creates a Fetcher over c. Default pool size is
// DefaultFetchWorkers.
func NewFetcher(c client.ISEClient, opts ...Option) *Fetcher {
	return &Fetcher{
		client:   c,
		settings: newSettings(DefaultFetchWorkers, opts),
		sleep:    sleepCtx,
	}
}

// Fetch returns every record of res. The first request's failure is
// returned as is; later page and detail failures are logged and skipped,
// except authentication failures which abort the fetch.
func (f *Fetcher) Fetch(ctx context.Context, res catalog.Resource, opts FetchOptions) ([]model.Record, error) {
	var (
		records []model.Record
		err     error
	)
	switch res.Dialect {
	case catalog.ERS:
		records, err = f.fetchERS(ctx, res, opts)
	case catalog.OpenAPI:
		if opts.Details {
			f.logger.Debug().Str("alias", res.Alias).Msg("details only apply to ERS resources")
		}
		records, err = f.fetchOpenAPI(ctx, res)
	default:
		err = fmt.Errorf("resource %s: unsupported dialect %v", res.Alias, res.Dialect)
	}
	if err != nil {
		return nil, err
	}

	model.StripAll(records, model.KeyLink)
	if opts.NoID {
		model.StripAll(records, model.KeyID)
	}
	return records, nil
}

// IDs returns the ids of every summary record of res, for bulk delete.
func (f *Fetcher) IDs(ctx context.Context, res catalog.Resource) ([]string, error) {
	records, err := f.Fetch(ctx, res, FetchOptions{})
	if err != nil {
		return nil, err
	}
	c := model.NewCollection(len(records))
	c.AddAll(records)
	return c.IDs(), nil
}

func (f *Fetcher) fetchOpenAPI(ctx context.Context, res catalog.Resource) ([]model.Record, error) {
	resp, err := f.client.Get(ctx, res.Path)
	if err != nil {
		return nil, err
	}
	return decodeOpenAPI(res.Path, resp.Body)
}

func (f *Fetcher) fetchERS(ctx context.Context, res catalog.Resource, opts FetchOptions) ([]model.Record, error) {
	first := pageURL(res.Path, f.pageSize, 1)
	resp, err := f.client.Get(ctx, first)
	if err != nil {
		return nil, err
	}
	page, err := decodeERSPage(first, resp.Body)
	if err != nil {
		return nil, err
	}
	if page.Total == 0 {
		return []model.Record{}, nil
	}

	coll := model.NewCollection(page.Total)
	coll.AddAll(page.Records)

	if pages := pageCount(page.Total, f.pageSize); pages > 1 {
		rest, err := f.fetchPages(ctx, res, pages)
		if err != nil {
			return nil, err
		}
		for _, rs := range rest {
			coll.AddAll(rs)
		}
	}
	if n := coll.Duplicates(); n > 0 {
		f.logger.Debug().Str("alias", res.Alias).Int("duplicates", n).Msg("duplicate ids replaced")
	}
	f.logger.Info().Str("alias", res.Alias).Int("total", page.Total).Int("records", coll.Len()).Msg("summaries fetched")

	if !opts.Details {
		return coll.Records(), nil
	}
	if res.NoDetail {
		f.logger.Info().Str("alias", res.Alias).Msg("resource has no detail endpoint, keeping summaries")
		return coll.Records(), nil
	}
	if res.SettleDelay > 0 {
		if err := f.sleep(ctx, res.SettleDelay); err != nil {
			return nil, err
		}
	}
	return f.fetchDetails(ctx, res, coll.IDs())
}

// fetchPages gets pages 2..pages concurrently. Results are indexed by page
// so the flattened output keeps server page order.
func (f *Fetcher) fetchPages(ctx context.Context, res catalog.Resource, pages int) ([][]model.Record, error) {
	urls := make([]string, 0, pages-1)
	for k := 2; k <= pages; k++ {
		urls = append(urls, pageURL(res.Path, f.pageSize, k))
	}
	out := make([][]model.Record, len(urls))

	err := runPool(ctx, f.workers, urls, func(ctx context.Context, i int, u string) error {
		resp, err := f.client.Get(ctx, u)
		if err != nil {
			return f.itemFailed(ctx, res.Alias, u, err, "page skipped")
		}
		page, err := decodeERSPage(u, resp.Body)
		if err != nil {
			return f.itemFailed(ctx, res.Alias, u, err, "page skipped")
		}
		out[i] = page.Records
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Fetcher) fetchDetails(ctx context.Context, res catalog.Resource, ids []string) ([]model.Record, error) {
	details := make([]model.Record, len(ids))

	err := runPool(ctx, f.workers, ids, func(ctx context.Context, i int, id string) error {
		u := itemURL(res.Path, id)
		resp, err := f.client.Get(ctx, u)
		if err != nil {
			if client.IsNotFound(err) {
				f.logger.Info().Str("alias", res.Alias).Str("id", id).Msg("item vanished before detail fetch, omitted")
				return nil
			}
			return f.itemFailed(ctx, res.Alias, u, err, "detail skipped")
		}
		rec, err := decodeDetail(u, res.ObjectName, resp.Body)
		if err != nil {
			return f.itemFailed(ctx, res.Alias, u, err, "detail skipped")
		}
		details[i] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	coll := model.NewCollection(len(details))
	for _, d := range details {
		if d != nil {
			coll.Add(d)
		}
	}
	f.logger.Info().Str("alias", res.Alias).Int("requested", len(ids)).Int("records", coll.Len()).Msg("details fetched")
	return coll.Records(), nil
}

// itemFailed logs a non-fatal failure and returns nil, or returns the error
// when it must stop the batch.
func (f *Fetcher) itemFailed(ctx context.Context, alias, target string, err error, msg string) error {
	if fatal(err) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	f.logger.Warn().
		Err(&ItemError{Alias: alias, Target: target, Err: err}).
		Str("alias", alias).
		Str("url", target).
		Int("status", client.StatusCode(err)).
		Msg(msg)
	return nil
}

func pageURL(path string, size, page int) string {
	return fmt.Sprintf("%s?size=%d&page=%d", path, size, page)
}

func itemURL(path, id string) string {
	return path + "/" + url.PathEscape(id)
}

func pageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
