package engine

import (
	"context"
	"sync"

	"github.com/dm/ise-go/internal/catalog"
	"github.com/dm/ise-go/internal/client"
)

// DeleteResult is the outcome of one DELETE.
type DeleteResult struct {
	ID         string
	StatusCode int
	Err        error
}

// OK reports whether the delete succeeded.
func (r DeleteResult) OK() bool { return r.Err == nil }

// Summary counts delete outcomes.
type Summary struct {
	Deleted int
	Failed  int
}

// Deleter removes resources by id through the worker pool.
type Deleter struct {
	client client.ISEClient
	settings
}

// NewDeleter creates a Deleter over c. Default pool size is
// DefaultDeleteWorkers.
func NewDeleter(c client.ISEClient, opts ...Option) *Deleter {
	return &Deleter{client: c, settings: newSettings(DefaultDeleteWorkers, opts)}
}

// Delete issues DELETE {path}/{id} for every id. report, if non-nil, is
// called once per completed request, never concurrently. An authentication
// failure or cancellation stops the batch; requests already answered stay
// applied on the server.
func (d *Deleter) Delete(ctx context.Context, res catalog.Resource, ids []string, report func(DeleteResult)) (Summary, error) {
	var (
		mu  sync.Mutex
		sum Summary
	)
	emit := func(r DeleteResult) {
		mu.Lock()
		defer mu.Unlock()
		if r.OK() {
			sum.Deleted++
		} else {
			sum.Failed++
		}
		if report != nil {
			report(r)
		}
	}

	err := runPool(ctx, d.workers, ids, func(ctx context.Context, _ int, id string) error {
		u := itemURL(res.Path, id)
		resp, err := d.client.Delete(ctx, u)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && !fatal(err) {
				return ctxErr
			}
			itemErr := &ItemError{Alias: res.Alias, Target: id, Err: err}
			emit(DeleteResult{ID: id, StatusCode: client.StatusCode(err), Err: itemErr})
			if fatal(err) {
				return err
			}
			d.logger.Warn().Err(itemErr).Str("alias", res.Alias).Str("id", id).
				Int("status", client.StatusCode(err)).Msg("delete failed")
			return nil
		}
		emit(DeleteResult{ID: id, StatusCode: resp.StatusCode})
		d.logger.Debug().Str("alias", res.Alias).Str("id", id).Int("status", resp.StatusCode).Msg("deleted")
		return nil
	})

	mu.Lock()
	defer mu.Unlock()
	return sum, err
}
