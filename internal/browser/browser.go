// Package browser drives view.State from synchronous, goroutine-safe calls.
//
// It is the non-interactive counterpart of the TUI: the CLI and tests use it
// to load the job list, request summaries and read the filtered view. All
// state transitions go through the view package; this package only performs
// the I/O those transitions ask for.
package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/logging"
	"github.com/jobscraperpro/jobview/internal/view"
)

// ErrClosed is returned once Close has been called. Responses that settle
// after Close are discarded.
var ErrClosed = errors.New("browser closed")

// Fetcher is the subset of the API client the browser needs.
type Fetcher interface {
	ListJobs(ctx context.Context) ([]jobs.Job, error)
	JobSummary(ctx context.Context, id jobs.JobID) (jobs.Summary, error)
}

// Browser owns one view.State for its lifetime.
type Browser struct {
	api Fetcher

	mu    sync.Mutex
	state view.State

	summaries singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc
}

// New returns a Browser bound to ctx. Cancelling ctx has the same effect as Close.
func New(ctx context.Context, api Fetcher) *Browser {
	base, cancel := context.WithCancel(ctx)
	return &Browser{
		api:    api,
		state:  view.New(),
		ctx:    base,
		cancel: cancel,
	}
}

// Close ends the browser's lifetime. In-flight requests are cancelled and
// their results dropped.
func (b *Browser) Close() {
	b.cancel()
}

func (b *Browser) closed() bool {
	return b.ctx.Err() != nil
}

// requestContext returns a context cancelled by either ctx or Close.
func (b *Browser) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	rctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(b.ctx, cancel)
	return rctx, func() {
		stop()
		cancel()
	}
}

// FetchJobs loads the job list. Loading is true for the duration of the call.
// On failure the previous list is kept and the banner message is set.
func (b *Browser) FetchJobs(ctx context.Context) error {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "browser")

	b.mu.Lock()
	if b.closed() {
		b.mu.Unlock()
		return ErrClosed
	}
	next, eff := b.state.StartJobsFetch()
	b.state = next
	b.mu.Unlock()

	rctx, done := b.requestContext(ctx)
	list, err := b.api.ListJobs(rctx)
	done()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed() {
		log.Debug().Ctx(ctx).Msg("discarding job list after close")
		return ErrClosed
	}
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("fetching jobs")
		b.state = b.state.JobsFailed(eff.Seq, err)
		return err
	}
	b.state = b.state.JobsLoaded(eff.Seq, list)
	log.Debug().Ctx(ctx).Int("jobs", len(list)).Msg("jobs loaded")
	return nil
}

// FetchJobSummary toggles the summary of id when it is cached, otherwise
// fetches it. Concurrent calls for the same id share a single request that
// only Close cancels; a caller whose ctx ends stops waiting without aborting
// the request for the others. The returned entry reflects the state after
// the call.
func (b *Browser) FetchJobSummary(ctx context.Context, id jobs.JobID) (view.SummaryEntry, error) {
	b.mu.Lock()
	if b.closed() {
		b.mu.Unlock()
		return view.SummaryEntry{}, ErrClosed
	}
	next, eff := b.state.RequestSummary(id)
	b.state = next
	if eff.Kind == view.EffectNone && !b.state.InFlight(id) {
		entry, _ := b.state.Entry(id)
		b.mu.Unlock()
		return entry, nil
	}
	b.mu.Unlock()

	ch := b.summaries.DoChan(id.String(), func() (any, error) {
		return b.loadSummary(context.WithoutCancel(ctx), id)
	})
	select {
	case res := <-ch:
		if res.Shared {
			logging.FromContext(ctx).Debug().Ctx(ctx).
				Str("component", "browser").
				Str("job_id", id.String()).
				Msg("joined in-flight summary request")
		}
		entry, _ := res.Val.(view.SummaryEntry)
		return entry, res.Err
	case <-ctx.Done():
		return view.SummaryEntry{}, ctx.Err()
	}
}

// loadSummary performs the shared request. ctx carries the first caller's
// values but not its cancellation.
func (b *Browser) loadSummary(ctx context.Context, id jobs.JobID) (view.SummaryEntry, error) {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "browser")

	// A caller that arrives after the previous flight finished must not fetch again.
	b.mu.Lock()
	if entry, ok := b.state.Entry(id); ok {
		b.mu.Unlock()
		return entry, nil
	}
	if !b.state.InFlight(id) {
		b.state, _ = b.state.RequestSummary(id)
	}
	b.mu.Unlock()

	rctx, done := b.requestContext(ctx)
	summary, err := b.api.JobSummary(rctx, id)
	done()

	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case b.closed():
		log.Debug().Ctx(ctx).Str("job_id", id.String()).Msg("discarding summary after close")
		b.state = b.state.SummaryCanceled(id)
		return view.SummaryEntry{}, ErrClosed
	case err != nil:
		log.Error().Ctx(ctx).Err(err).Str("job_id", id.String()).Msg("fetching summary")
		b.state = b.state.SummaryFailed(id)
		entry, _ := b.state.Entry(id)
		return entry, fmt.Errorf("job %s: %w", id, err)
	default:
		b.state = b.state.SummaryLoaded(id, summary)
		entry, _ := b.state.Entry(id)
		return entry, nil
	}
}

// SetFilter replaces the filter.
func (b *Browser) SetFilter(f jobs.Filter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = b.state.SetFilter(f)
}

// ResetFilters clears search, location and experience filters.
func (b *Browser) ResetFilters() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = b.state.ResetFilters()
}

// Visible returns the currently filtered jobs.
func (b *Browser) Visible() []jobs.Job {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Visible()
}

// Snapshot returns a copy of the full view state.
func (b *Browser) Snapshot() view.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}
