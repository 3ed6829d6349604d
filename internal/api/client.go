// Package api is the HTTP client for the job board REST API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/logging"
)

// Defaults applied by New when Options leaves a field zero.
const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5.0
	DefaultBurst     = 5
	DefaultUserAgent = "jobview"

	// maxErrorBody bounds how much of a failed response is kept for logs.
	maxErrorBody = 4096
)

// Failure kinds. Every transport, status and decode error wraps one of these.
var (
	ErrJobsFetch    = errors.New("failed to fetch jobs")
	ErrSummaryFetch = errors.New("failed to fetch job summary")
	ErrJobFetch     = errors.New("failed to fetch job")
	ErrEmptyJobID   = errors.New("job id cannot be empty")
	ErrInvalidURL   = errors.New("invalid API base URL")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RateLimit  float64 // requests per second; <= 0 disables limiting
	Burst      int
	UserAgent  string
	HTTPClient *http.Client
}

// Client talks to the job board API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New validates opts and builds a Client.
func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = NewHTTPClient(timeout)
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	c := &Client{
		baseURL:   strings.TrimRight(u.String(), "/"),
		http:      hc,
		userAgent: ua,
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string { return c.baseURL }

// ListJobs fetches the full job collection. Titles are returned as sent;
// sanitising is the caller's concern.
func (c *Client) ListJobs(ctx context.Context) ([]jobs.Job, error) {
	var list []jobs.Job
	if err := c.getJSON(ctx, "/api/jobs/", &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJobsFetch, err)
	}
	if list == nil {
		list = []jobs.Job{}
	}
	return list, nil
}

// JobSummary fetches the on-demand summary for one job.
func (c *Client) JobSummary(ctx context.Context, id jobs.JobID) (jobs.Summary, error) {
	if id == "" {
		return jobs.Summary{}, fmt.Errorf("%w: %w", ErrSummaryFetch, ErrEmptyJobID)
	}
	var s jobs.Summary
	if err := c.getJSON(ctx, "/api/jobs/"+url.PathEscape(id.String())+"/summary/", &s); err != nil {
		return jobs.Summary{}, fmt.Errorf("%w: %w", ErrSummaryFetch, err)
	}
	return s, nil
}

// GetJob fetches a single job record.
func (c *Client) GetJob(ctx context.Context, id jobs.JobID) (jobs.Job, error) {
	if id == "" {
		return jobs.Job{}, fmt.Errorf("%w: %w", ErrJobFetch, ErrEmptyJobID)
	}
	var j jobs.Job
	if err := c.getJSON(ctx, "/api/jobs/"+url.PathEscape(id.String())+"/", &j); err != nil {
		return jobs.Job{}, fmt.Errorf("%w: %w", ErrJobFetch, err)
	}
	return j, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	log := logging.FromContext(ctx)
	endpoint := c.baseURL + path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Str("url", endpoint).Msg("api request failed")
		return err
	}
	defer resp.Body.Close()

	log.Debug().Ctx(ctx).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     http.MethodGet,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", endpoint, err)
	}
	return nil
}
