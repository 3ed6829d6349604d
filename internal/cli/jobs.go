package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jobscraperpro/jobview/internal/api"
	"github.com/jobscraperpro/jobview/internal/browser"
	"github.com/jobscraperpro/jobview/internal/cli/pagination"
	"github.com/jobscraperpro/jobview/internal/config"
	"github.com/jobscraperpro/jobview/internal/jobs"
	"github.com/jobscraperpro/jobview/internal/view"
)

const defaultSummaryConcurrency = 4

// User-facing failures. Details are logged, never printed.
var (
	errJobsFetch = errors.New(view.MsgJobsFetchFailed)
	errJobFetch  = errors.New("Failed to fetch job") //nolint:staticcheck // Shown verbatim to users.
)

type listFlags struct {
	search     string
	location   string
	experience string
	output     string
	sort       string
	page       pagination.Params
}

func (f listFlags) filter() jobs.Filter {
	return jobs.Filter{Search: f.search, Location: f.location, Experience: f.experience}
}

// NewJobsListCmd creates the jobs list command.
func NewJobsListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, optionally filtered",
		Long: `Fetches the job listing and prints the jobs that match every filter.

--search matches the title or the location; --location and --experience
match their own field. All filters are case-insensitive substring matches.`,
		Example: `  # Every job
  jobview jobs list

  # Go jobs in Pune for freshers
  jobview jobs list --search golang --location pune --experience "0-1"

  # One JSON object per line, for jq
  jobview jobs list --output ndjson | jq .title`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJobsList(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "match job title or location")
	cmd.Flags().StringVarP(&flags.location, "location", "l", "", "match job location")
	cmd.Flags().StringVarP(&flags.experience, "experience", "e", "", "match required experience")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().StringVar(&flags.sort, "sort", "",
		"sort by field[:asc|desc]; fields: title, location, experience, posted, id")
	cmd.Flags().IntVar(&flags.page.Limit, "limit", 0, "maximum number of jobs to print (0 = all)")
	cmd.Flags().IntVar(&flags.page.Offset, "offset", 0, "number of matching jobs to skip")
	cmd.Flags().IntVar(&flags.page.Page, "page", 0, "page number, 1-based (requires --page-size)")
	cmd.Flags().IntVar(&flags.page.PageSize, "page-size", 0, "jobs per page")

	return cmd
}

func runJobsList(cmd *cobra.Command, flags listFlags) error {
	ctx := cmd.Context()

	format, err := resolveFormat(flags.output)
	if err != nil {
		return err
	}
	params, err := flags.pageParams()
	if err != nil {
		return err
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	b := browser.New(ctx, client)
	defer b.Close()

	if err = b.FetchJobs(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errJobsFetch
	}
	b.SetFilter(flags.filter())

	visible := pagination.NewJobSorter().Sort(b.Visible(), params.SortField, params.SortOrder)
	window := pagination.Apply(params, visible)
	logger.Debug().Ctx(ctx).
		Int("total", len(b.Snapshot().Jobs)).
		Int("visible", len(visible)).
		Int("printed", len(window)).
		Msg("jobs listed")

	footer := ""
	if params.IsEnabled() {
		footer = pagination.NewMeta(params, len(visible)).String()
	}
	return renderJobs(cmd, window, format, footer)
}

// pageParams validates the sort and paging flags.
func (f listFlags) pageParams() (pagination.Params, error) {
	params := f.page
	field, order, err := pagination.ParseSort(f.sort)
	if err != nil {
		return params, err
	}
	if err = pagination.NewJobSorter().Validate(field); err != nil {
		return params, err
	}
	params.SortField, params.SortOrder = field, order
	if err = params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

// NewJobsShowCmd creates the jobs show command.
func NewJobsShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a single job",
		Example: `  jobview jobs show 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobsShow(cmd, jobs.JobID(strings.TrimSpace(args[0])), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or ndjson (default from config)")

	return cmd
}

func runJobsShow(cmd *cobra.Command, id jobs.JobID, output string) error {
	ctx := cmd.Context()

	format, err := resolveFormat(output)
	if err != nil {
		return err
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	job, err := client.GetJob(ctx, id)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Str("job_id", id.String()).Msg("fetching job")

		var statusErr *api.StatusError
		switch {
		case errors.Is(err, api.ErrEmptyJobID):
			return errors.New("job id must not be empty")
		case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
			return fmt.Errorf("job %s not found", id)
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			return errJobFetch
		}
	}
	job.Title = jobs.CleanTitle(job.Title)

	return renderJob(cmd, job, format)
}

type summaryFlags struct {
	output      string
	concurrency int
}

// NewJobsSummaryCmd creates the jobs summary command.
func NewJobsSummaryCmd() *cobra.Command {
	var flags summaryFlags

	cmd := &cobra.Command{
		Use:   "summary <id>...",
		Short: "Show generated summaries for one or more jobs",
		Long: `Requests the generated summary for each job id.

Summaries are fetched concurrently. A failure is reported next to its job
and does not stop the others; the command exits non-zero if any failed.`,
		Example: `  jobview jobs summary 42

  jobview jobs summary 42 43 44 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobsSummary(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", defaultSummaryConcurrency,
		"maximum number of summaries requested at once")

	return cmd
}

// summaryResult is one row of jobs summary output.
type summaryResult struct {
	ID      jobs.JobID `json:"id"`
	Summary string     `json:"summary,omitempty"`
	Skills  []string   `json:"skills,omitempty"`
	Error   string     `json:"error,omitempty"`
}

func runJobsSummary(cmd *cobra.Command, args []string, flags summaryFlags) error {
	ctx := cmd.Context()

	format, err := resolveFormat(flags.output)
	if err != nil {
		return err
	}
	if flags.concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1, got %d", flags.concurrency)
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	b := browser.New(ctx, client)
	defer b.Close()

	results := make([]summaryResult, len(args))
	var g errgroup.Group
	g.SetLimit(flags.concurrency)
	for i, raw := range args {
		id := jobs.JobID(strings.TrimSpace(raw))
		g.Go(func() error {
			results[i] = fetchSummary(cmd, b, id)
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := renderSummaries(cmd, results, format); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d summaries failed", failed, len(results))
	}
	return nil
}

func fetchSummary(cmd *cobra.Command, b *browser.Browser, id jobs.JobID) summaryResult {
	entry, err := b.FetchJobSummary(cmd.Context(), id)
	result := summaryResult{ID: id}
	switch {
	case entry.Data != nil:
		result.Summary = jobs.PlainText(entry.Data.Summary)
		result.Skills = entry.Data.Skills
	case entry.Err != "":
		result.Error = entry.Err
	case err != nil:
		result.Error = view.MsgSummaryFetchFailed
	}
	return result
}

// resolveFormat returns flag, or the configured default when flag is empty.
func resolveFormat(flag string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or ndjson)", format)
	}
}
