package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/api"
	"github.com/jobscraperpro/jobview/internal/config"
	"github.com/jobscraperpro/jobview/internal/tui"
	"github.com/jobscraperpro/jobview/pkg/version"
)

const browseCmdName = "browse"

var errNotInteractive = errors.New(
	"the job browser needs an interactive terminal, use 'jobview jobs list' instead",
)

// NewBrowseCmd creates the browse command, which opens the interactive job browser.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   browseCmdName,
		Short: "Open the interactive job browser",
		Long: `Opens a full-screen browser over the job listing.

Keys:
  up/down, j/k   move between jobs
  s, enter       show or hide the selected job's summary
  /              edit the search
  f              show or hide the location and experience filters
  c              clear search and filters
  r              reload the job list
  q, ctrl+c      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}
}

func runBrowse(cmd *cobra.Command) error {
	if outputMode(cmd) != tui.OutputModeInteractive {
		return errNotInteractive
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	return tui.Run(cmd.Context(), client, tui.Options{
		ShowFilters:  cfg.UI.ShowFilters,
		AbsoluteDate: cfg.UI.DateFormat == config.DateAbsolute,
	})
}

// newAPIClient builds an API client from the effective config.
func newAPIClient() (*api.Client, error) {
	cfg := config.GetGlobalConfig()

	userAgent := cfg.API.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	client, err := api.New(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		Burst:     cfg.API.Burst,
		UserAgent: userAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring API client: %w", err)
	}
	return client, nil
}
