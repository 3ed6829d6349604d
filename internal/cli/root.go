package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/config"
	"github.com/jobscraperpro/jobview/internal/logging"
	"github.com/jobscraperpro/jobview/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the jobview CLI.
// It wires up configuration, logging and tracing, then the browse, jobs and
// config subcommands. Without a subcommand it opens the browser on an
// interactive terminal and prints the job list otherwise.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "jobview",
		Short:         "Browse JobScraper Pro job listings",
		Long:          "jobview: browse, filter and summarize JobScraper Pro job listings from the terminal",
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg, runsInteractive(cmd))
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outputMode(cmd) == tui.OutputModeInteractive {
				return runBrowse(cmd)
			}
			return runJobsList(cmd, listFlags{})
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("api-url", "", "job board API base URL (overrides config and JOBVIEW_API_URL)")
	cmd.PersistentFlags().Duration("timeout", 0, "per-request timeout, e.g. 10s (overrides config and JOBVIEW_TIMEOUT)")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the global config (or JOBVIEW_CONFIG)")
	cmd.PersistentFlags().Bool("plain", false, "plain, unstyled output")
	cmd.PersistentFlags().Bool("no-color", false, "disable colors (same as NO_COLOR)")
	cmd.PersistentFlags().Bool("force-color", false, "styled output even when stdout is not a terminal")
	cmd.AddCommand(NewBrowseCmd(), newJobsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Open the interactive browser
  jobview

  # Point at a different backend
  jobview --api-url https://jobs.example.com browse

  # List remote Go jobs as JSON
  jobview jobs list --search golang --location remote --output json

  # Show one job
  jobview jobs show 42

  # Summaries for several jobs at once
  jobview jobs summary 42 43 44

  # Initialize configuration
  jobview config init

  # Set configuration values
  jobview config set api.base_url https://jobs.example.com`

// newJobsCmd creates the jobs command group.
func newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "jobs", Short: "Job listing commands"}
	cmd.AddCommand(NewJobsListCmd(), NewJobsShowCmd(), NewJobsSummaryCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

// loadConfig builds the effective config for this invocation.
// Precedence, lowest first: defaults, config file, --config overlay,
// environment, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overlayFlag, _ := cmd.Flags().GetString("config")
	overlay := config.ResolveOverlayPath(cmd.Context(), overlayFlag)

	cfg, err := config.NewWithOverlay(cmd.Context(), overlay)
	switch {
	case err == nil:
	case errors.Is(err, config.ErrInvalidConfigFile) && repairsConfig(cmd):
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nUsing default configuration.\n", err)
		cfg = config.Default()
		cfg.ApplyEnvOverrides()
	case errors.Is(err, config.ErrInvalidConfigFile):
		return nil, fmt.Errorf("loading config: %w (run 'jobview config validate' for details)", err)
	default:
		return nil, fmt.Errorf("loading config overlay: %w", err)
	}

	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("timeout") {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		if timeout <= 0 {
			return nil, fmt.Errorf("timeout must be > 0, got %s", timeout)
		}
		cfg.API.Timeout = timeout
	}
	return cfg, nil
}

// repairsConfig reports whether cmd belongs to the config group, which must
// keep working when the config file itself is broken.
func repairsConfig(cmd *cobra.Command) bool {
	return cmd.HasParent() && cmd.Parent().Name() == "config"
}

// outputMode resolves the output mode from the persistent flags.
func outputMode(cmd *cobra.Command) tui.OutputMode {
	plain, _ := cmd.Flags().GetBool("plain")
	noColor, _ := cmd.Flags().GetBool("no-color")
	forceColor, _ := cmd.Flags().GetBool("force-color")
	return tui.DetectOutputMode(forceColor, noColor, plain)
}

// runsInteractive reports whether cmd will take over the terminal, in which
// case logs go to a file.
func runsInteractive(cmd *cobra.Command) bool {
	if cmd.Name() == browseCmdName {
		return true
	}
	return !cmd.HasParent() && outputMode(cmd) == tui.OutputModeInteractive
}

// now is the clock used for "Posted" labels.
//
//nolint:gochecknoglobals // Swapped in tests.
var now = time.Now
