package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates ~/.jobview/config.yaml for syntax and semantic correctness,
then validates the effective configuration after environment variables,
--config and flags are applied.`,
		Example: `  # Validate current configuration
  jobview config validate

  # Validate and show detailed information
  jobview config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	// The file on its own, before environment and flag overrides.
	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err = fileCfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg := config.GetGlobalConfig()
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("effective configuration is invalid: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.Path())
	cmd.Printf("  API base URL: %s\n", cfg.API.BaseURL)
	cmd.Printf("  Request timeout: %s\n", cfg.API.Timeout)
	if cfg.API.RateLimit > 0 {
		cmd.Printf("  Rate limit: %g req/s (burst %d)\n", cfg.API.RateLimit, cfg.API.Burst)
	} else {
		cmd.Println("  Rate limit: disabled")
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", config.GetLogLevel())
	cmd.Printf("  Log file: %s\n", logFileOrDefault(cfg))
}

func logFileOrDefault(cfg *config.Config) string {
	if cfg.Logging.File != "" {
		return cfg.Logging.File
	}
	if path, err := config.DefaultLogFile(); err == nil {
		return path + " (default)"
	}
	return "(stderr)"
}
