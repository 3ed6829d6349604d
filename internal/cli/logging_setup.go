package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/config"
	"github.com/jobscraperpro/jobview/internal/logging"
)

// setupLogging configures logging from the effective config and CLI flags,
// and stores the logger and a trace id in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config, interactive bool) logging.LogPathResult {
	debug, _ := cmd.Flags().GetBool("debug")
	loggingCfg := cfg.LoggingOptions(debug, interactive)

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	switch {
	case result.UsingFile && debug:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	case result.FallbackUsed:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("api_url", cfg.API.BaseURL).
		Bool("interactive", interactive).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if one was opened.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
