package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/config"
)

// NewConfigGetCmd creates the config get command. It prints the effective
// value, after environment variables, --config and flags are applied.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Example: `  jobview config get api.base_url

  JOBVIEW_TIMEOUT=5s jobview config get api.timeout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
