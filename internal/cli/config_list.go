package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/config"
)

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effective configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			for _, kv := range cfg.List() {
				value := kv[1]
				if value == "" {
					value = "(unset)"
				}
				fmt.Fprintf(tw, "%s\t%s\n", kv[0], value)
			}
			return tw.Flush()
		},
	}
}

func keyList() string {
	return strings.Join(config.Keys, ", ")
}
