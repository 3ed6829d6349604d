package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobscraperpro/jobview/internal/config"
)

// NewConfigSetCmd creates the config set command. It edits the config file
// itself; environment overrides are not written back.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Sets a value in the configuration file. Keys: " + keyList(),
		Example: `  jobview config set api.base_url https://jobs.example.com
  jobview config set api.timeout 10s
  jobview config set ui.date_format absolute`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err = cfg.Set(key, value); err != nil {
		return err
	}
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	stored, _ := cfg.Get(key)
	logger.Info().Ctx(cmd.Context()).Str("key", key).Str("value", stored).Msg("config value set")
	cmd.Printf("Set %s = %s\n", key, stored)
	return nil
}
