package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	coreconfig "github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/cmdutil"
	"github.com/rbansal42/snipper/internal/iostreams"
)

// NewCmdConfigSet creates the config set command
func NewCmdConfigSet(streams *iostreams.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update configuration with a value for the given key",
		Example: `  # Create private snippets by default
  snipper config set visibility private

  # Set HTTP timeout to 30 seconds
  snipper config set http_timeout 30`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return cmdutil.StaticFlagCompletion(configKeys)(cmd, args, toComplete)
			}
			if args[0] == "visibility" {
				return cmdutil.StaticFlagCompletion(cmdutil.VisibilityLevels)(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			value := args[1]

			cfg, err := coreconfig.LoadConfig()
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}

			if err := setConfigValue(cfg, key, value); err != nil {
				return err
			}

			if err := coreconfig.SaveConfig(cfg); err != nil {
				return fmt.Errorf("could not save config: %w", err)
			}

			streams.Success("Set %s to %s", key, value)
			return nil
		},
	}

	return cmd
}
