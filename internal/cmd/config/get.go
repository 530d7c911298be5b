package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	coreconfig "github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/cmdutil"
	"github.com/rbansal42/snipper/internal/iostreams"
)

// NewCmdConfigGet creates the config get command
func NewCmdConfigGet(streams *iostreams.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a configuration key",
		Example: `  # Get the default visibility
  snipper config get visibility`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cmdutil.StaticFlagCompletion(configKeys),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			cfg, err := coreconfig.LoadConfig()
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}

			value, err := getConfigValue(cfg, key)
			if err != nil {
				return err
			}

			fmt.Fprintln(streams.Out, value)
			return nil
		},
	}

	return cmd
}
