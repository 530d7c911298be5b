package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	coreconfig "github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

// NewCmdConfigList creates the config list command
func NewCmdConfigList(streams *iostreams.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Print a list of configuration keys and values",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := coreconfig.LoadConfig()
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}

			for _, entry := range configKeys {
				key, _, _ := strings.Cut(entry, "\t")
				value, err := getConfigValue(cfg, key)
				if err != nil {
					return err
				}
				// Unset values are skipped
				if value != "" {
					fmt.Fprintf(streams.Out, "%s=%s\n", key, value)
				}
			}

			return nil
		},
	}

	return cmd
}
