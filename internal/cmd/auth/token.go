package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

// NewCmdToken creates the token command
func NewCmdToken(streams *iostreams.IOStreams) *cobra.Command {
	var hostname string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the token used for a host",
		Example: `  # Use the stored token with curl
  $ curl -H "PRIVATE-TOKEN: $(snipper auth token --hostname gitlab.example.com)" https://gitlab.example.com/api/v4/snippets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _, err := config.GetTokenFromEnvOrKeyring(hostname)
			if err != nil {
				return err
			}
			fmt.Fprintln(streams.Out, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&hostname, "hostname", "", "Host of the token (required)")
	cmd.MarkFlagRequired("hostname")

	return cmd
}
