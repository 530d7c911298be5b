package auth

import (
	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

type statusOptions struct {
	streams  *iostreams.IOStreams
	hostname string
}

// NewCmdStatus creates the status command
func NewCmdStatus(streams *iostreams.IOStreams) *cobra.Command {
	opts := &statusOptions{
		streams: streams,
	}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which token would be used for a host",
		Long: `Show which token would be used for a host and where it comes from.

The token is not checked against the service.`,
		Example: `  $ snipper auth status --hostname gitlab.example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(opts)
		},
	}

	cmd.Flags().StringVar(&opts.hostname, "hostname", "", "Host to check (required)")
	cmd.MarkFlagRequired("hostname")

	return cmd
}

func runStatus(opts *statusOptions) error {
	token, source, err := config.GetTokenFromEnvOrKeyring(opts.hostname)
	if err != nil {
		opts.streams.Info("%s", opts.hostname)
		opts.streams.Error("No token available for %s", opts.hostname)
		opts.streams.Info("  Run 'snipper auth login --hostname %s --with-token' to store one", opts.hostname)
		return nil
	}

	opts.streams.Info("%s", opts.hostname)
	opts.streams.Success("Token available (%s)", source)
	opts.streams.Info("  - Token: %s", maskToken(token))

	return nil
}
