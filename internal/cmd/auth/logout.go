package auth

import (
	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

type logoutOptions struct {
	streams  *iostreams.IOStreams
	hostname string
}

// NewCmdLogout creates the logout command
func NewCmdLogout(streams *iostreams.IOStreams) *cobra.Command {
	opts := &logoutOptions{
		streams: streams,
	}

	cmd := &cobra.Command{
		Use:     "logout",
		Short:   "Remove the stored token for a host",
		Example: `  $ snipper auth logout --hostname gitlab.example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteToken(opts.hostname); err != nil {
				return err
			}
			opts.streams.Success("Removed token for %s", opts.hostname)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.hostname, "hostname", "", "Host to log out of (required)")
	cmd.MarkFlagRequired("hostname")

	return cmd
}
