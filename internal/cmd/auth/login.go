package auth

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/api"
	"github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

type loginOptions struct {
	streams   *iostreams.IOStreams
	hostname  string
	withToken bool
}

// NewCmdLogin creates the login command
func NewCmdLogin(streams *iostreams.IOStreams) *cobra.Command {
	opts := &loginOptions{
		streams: streams,
	}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a private token for a host",
		Long: heredoc.Doc(`
			Store a private token for a host in the system keychain.

			The token is read from standard input.
		`),
		Example: heredoc.Doc(`
			$ echo "$TOKEN" | snipper auth login --hostname gitlab.example.com --with-token
			$ snipper auth login --hostname gitlab.example.com --with-token < token.txt
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts)
		},
	}

	cmd.Flags().StringVar(&opts.hostname, "hostname", "", "Host the token belongs to (required)")
	cmd.Flags().BoolVar(&opts.withToken, "with-token", false, "Read token from stdin")

	cmd.MarkFlagRequired("hostname")

	return cmd
}

func runLogin(opts *loginOptions) error {
	if !opts.withToken {
		return fmt.Errorf("interactive login is not supported. Pipe the token and pass --with-token")
	}

	data, err := io.ReadAll(opts.streams.In)
	if err != nil {
		return fmt.Errorf("failed to read token from stdin: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return fmt.Errorf("no token provided on stdin")
	}

	// Reject tokens that could never be sent
	if _, err := api.NewClient("https://"+opts.hostname+"/", token); err != nil {
		return err
	}

	if err := config.SetToken(opts.hostname, token); err != nil {
		return err
	}

	opts.streams.Success("Stored token for %s", opts.hostname)
	return nil
}
