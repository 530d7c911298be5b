package auth

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/iostreams"
)

// NewCmdAuth creates the auth command
func NewCmdAuth(streams *iostreams.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth <command>",
		Short: "Store private tokens for snipper",
		Long: heredoc.Doc(`
			Store private tokens in the system keychain, one per host.

			A stored token is used when "-" is passed as the token argument.
			The SNIPPER_TOKEN environment variable takes precedence over the
			keychain.
		`),
	}

	cmd.AddCommand(NewCmdLogin(streams))
	cmd.AddCommand(NewCmdLogout(streams))
	cmd.AddCommand(NewCmdStatus(streams))
	cmd.AddCommand(NewCmdToken(streams))

	return cmd
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
