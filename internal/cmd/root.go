package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/cmd/auth"
	"github.com/rbansal42/snipper/internal/cmd/completion"
	snipperconfigcmd "github.com/rbansal42/snipper/internal/cmd/config"
	"github.com/rbansal42/snipper/internal/cmd/snippet"
	"github.com/rbansal42/snipper/internal/iostreams"
)

var (
	// Version is set at build time
	Version = "dev"

	// BuildDate is set at build time
	BuildDate = "unknown"
)

// NewCmdRoot creates the root command: the snippet command plus the
// auth, completion, config and version subcommands
func NewCmdRoot(streams *iostreams.IOStreams) *cobra.Command {
	rootCmd := snippet.NewCmdSnippet(streams)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of snipper",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "snipper version %s (%s)\n", Version, BuildDate)
		},
	})

	rootCmd.AddCommand(auth.NewCmdAuth(streams))
	rootCmd.AddCommand(completion.NewCmdCompletion(streams))
	rootCmd.AddCommand(snipperconfigcmd.NewCmdConfig(streams))

	return rootCmd
}

// Execute runs the root command and prints any error once
func Execute() error {
	streams := iostreams.New()

	err := NewCmdRoot(streams).Execute()
	if err != nil {
		streams.Error("%s", err)
	}
	return err
}
