package completion

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/iostreams"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

// NewCmdCompletion creates the completion command
func NewCmdCompletion(streams *iostreams.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: heredoc.Doc(`
			Generate the autocompletion script for bash, zsh, fish or powershell.

			Completion covers --mode, --visibility and the config keys.
		`),
		Example: heredoc.Doc(`
			# Load completions in the current bash session
			$ source <(snipper completion bash)

			# Install zsh completions
			$ snipper completion zsh > "${fpath[1]}/_snipper"

			# Install fish completions
			$ snipper completion fish > ~/.config/fish/completions/snipper.fish
		`),
		Args:                  cobra.ExactArgs(1),
		ValidArgs:             shells,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(streams.Out, true)
			case "zsh":
				return root.GenZshCompletion(streams.Out)
			case "fish":
				return root.GenFishCompletion(streams.Out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(streams.Out)
			default:
				return fmt.Errorf("unsupported shell %q (must be one of bash, zsh, fish, powershell)", args[0])
			}
		},
	}

	return cmd
}
