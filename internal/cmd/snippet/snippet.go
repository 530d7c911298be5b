// Package snippet implements the mode-driven snippet command.
package snippet

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rbansal42/snipper/internal/api"
	"github.com/rbansal42/snipper/internal/browser"
	"github.com/rbansal42/snipper/internal/cmdutil"
	"github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

// Options holds the options for the snippet command
type Options struct {
	config.Opts

	JSON    bool
	Web     bool
	Streams *iostreams.IOStreams
}

// NewCmdSnippet creates the command that creates, updates or gets a snippet
// depending on --mode
func NewCmdSnippet(streams *iostreams.IOStreams) *cobra.Command {
	opts := &Options{Streams: streams}

	cmd := &cobra.Command{
		Use:   "snipper --mode <Create|Update|Get> --title <title> <url> <token> [<file-content>]",
		Short: "Create, update and fetch snippets from the command line",
		Long: heredoc.Doc(`
			snipper manages snippets through the snippets endpoint of a
			GitLab-compatible API.

			  Create  creates a snippet holding a single init.txt file
			  Get     finds the first snippet whose title matches --title exactly
			  Update  finds the snippet by title and uploads <file-content>
			          to --file-path in it

			<url> is the snippets endpoint. For updates the snippet id is appended
			to it, so it should end with a slash.

			Pass "-" as <token> to use the token from SNIPPER_TOKEN or the one
			stored with 'snipper auth login'. When updating without <file-content>
			the content is read from standard input.
		`),
		Example: heredoc.Doc(`
			# Create a snippet
			$ snipper --mode Create --title notes https://gitlab.example.com/api/v4/snippets/ $TOKEN

			# Fetch it by title
			$ snipper --mode Get --title notes --json https://gitlab.example.com/api/v4/snippets/ -

			# Upload a file into it
			$ snipper --mode Update --title notes --file-path todo.md https://gitlab.example.com/api/v4/snippets/ - "buy milk"

			# Upload from a pipe
			$ cat build.log | snipper --mode Update --title notes --file-path build.log https://gitlab.example.com/api/v4/snippets/ -
		`),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.URL = args[0]
			opts.Token = args[1]
			if len(args) > 2 {
				opts.FileContent = args[2]
			}
			return runSnippet(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Var(&opts.Mode, "mode", "Operation to perform: Create, Update or Get (required)")
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Snippet title (required)")
	cmd.Flags().StringVarP(&opts.FilePath, "file-path", "f", "", "Path of the file to upload (required for Update)")
	cmd.Flags().StringVar(&opts.Visibility, "visibility", config.DefaultVisibility, "Visibility of created snippets")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.Web, "web", false, "Open the snippet in the browser")

	cmd.MarkFlagRequired("mode")
	cmd.MarkFlagRequired("title")

	_ = cmd.RegisterFlagCompletionFunc("mode", cmdutil.StaticFlagCompletion(cmdutil.ModeNames))
	_ = cmd.RegisterFlagCompletionFunc("visibility", cmdutil.StaticFlagCompletion(cmdutil.VisibilityLevels))

	return cmd
}

func runSnippet(cmd *cobra.Command, opts *Options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	if !cmd.Flags().Changed("visibility") && cfg.Visibility != "" {
		opts.Visibility = cfg.Visibility
	}

	// Update without positional content reads a pipe
	if opts.Mode == config.ModeUpdate && opts.FileContent == "" && !opts.Streams.IsStdinTTY() {
		content, err := io.ReadAll(opts.Streams.In)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		opts.FileContent = string(content)
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	client, err := cmdutil.NewAPIClient(opts.Opts, cfg, opts.Streams)
	if err != nil {
		return err
	}

	snippet, err := Run(cmd.Context(), client, opts.Opts)
	if err != nil {
		return err
	}

	if opts.Web {
		if snippet.WebURL == "" {
			return fmt.Errorf("no URL available for this snippet")
		}
		if err := browser.Open(cfg.Browser, snippet.WebURL); err != nil {
			return fmt.Errorf("could not open browser: %w", err)
		}
		opts.Streams.Success("Opened %s in your browser", snippet.WebURL)
		return nil
	}

	if opts.JSON {
		return outputJSON(opts.Streams, snippet)
	}

	switch opts.Mode {
	case config.ModeCreate:
		opts.Streams.Success("Created snippet %d", snippet.ID)
	case config.ModeUpdate:
		opts.Streams.Success("Uploaded %s to snippet %d", opts.FilePath, snippet.ID)
	}

	outputDetails(opts.Streams, snippet)
	return nil
}

// Run performs the operation selected by opts.Mode. Update looks the
// snippet up by title and uploads the file to it.
func Run(ctx context.Context, client *api.Client, opts config.Opts) (*api.Snippet, error) {
	switch opts.Mode {
	case config.ModeGet:
		return client.GetSnippet(ctx, opts.Title)

	case config.ModeCreate:
		snippet, err := client.CreateSnippet(ctx, opts.Title, opts.Visibility)
		if err != nil {
			return nil, fmt.Errorf("failed to create snippet: %w", err)
		}
		return snippet, nil

	case config.ModeUpdate:
		if opts.FilePath == "" || opts.FileContent == "" {
			return nil, config.ErrMissingFile
		}
		existing, err := client.GetSnippet(ctx, opts.Title)
		if err != nil {
			return nil, err
		}
		snippet, err := client.UploadFile(ctx, existing.ID, opts.FilePath, opts.FileContent)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", opts.FilePath, err)
		}
		return snippet, nil

	default:
		return nil, fmt.Errorf("unknown mode %q", opts.Mode)
	}
}
