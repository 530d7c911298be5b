package snippet

import (
	"encoding/json"
	"fmt"

	"github.com/rbansal42/snipper/internal/api"
	"github.com/rbansal42/snipper/internal/iostreams"
)

func outputJSON(streams *iostreams.IOStreams, snippet *api.Snippet) error {
	data, err := json.MarshalIndent(snippet, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(streams.Out, string(data))
	return nil
}

func outputDetails(streams *iostreams.IOStreams, snippet *api.Snippet) {
	bold := streams.ColorFunc(iostreams.Bold)

	if snippet.Title != "" {
		fmt.Fprintln(streams.Out, bold(snippet.Title))
	} else {
		fmt.Fprintln(streams.Out, "(untitled snippet)")
	}
	fmt.Fprintf(streams.Out, "ID: %d\n", snippet.ID)

	if snippet.FileName != "" {
		fmt.Fprintf(streams.Out, "File name: %s\n", snippet.FileName)
	}

	// Service order is kept
	if len(snippet.Files) > 0 {
		fmt.Fprintln(streams.Out, "Files:")
		for _, f := range snippet.Files {
			fmt.Fprintf(streams.Out, "  %s\n", f.Path)
		}
	}

	if snippet.WebURL != "" {
		fmt.Fprintf(streams.Out, "View in browser: %s\n", snippet.WebURL)
	}
}
