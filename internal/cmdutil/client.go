// Package cmdutil provides shared utilities for command implementations.
package cmdutil

import (
	"fmt"
	"os"
	"time"

	"github.com/rbansal42/snipper/internal/api"
	"github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

// DebugEnv enables the request trace on stderr
const DebugEnv = "SNIPPER_DEBUG"

// NewAPIClient creates a client for opts.URL. A token of "-" is replaced by
// the stored credential for the URL's host.
func NewAPIClient(opts config.Opts, cfg *config.Config, streams *iostreams.IOStreams) (*api.Client, error) {
	token, err := config.ResolveToken(opts.URL, opts.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	clientOpts := []api.ClientOption{}
	if cfg != nil && cfg.HTTPTimeout > 0 {
		clientOpts = append(clientOpts, api.WithTimeout(time.Duration(cfg.HTTPTimeout)*time.Second))
	}
	if os.Getenv(DebugEnv) != "" {
		clientOpts = append(clientOpts, api.WithDebug(streams.ErrOut))
	}

	return api.NewClient(opts.URL, token, clientOpts...)
}
