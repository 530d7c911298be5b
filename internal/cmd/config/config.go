package config

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	coreconfig "github.com/rbansal42/snipper/internal/config"
	"github.com/rbansal42/snipper/internal/iostreams"
)

// configKeys lists the settings in display order, with a completion description
var configKeys = []string{
	"visibility\tVisibility of created snippets",
	"http_timeout\tHTTP request timeout in seconds",
	"browser\tBrowser used by --web",
}

// NewCmdConfig creates the config command
func NewCmdConfig(streams *iostreams.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage configuration for snipper",
		Long: heredoc.Doc(`
			Display or change configuration settings for snipper.

			Configuration is stored in ~/.config/snipper/config.yml or the directory
			specified by the SNIPPER_CONFIG_DIR environment variable.

			Available settings:
			  visibility     Visibility of created snippets when --visibility is not given
			  http_timeout   HTTP request timeout in seconds
			  browser        The browser used by --web
		`),
	}

	cmd.AddCommand(NewCmdConfigGet(streams))
	cmd.AddCommand(NewCmdConfigSet(streams))
	cmd.AddCommand(NewCmdConfigList(streams))

	return cmd
}

// getConfigValue returns the value of a config key
func getConfigValue(cfg *coreconfig.Config, key string) (string, error) {
	switch key {
	case "visibility":
		return cfg.Visibility, nil
	case "http_timeout":
		return strconv.Itoa(cfg.HTTPTimeout), nil
	case "browser":
		return cfg.Browser, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a config value with validation
func setConfigValue(cfg *coreconfig.Config, key, value string) error {
	switch key {
	case "visibility":
		if value == "" {
			return fmt.Errorf("visibility cannot be empty")
		}
		cfg.Visibility = value

	case "http_timeout":
		timeout, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid http_timeout: %s (must be a number)", value)
		}
		if timeout < 1 {
			return fmt.Errorf("http_timeout must be at least 1 second")
		}
		cfg.HTTPTimeout = timeout

	case "browser":
		cfg.Browser = value

	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return nil
}
