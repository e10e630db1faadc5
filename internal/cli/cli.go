// Package cli implements the doghouse command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/doghouse/pkg/buildinfo"
	"github.com/matzehuels/doghouse/pkg/config"
	"github.com/matzehuels/doghouse/pkg/datadog"
	"github.com/matzehuels/doghouse/pkg/httputil"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "doghouse"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Credential flags, resolved against the environment and config file
	// when a command needs the API.
	apiKey string
	appKey string
	site   string

	// Preconstructed client and config; when set, newClient returns them
	// instead of resolving credentials. Tests use this to point commands at
	// a local server.
	client *datadog.Client
	cfg    *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "doghouse",
		Short:        "Doghouse builds and manages Datadog dashboards",
		Long:         `Doghouse is a CLI tool for compiling dashboard templates (JSON or Jsonnet) and pushing them to the Datadog Dashboards API, keeping dashboard definitions in version control instead of the web UI.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.apiKey, "api-key", "", "Datadog API key (overrides DD_API_KEY)")
	root.PersistentFlags().StringVar(&c.appKey, "app-key", "", "Datadog application key (overrides DD_APP_KEY)")
	root.PersistentFlags().StringVar(&c.site, "site", "", "Datadog site, e.g. datadoghq.eu (overrides DD_SITE)")

	// Register all subcommands
	root.AddCommand(c.pushCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.compileCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.openCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// loadConfig resolves settings from flags, environment, and the config file.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(config.Overrides{
		APIKey: c.apiKey,
		AppKey: c.appKey,
		Site:   c.site,
	})
}

// newClient builds an authenticated Datadog API client, or fails with a
// configuration error when credentials are missing.
func (c *CLI) newClient() (*datadog.Client, *config.Config, error) {
	if c.client != nil {
		return c.client, c.cfg, nil
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireKeys(); err != nil {
		return nil, nil, err
	}
	client, err := datadog.NewClient(cfg.APIKey, cfg.AppKey, cfg.Site)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory ($XDG_CACHE_HOME/doghouse/ or
// ~/.cache/doghouse/). It is the same resolution the API client's list
// cache uses, so `cache clear` clears what the client wrote.
func cacheDir() (string, error) {
	return httputil.DefaultCacheDir()
}
