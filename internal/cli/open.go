package cli

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
)

// openCommand creates the open command for opening dashboards in a browser.
func (c *CLI) openCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "open [id]",
		Short: "Open a dashboard in the browser",
		Long: `Open the dashboard with the given ID in your browser.

Without an ID, an interactive picker lists all dashboards in the
organization.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			return c.runOpen(cmd.Context(), id, refresh)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the local list cache")

	return cmd
}

func (c *CLI) runOpen(ctx context.Context, id string, refresh bool) error {
	client, cfg, err := c.newClient()
	if err != nil {
		return err
	}

	var path string

	if id == "" {
		selected, err := pickDashboard(ctx, client, refresh)
		if err != nil || selected == nil {
			return err
		}
		path = selected.URL
		id = selected.ID
	} else {
		doc, err := client.Get(ctx, id)
		if err != nil {
			return err
		}
		path, _ = doc["url"].(string)
	}

	if path == "" {
		path = "/dashboard/" + id
	}
	target := fmt.Sprintf("https://app.%s%s", cfg.Site, path)

	if err := openBrowser(target); err != nil {
		printInfo("Open this URL in your browser:")
		fmt.Println(StyleLink.Render(target))
		return nil
	}
	printSuccess("Opened %s", target)
	return nil
}

func openBrowser(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("URL scheme must be http or https, got %q", parsed.Scheme)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "linux":
		cmd = exec.Command("xdg-open", rawURL)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", rawURL)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
