package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// serverAssignedFields are set by the API and stripped from fetched
// documents so they can be pushed back without modification.
var serverAssignedFields = []string{
	"id", "url", "author_handle", "author_name",
	"created_at", "modified_at", "deleted_at",
}

// fetchCommand creates the fetch command for downloading dashboards.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [id]",
		Short: "Download a dashboard definition from Datadog",
		Long: `Download a dashboard definition as JSON.

Without an ID, an interactive picker lists all dashboards in the
organization.

Server-assigned fields (id, url, timestamps) are stripped so the output
can be committed and pushed back later. Use --raw to keep them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			return c.runFetch(cmd.Context(), id, output, raw)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep server-assigned fields (id, url, timestamps)")

	return cmd
}

func (c *CLI) runFetch(ctx context.Context, id, output string, raw bool) error {
	client, _, err := c.newClient()
	if err != nil {
		return err
	}

	if id == "" {
		selected, err := pickDashboard(ctx, client, false)
		if err != nil || selected == nil {
			return err
		}
		id = selected.ID
	}

	spinner := newSpinnerWithContext(ctx, "Fetching dashboard...")
	spinner.Start()

	doc, err := client.Get(ctx, id)
	if err != nil {
		spinner.StopWithError("Fetch failed")
		return err
	}
	spinner.Stop()

	if !raw {
		for _, field := range serverAssignedFields {
			delete(doc, field)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if output == "" {
		fmt.Fprint(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	title, _ := doc["title"].(string)
	printSuccess("Fetched %q", title)
	printFile(output)
	if widgets, ok := doc["widgets"].([]any); ok {
		layoutType, _ := doc["layout_type"].(string)
		printStats(len(widgets), layoutType, false)
	}
	return nil
}
