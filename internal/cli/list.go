package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/doghouse/pkg/datadog"
)

// listCommand creates the list command for showing all dashboards.
func (c *CLI) listCommand() *cobra.Command {
	var (
		refresh bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all dashboards in the organization",
		Long: `List all dashboards in the organization.

Results are cached locally for a few minutes; use --refresh to bypass
the cache. Use --json for machine-readable output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), refresh, asJSON)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the local list cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")

	return cmd
}

func (c *CLI) runList(ctx context.Context, refresh, asJSON bool) error {
	client, _, err := c.newClient()
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Listing dashboards...")
	spinner.Start()

	dashboards, err := client.List(ctx, refresh)
	if err != nil {
		spinner.StopWithError("List failed")
		return err
	}
	spinner.Stop()

	if asJSON {
		data, err := json.MarshalIndent(dashboards, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if len(dashboards) == 0 {
		printInfo("No dashboards found")
		return nil
	}

	fmt.Println(renderDashboardTable(dashboards))
	printDetail("%d dashboards", len(dashboards))
	return nil
}

// renderDashboardTable renders dashboard summaries as a bordered table.
func renderDashboardTable(dashboards []datadog.Summary) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(dashboards))
	for _, d := range dashboards {
		rows = append(rows, []string{d.ID, d.Title, d.LayoutType, d.URL, d.ModifiedAt})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Title", "Layout", "URL", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}
