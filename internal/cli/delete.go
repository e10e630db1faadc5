package cli

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// deleteCommand creates the delete command for removing dashboards.
func (c *CLI) deleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a dashboard from Datadog",
		Long: `Delete the dashboard with the given ID.

Without an ID, an interactive picker lists all dashboards in the
organization.

Deletion is permanent. The command asks for confirmation unless --yes
is passed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			return c.runDelete(cmd.Context(), id, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (c *CLI) runDelete(ctx context.Context, id string, yes bool) error {
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

	// Look the dashboard up first so the prompt can show its title.
	doc, err := client.Get(ctx, id)
	if err != nil {
		return err
	}
	title, _ := doc["title"].(string)

	if !yes {
		printWarning("This permanently deletes %q (%s)", title, id)
		if !confirm("Delete?") {
			printInfo("Aborted")
			return nil
		}
	}

	spinner := newSpinnerWithContext(ctx, "Deleting dashboard...")
	spinner.Start()

	if err := client.Delete(ctx, id); err != nil {
		spinner.StopWithError("Delete failed")
		return err
	}
	spinner.Stop()

	printSuccess("Deleted %q", title)
	return nil
}

// confirm prompts on stdin and returns true for "y"/"yes" answers.
func confirm(prompt string) bool {
	printInline("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
