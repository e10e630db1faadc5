package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/doghouse/pkg/dashboard"
	"github.com/matzehuels/doghouse/pkg/template"
)

// pushCommand creates the push command for uploading dashboards.
func (c *CLI) pushCommand() *cobra.Command {
	var (
		id      string
		dryRun  bool
		extVars map[string]string
		jpaths  []string
	)

	cmd := &cobra.Command{
		Use:   "push [template]",
		Short: "Compile a template and upload it to Datadog",
		Long: `Compile a dashboard template and upload it to Datadog.

The template may be plain JSON or a Jsonnet program. With --id (or an "id"
field in the document) the dashboard is updated in place when it still
exists; a stale or missing id falls back to creating a new dashboard.

Use --dry-run to print the compiled document and report whether it would
create or update, without uploading anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPush(cmd.Context(), args[0], id, dryRun, extVars, jpaths)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "update the dashboard with this ID instead of creating")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the compiled document, do not upload")
	cmd.Flags().StringToStringVar(&extVars, "ext-var", nil, "Jsonnet external variables (key=value)")
	cmd.Flags().StringArrayVar(&jpaths, "jpath", nil, "additional Jsonnet library search paths")

	return cmd
}

func (c *CLI) runPush(ctx context.Context, path, id string, dryRun bool, extVars map[string]string, jpaths []string) error {
	logger := loggerFromContext(ctx)

	doc, err := template.Load(path, extVars, jpaths)
	if err != nil {
		return err
	}
	logger.Debug("template compiled", "path", path)

	if issues := dashboard.ValidateDocument(doc); len(issues) > 0 {
		printError("Template failed validation")
		for _, issue := range issues {
			printDetail("%v", issue)
		}
		return fmt.Errorf("invalid dashboard document: %d problem(s)", len(issues))
	}

	// An explicit --id wins over an id baked into the document.
	if id == "" {
		if docID, ok := doc["id"].(string); ok {
			id = docID
		}
	}
	delete(doc, "id")

	if dryRun {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))

		if id == "" {
			printInfo("Dry run: would create a new dashboard")
			return nil
		}
		client, _, err := c.newClient()
		if err != nil {
			return err
		}
		exists, err := client.Exists(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			printInfo("Dry run: would update dashboard %s", id)
		} else {
			printInfo("Dry run: %s does not exist, would create a new dashboard", id)
		}
		return nil
	}

	client, cfg, err := c.newClient()
	if err != nil {
		return err
	}

	// A stale id must not fail the push; the original dashboard may have
	// been deleted out from under the template.
	if id != "" {
		exists, err := client.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			printInfo("Dashboard %s no longer exists, creating a new one", id)
			id = ""
		}
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Uploading dashboard...")
	spinner.Start()

	var result map[string]any
	if id != "" {
		result, err = client.Update(ctx, id, doc)
	} else {
		result, err = client.Create(ctx, doc)
	}
	if err != nil {
		spinner.StopWithError("Upload failed")
		return err
	}
	spinner.Stop()
	prog.done("Dashboard uploaded")

	title, _ := result["title"].(string)
	printSuccess("Pushed %q", title)
	if newID, ok := result["id"].(string); ok {
		printKeyValue("ID", newID)
	}
	if url, ok := result["url"].(string); ok {
		printKeyValue("URL", fmt.Sprintf("https://app.%s%s", cfg.Site, url))
	}
	if widgets, ok := result["widgets"].([]any); ok {
		layoutType, _ := result["layout_type"].(string)
		printStats(len(widgets), layoutType, false)
	}

	return nil
}
