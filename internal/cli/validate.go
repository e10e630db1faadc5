package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/doghouse/pkg/dashboard"
	"github.com/matzehuels/doghouse/pkg/template"
)

// validateCommand creates the validate command for checking templates locally.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		extVars map[string]string
		jpaths  []string
	)

	cmd := &cobra.Command{
		Use:   "validate [template...]",
		Short: "Validate dashboard templates without uploading",
		Long: `Compile each template and check the resulting document for the
structure the Dashboards API requires (title, layout_type, widgets).

Exits non-zero if any template fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args, extVars, jpaths)
		},
	}

	cmd.Flags().StringToStringVar(&extVars, "ext-var", nil, "Jsonnet external variables (key=value)")
	cmd.Flags().StringArrayVar(&jpaths, "jpath", nil, "additional Jsonnet library search paths")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, paths []string, extVars map[string]string, jpaths []string) error {
	failed := 0

	for _, path := range paths {
		doc, err := template.Load(path, extVars, jpaths)
		if err != nil {
			printError("%s", path)
			printDetail("%v", err)
			failed++
			continue
		}

		if issues := dashboard.ValidateDocument(doc); len(issues) > 0 {
			printError("%s", path)
			for _, issue := range issues {
				printDetail("%v", issue)
			}
			failed++
			continue
		}

		printSuccess("%s", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d template(s) failed validation", failed, len(paths))
	}
	return nil
}
