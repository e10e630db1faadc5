package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/doghouse/pkg/template"
)

// viewCommand creates the view command for previewing templates locally.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		extVars map[string]string
		jpaths  []string
	)

	cmd := &cobra.Command{
		Use:   "view [template]",
		Short: "Preview a template locally",
		Long: `Compile a dashboard template and print a summary of what it
defines: title, description, layout and the widget list.

No credentials are needed; nothing touches the API.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], extVars, jpaths)
		},
	}

	cmd.Flags().StringToStringVar(&extVars, "ext-var", nil, "Jsonnet external variables (key=value)")
	cmd.Flags().StringArrayVar(&jpaths, "jpath", nil, "additional Jsonnet library search paths")

	return cmd
}

func (c *CLI) runView(ctx context.Context, path string, extVars map[string]string, jpaths []string) error {
	logger := loggerFromContext(ctx)

	doc, err := template.Load(path, extVars, jpaths)
	if err != nil {
		return err
	}
	logger.Debug("template compiled", "path", path)

	fmt.Println(renderTemplatePreview(doc))
	return nil
}

// renderTemplatePreview renders a compiled dashboard document as a terminal
// summary: title, description, layout line and a numbered widget list.
func renderTemplatePreview(doc map[string]any) string {
	var b strings.Builder

	title, _ := doc["title"].(string)
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	if desc, ok := doc["description"].(string); ok && desc != "" {
		b.WriteString(StyleDim.Render(desc))
		b.WriteString("\n")
	}

	layoutType, _ := doc["layout_type"].(string)
	widgets, _ := doc["widgets"].([]any)
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s layout · %d widgets", layoutType, len(widgets))))
	b.WriteString("\n\n")

	for i, item := range widgets {
		w, _ := item.(map[string]any)
		def, _ := w["definition"].(map[string]any)
		wtype, _ := def["type"].(string)
		wtitle, _ := def["title"].(string)
		if wtitle == "" {
			wtitle = StyleDim.Render("(untitled)")
		}
		b.WriteString(fmt.Sprintf("%3d. %s %s\n", i+1, StyleDim.Render("["+wtype+"]"), wtitle))
	}

	return b.String()
}
