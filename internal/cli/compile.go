package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/doghouse/pkg/template"
)

// compileCommand creates the compile command for local template evaluation.
func (c *CLI) compileCommand() *cobra.Command {
	var (
		output  string
		extVars map[string]string
		jpaths  []string
	)

	cmd := &cobra.Command{
		Use:   "compile [template]",
		Short: "Compile a template to JSON without uploading",
		Long: `Compile a Jsonnet dashboard template to JSON.

No credentials are needed; nothing touches the API. Plain JSON templates
are re-emitted with normalized formatting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompile(cmd.Context(), args[0], output, extVars, jpaths)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringToStringVar(&extVars, "ext-var", nil, "Jsonnet external variables (key=value)")
	cmd.Flags().StringArrayVar(&jpaths, "jpath", nil, "additional Jsonnet library search paths")

	return cmd
}

func (c *CLI) runCompile(ctx context.Context, path, output string, extVars map[string]string, jpaths []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := template.Load(path, extVars, jpaths)
	if err != nil {
		return err
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
	prog.done("Template compiled")
	printFile(output)
	printNextStep("Push it to Datadog", "doghouse push "+output)
	return nil
}
