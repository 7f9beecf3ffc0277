package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/rulekit-dev/rulekit/internal/catalog"
)

var previewCmd = &cobra.Command{
	Use:   "preview <tool> <category> <framework> [file]",
	Short: "Render a template file in the terminal",
	Long: `Preview renders one file from a template set as markdown without
writing anything. When no file is given, the first markdown file in the
template directory is shown.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().String("templates-dir", "", "Use a local templates directory instead of the embedded one")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tool, err := catalog.ParseTool(args[0])
	if err != nil {
		return err
	}
	cat, err := catalog.ParseCategory(args[1])
	if err != nil {
		return err
	}
	fw, err := catalog.ParseFramework(cat, args[2])
	if err != nil {
		return err
	}

	gen := newGenerator(cmd)

	name := ""
	if len(args) == 4 {
		name = args[3]
	} else {
		files, err := gen.List(tool, cat, fw)
		if err != nil {
			return err
		}
		for _, f := range files {
			if strings.HasSuffix(f, ".md") || strings.HasSuffix(f, ".mdc") {
				name = f
				break
			}
		}
		if name == "" && len(files) > 0 {
			name = files[0]
		}
	}
	if name == "" {
		return fmt.Errorf("no files in template %s/%s/%s", tool, cat, fw)
	}

	data, err := gen.ReadFile(tool, cat, fw, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, cliMuted.Render(fmt.Sprintf("%s/%s/%s/%s", tool, cat, fw, name)))

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to raw output when the terminal renderer cannot
		// be constructed.
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	rendered, err := renderer.Render(string(data))
	if err != nil {
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
