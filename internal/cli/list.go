package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulekit-dev/rulekit/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported tools, categories and frameworks",
	Long: `List shows the selection catalog. With --check, every offered
(tool, category, framework) triple is verified against the templates root
and missing template directories are marked.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("check", false, "Verify each triple has a template directory")
	listCmd.Flags().String("templates-dir", "", "Use a local templates directory instead of the embedded one")
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	toolPairs := make([]kvPair, 0, len(catalog.Tools()))
	for _, t := range catalog.Tools() {
		toolPairs = append(toolPairs, kvPair{string(t), fmt.Sprintf("%s → %s/", t.Label(), t.Dir())})
	}
	_, _ = fmt.Fprintln(out, renderCard("Tools", renderKeyValueLines(toolPairs)))

	for _, c := range catalog.Categories() {
		fws, err := catalog.FrameworksFor(c)
		if err != nil {
			return err
		}
		names := make([]string, len(fws))
		for i, f := range fws {
			names[i] = string(f)
		}
		_, _ = fmt.Fprintln(out, renderCard(c.Label(), strings.Join(names, ", ")))
	}

	if getBoolFlag(cmd, "check") {
		return runListCheck(cmd)
	}
	return nil
}

// runListCheck reports template availability for every catalog triple.
// The catalog and the templates tree are maintained independently; this
// is the only place the pairing is verified.
func runListCheck(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	gen := newGenerator(cmd)

	_, _ = fmt.Fprintln(out, cliPrimary.Bold(true).Render("Template availability"))

	missing := 0
	for _, t := range catalog.Tools() {
		for _, c := range catalog.Categories() {
			fws, err := catalog.FrameworksFor(c)
			if err != nil {
				return err
			}
			for _, f := range fws {
				triple := fmt.Sprintf("%s/%s/%s", t, c, f)
				if gen.HasTemplate(t, c, f) {
					_, _ = fmt.Fprintf(out, "  %s %s\n", symSuccess(), triple)
				} else {
					_, _ = fmt.Fprintf(out, "  %s %s\n", symError(), cliMuted.Render(triple))
					missing++
				}
			}
		}
	}

	if missing > 0 {
		_, _ = fmt.Fprintln(out, cliWarn.Render(fmt.Sprintf("%d offered triple(s) have no template directory", missing)))
	}
	return nil
}
