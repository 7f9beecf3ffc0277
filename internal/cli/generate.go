package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulekit-dev/rulekit/internal/catalog"
	"github.com/rulekit-dev/rulekit/internal/cli/wizard"
	"github.com/rulekit-dev/rulekit/internal/config"
	"github.com/rulekit-dev/rulekit/internal/defs"
	"github.com/rulekit-dev/rulekit/internal/template"
	"github.com/rulekit-dev/rulekit/internal/ui"
	"github.com/rulekit-dev/rulekit/pkg/version"
	"github.com/rulekit-dev/rulekit/templates"
)

// templatesFS is the templates root. Production uses the embedded tree;
// tests swap in a fstest.MapFS.
var templatesFS fs.FS = templates.FS

// headless detects whether interactive prompts can be shown.
var headless = ui.NewHeadlessManager()

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a rule template set into the current directory",
	Long: `Generate copies the template set for a (tool, category, framework)
triple into ./.<tool>, merging with existing content. Without flags it runs
the interactive selection; with --tool, --category and --framework it runs
non-interactively.

A missing template or a copy failure is reported and the command still
exits 0; only an unusable prompt environment is a process failure.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}

// addGenerateFlags registers the generation flags. They are shared between
// the root command and the generate subcommand.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("tool", "", "Assistant tool: cursor, claude, or gemini")
	cmd.Flags().String("category", "", "Project category: backend, frontend, or infrastructure")
	cmd.Flags().String("framework", "", "Framework (must belong to the category)")
	cmd.Flags().String("output", "", "Parent directory for the output (default: current directory)")
	cmd.Flags().String("templates-dir", "", "Use a local templates directory instead of the embedded one")
	cmd.Flags().Bool("yes", false, "Non-interactive; fill missing selections from .rulekit.yaml")
	cmd.Flags().Bool("save", false, "Write the selection to .rulekit.yaml after a successful run")
}

// newGenerator builds the template generator, honoring --templates-dir.
func newGenerator(cmd *cobra.Command) *template.Generator {
	if dir := getStringFlag(cmd, "templates-dir"); dir != "" {
		return template.NewGenerator(os.DirFS(dir))
	}
	return template.NewGenerator(templatesFS)
}

// resolveSelection produces the generation triple, either from flags and
// saved defaults or from the interactive wizard. The returned bool is
// false when the run was cancelled by the user.
func resolveSelection(cmd *cobra.Command) (*wizard.Selection, bool, error) {
	toolFlag := getStringFlag(cmd, "tool")
	categoryFlag := getStringFlag(cmd, "category")
	frameworkFlag := getStringFlag(cmd, "framework")

	if getBoolFlag(cmd, "yes") {
		defaults, err := config.Load(".")
		if err != nil {
			return nil, false, err
		}
		if toolFlag == "" {
			toolFlag = defaults.Tool
		}
		if categoryFlag == "" {
			categoryFlag = defaults.Category
		}
		if frameworkFlag == "" {
			frameworkFlag = defaults.Framework
		}
		if toolFlag == "" || categoryFlag == "" || frameworkFlag == "" {
			return nil, false, fmt.Errorf("--yes needs a complete selection from flags or %s", defs.DefaultsYAML)
		}
	}

	if toolFlag == "" && categoryFlag == "" && frameworkFlag == "" {
		if headless.IsHeadless() {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", symError(),
				cliError.Render("Interactive prompts require a terminal; pass --tool, --category and --framework instead."))
			return nil, false, wizard.ErrUnsupportedTerminal
		}

		PrintBanner(version.GetVersion())
		sel, err := wizard.Run()
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), cliMuted.Render("Generation cancelled."))
				return nil, false, nil
			}
			return nil, false, err
		}
		return sel, true, nil
	}

	if toolFlag == "" || categoryFlag == "" || frameworkFlag == "" {
		return nil, false, fmt.Errorf("--tool, --category and --framework must be provided together")
	}

	tool, err := catalog.ParseTool(toolFlag)
	if err != nil {
		return nil, false, err
	}
	cat, err := catalog.ParseCategory(categoryFlag)
	if err != nil {
		return nil, false, err
	}
	fw, err := catalog.ParseFramework(cat, frameworkFlag)
	if err != nil {
		return nil, false, err
	}

	return &wizard.Selection{Tool: tool, Category: cat, Framework: fw}, true, nil
}

// runGenerate executes the selection-and-generation workflow.
//
// Generation-phase failures (missing template, copy/IO errors) are printed
// and swallowed: the run is a handled, reported condition and the process
// exits 0. Only selection-environment and flag errors propagate.
func runGenerate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	sel, ok, err := resolveSelection(cmd)
	if err != nil || !ok {
		return err
	}

	outputDir := getStringFlag(cmd, "output")

	_, _ = fmt.Fprintf(out, "Generating %s template for %s/%s...\n",
		cliPrimary.Render(sel.Tool.Label()), sel.Category, sel.Framework)

	gen := newGenerator(cmd)
	req := template.Request{
		Tool:      sel.Tool,
		Category:  sel.Category,
		Framework: sel.Framework,
		TargetDir: outputDir,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var res *template.Result
	if headless.IsHeadless() {
		res, err = gen.Generate(ctx, req)
	} else {
		sp := ui.NewSpinner(headless, "Copying template files...")
		sp.Start()
		res, err = gen.Generate(ctx, req)
		sp.Stop()
	}

	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			_, _ = fmt.Fprintf(out, "%s %s\n", symError(), cliError.Render(fmt.Sprintf(
				"Template not found for %s/%s/%s", sel.Tool, sel.Category, sel.Framework)))
			return nil
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", symError(), cliError.Render("Error generating template: "+err.Error()))
		return nil
	}

	displayDest := res.Dest
	if outputDir == "" {
		displayDest = "./" + sel.Tool.Dir()
	}

	details := []string{
		"Files created in: " + cliPrimary.Render(displayDest),
		renderKeyValueLines([]kvPair{
			{"Files", fmt.Sprintf("%d copied", res.FilesCopied)},
			{"Directories", fmt.Sprintf("%d created", res.DirsCreated)},
		}),
	}
	if res.Migrated {
		details = append(details, cliMuted.Render(".cursorrules migrated to rules/rules.mdc"))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Template generated", details...))

	if getBoolFlag(cmd, "save") {
		saved := &config.Defaults{
			Tool:      string(sel.Tool),
			Category:  string(sel.Category),
			Framework: string(sel.Framework),
			Output:    outputDir,
		}
		if err := config.Save(".", saved); err != nil {
			_, _ = fmt.Fprintf(out, "%s\n", cliWarn.Render("Warning: failed to save defaults: "+err.Error()))
		}
	}

	return nil
}
