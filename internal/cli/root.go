// Package cli provides the Cobra command tree for the rulekit CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulekit-dev/rulekit/internal/output"
	"github.com/rulekit-dev/rulekit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "rulekit",
	Short: "Generate AI assistant rule templates for your project",
	Long: `rulekit copies pre-authored rule and configuration templates for AI
coding assistants (Cursor, Claude, Gemini) into your project.

Running rulekit with no arguments starts the interactive selection:
tool, project category, then framework. The matching template set is
written to ./.<tool> in the current directory.`,
	Version:      version.GetVersion(),
	RunE:         runGenerate,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("rulekit %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		output.SetupLogging(getBoolFlag(cmd, "verbose"))
	}

	// Bare `rulekit` behaves exactly like `rulekit generate`.
	addGenerateFlags(rootCmd)
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
