package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent themed terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }

// kvPair is one aligned key/value line inside a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders pairs as aligned "key  value" lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := cliMuted.Render(fmt.Sprintf("%-*s", width, p.key))
		lines = append(lines, fmt.Sprintf("%s  %s", key, p.value))
	}
	return strings.Join(lines, "\n")
}

// renderCard renders a titled, bordered block.
func renderCard(title, body string) string {
	heading := cliPrimary.Bold(true).Render(title)
	content := heading
	if body != "" {
		content += "\n" + body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 1).
		Render(content)
}

// renderSuccessCard renders a checkmark title line plus detail lines.
func renderSuccessCard(title string, details ...string) string {
	lines := []string{fmt.Sprintf("%s %s", symSuccess(), cliSuccess.Bold(true).Render(title))}
	lines = append(lines, details...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// PrintBanner prints the startup banner with the current version.
func PrintBanner(version string) {
	title := cliPrimary.Bold(true).Render("rulekit " + version)
	tagline := cliMuted.Render("Rule templates for AI coding assistants")
	banner := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2).
		Render(title + "\n" + tagline)
	fmt.Fprintln(os.Stdout, banner)
}
