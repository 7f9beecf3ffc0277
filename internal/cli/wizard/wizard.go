package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rulekit-dev/rulekit/internal/catalog"
)

// Run executes the three selection steps and returns the chosen triple.
// Each question runs as its own independent huh.Form to avoid the huh
// v0.8.x YOffset scroll bug that occurs when multiple groups share a
// single viewport.
func Run() (*Selection, error) {
	theme := newWizardTheme()
	sel := &Selection{}

	var tool string
	if err := runSelect(theme,
		"Select your AI coding assistant",
		"Templates are written into the assistant's configuration directory.",
		toolOptions(),
		&tool,
	); err != nil {
		return nil, err
	}
	sel.Tool = catalog.Tool(tool)

	var category string
	if err := runSelect(theme,
		"Select your project category",
		"This narrows the framework choices in the next step.",
		categoryOptions(),
		&category,
	); err != nil {
		return nil, err
	}
	sel.Category = catalog.Category(category)

	fwOpts, err := frameworkOptions(sel.Category)
	if err != nil {
		// Unreachable with a consistent catalog; the category list and
		// the framework table share the same constants.
		return nil, err
	}

	var framework string
	if err := runSelect(theme,
		fmt.Sprintf("Select your %s framework", sel.Category.Label()),
		"The matching template set will be generated.",
		fwOpts,
		&framework,
	); err != nil {
		return nil, err
	}
	sel.Framework = catalog.Framework(framework)

	return sel, nil
}

// runSelect runs one single-choice question as its own form.
func runSelect(theme *huh.Theme, title, description string, opts []huh.Option[string], value *string) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Description(description).
			Options(opts...).
			Value(value),
	)).WithTheme(theme).WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("%w: %v", ErrUnsupportedTerminal, err)
	}
	return nil
}

// toolOptions builds the options for the tool question from the catalog.
func toolOptions() []huh.Option[string] {
	tools := catalog.Tools()
	opts := make([]huh.Option[string], len(tools))
	for i, t := range tools {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s/)", t.Label(), t.Dir()), string(t))
	}
	return opts
}

// categoryOptions builds the options for the category question.
func categoryOptions() []huh.Option[string] {
	cats := catalog.Categories()
	opts := make([]huh.Option[string], len(cats))
	for i, c := range cats {
		opts[i] = huh.NewOption(c.Label(), string(c))
	}
	return opts
}

// frameworkOptions builds the options for the framework question,
// restricted to the chosen category.
func frameworkOptions(c catalog.Category) ([]huh.Option[string], error) {
	fws, err := catalog.FrameworksFor(c)
	if err != nil {
		return nil, err
	}
	opts := make([]huh.Option[string], len(fws))
	for i, f := range fws {
		opts[i] = huh.NewOption(f.Label(), string(f))
	}
	return opts, nil
}

// newWizardTheme creates a huh.Theme with rulekit branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
