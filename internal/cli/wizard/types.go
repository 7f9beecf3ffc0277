// Package wizard provides the interactive three-step selection flow:
// tool, then category, then a framework scoped to that category.
package wizard

import (
	"errors"

	"github.com/rulekit-dev/rulekit/internal/catalog"
)

// Selection holds the user's answers from the wizard.
type Selection struct {
	Tool      catalog.Tool
	Category  catalog.Category
	Framework catalog.Framework
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user aborts the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")

	// ErrUnsupportedTerminal is returned when the prompt layer cannot
	// render, e.g. stdin is not a terminal. This is the only wizard
	// error the CLI escalates to a non-zero exit.
	ErrUnsupportedTerminal = errors.New("interactive prompts require a terminal")
)
