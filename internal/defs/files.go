package defs

// Common file and directory names used across the project.
const (
	// CursorRulesFile is the legacy single-file Cursor rules convention.
	CursorRulesFile = ".cursorrules"

	// RulesDir is the directory-of-rules convention that replaced it.
	RulesDir = "rules"

	// RulesFile is the migrated rules file name under RulesDir.
	RulesFile = "rules.mdc"

	// DefaultsYAML is the optional per-project defaults file.
	DefaultsYAML = ".rulekit.yaml"
)
