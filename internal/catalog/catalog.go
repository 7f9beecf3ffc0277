// Package catalog defines the static selection tables for the rulekit CLI:
// the supported assistant tools, project categories, and the
// category-to-framework mapping. The tables are the single source of truth
// for both the interactive wizard and flag validation; template directories
// on disk are addressed by the (tool, category, framework) triple.
package catalog

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tool is an AI coding assistant whose configuration directory rulekit
// can populate.
type Tool string

const (
	ToolCursor Tool = "cursor"
	ToolClaude Tool = "claude"
	ToolGemini Tool = "gemini"
)

// Category is a project category that scopes the framework choices.
type Category string

const (
	CategoryBackend        Category = "backend"
	CategoryFrontend       Category = "frontend"
	CategoryInfrastructure Category = "infrastructure"
)

// Framework is a framework identifier, valid only within one category.
type Framework string

// Errors returned by catalog lookups.
var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownFramework = errors.New("unknown framework")
)

// tools lists every supported tool in display order.
var tools = []Tool{ToolCursor, ToolClaude, ToolGemini}

// categories lists every supported category in display order.
var categories = []Category{CategoryBackend, CategoryFrontend, CategoryInfrastructure}

// frameworksByCategory maps each category to its frameworks. Every category
// in the categories slice must have an entry here; TestCategoryTableSync
// enforces the pairing.
var frameworksByCategory = map[Category][]Framework{
	CategoryBackend:        {"fastify", "express", "nestjs", "django", "spring", "gin"},
	CategoryFrontend:       {"react", "nextjs", "vue", "angular"},
	CategoryInfrastructure: {"terraform", "kubernetes", "docker"},
}

// labelOverrides holds display labels that plain title-casing gets wrong.
var labelOverrides = map[string]string{
	"nextjs":     "Next.js",
	"nestjs":     "NestJS",
	"fastify":    "Fastify",
	"cursor":     "Cursor",
	"claude":     "Claude",
	"gemini":     "Gemini Code Assist",
	"gin":        "Gin",
	"vue":        "Vue.js",
	"kubernetes": "Kubernetes",
}

// displayName returns the human-readable label for an identifier.
// A cases.Caser is not safe for concurrent use, so one is built per call.
func displayName(id string) string {
	if label, ok := labelOverrides[id]; ok {
		return label
	}
	return cases.Title(language.English).String(id)
}

// Tools returns the supported tools in display order.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Categories returns the supported categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// FrameworksFor returns the frameworks registered for a category.
// An unknown category is a table-consistency bug, not user error, and is
// reported as ErrUnknownCategory.
func FrameworksFor(c Category) ([]Framework, error) {
	fws, ok := frameworksByCategory[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no framework table entry", ErrUnknownCategory, c)
	}
	out := make([]Framework, len(fws))
	copy(out, fws)
	return out, nil
}

// Label returns the display label for a tool.
func (t Tool) Label() string { return displayName(string(t)) }

// Dir returns the output directory name for a tool (".cursor", ".claude", ...).
func (t Tool) Dir() string { return "." + string(t) }

// Label returns the display label for a category.
func (c Category) Label() string { return displayName(string(c)) }

// Label returns the display label for a framework.
func (f Framework) Label() string { return displayName(string(f)) }

// ParseTool validates a tool identifier from a flag or config value.
func ParseTool(s string) (Tool, error) {
	for _, t := range tools {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: cursor, claude, gemini)", ErrUnknownTool, s)
}

// ParseCategory validates a category identifier from a flag or config value.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: backend, frontend, infrastructure)", ErrUnknownCategory, s)
}

// ParseFramework validates a framework identifier within its category.
func ParseFramework(c Category, s string) (Framework, error) {
	fws, err := FrameworksFor(c)
	if err != nil {
		return "", err
	}
	for _, f := range fws {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not registered for category %q", ErrUnknownFramework, s, c)
}
