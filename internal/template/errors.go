package template

import "errors"

// Errors returned by the template generator.
var (
	// ErrTemplateNotFound is returned when the (tool, category, framework)
	// triple has no template directory in the templates root.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrPathTraversal is returned when a template path would escape the
	// destination directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
