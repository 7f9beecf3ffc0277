// Package templates holds the pre-authored rule templates compiled into
// the binary. The tree is addressed as <tool>/<category>/<framework>/ and
// its files are stamped into the user's project verbatim.
//
// The catalog may offer triples that have no directory here; that is a
// handled runtime condition ("template not found"), not a build error.
package templates

import "embed"

// FS holds all embedded templates. The all: prefix is required so
// dot-prefixed files such as .cursorrules are included.
//
//go:embed all:cursor all:claude all:gemini
var FS embed.FS
