// Package template materializes pre-authored rule templates into a
// project directory. Templates live in an fs.FS (go:embed in production,
// fstest.MapFS in tests) under <tool>/<category>/<framework>/ and are
// copied verbatim; no rendering happens here.
package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rulekit-dev/rulekit/internal/catalog"
	"github.com/rulekit-dev/rulekit/internal/defs"
	"github.com/rulekit-dev/rulekit/internal/output"
)

// Request identifies one generation run.
type Request struct {
	Tool      catalog.Tool
	Category  catalog.Category
	Framework catalog.Framework

	// TargetDir is the directory the tool output directory is created
	// under. Empty means the current working directory.
	TargetDir string
}

// Result reports what a generation run wrote.
type Result struct {
	// Dest is the tool output directory ("<target>/.cursor", ...).
	Dest string

	FilesCopied int
	DirsCreated int

	// Migrated is true when a legacy .cursorrules file was moved to
	// rules/rules.mdc.
	Migrated bool
}

// Generator copies template trees from a templates root into a project.
type Generator struct {
	fsys fs.FS
}

// NewGenerator creates a Generator backed by the given templates root.
func NewGenerator(fsys fs.FS) *Generator {
	return &Generator{fsys: fsys}
}

// sourceRoot returns the fs path of the template directory for a triple.
func sourceRoot(req Request) string {
	return path.Join(string(req.Tool), string(req.Category), string(req.Framework))
}

// HasTemplate reports whether a template directory exists for the triple.
// The catalog offers no guarantee the directory exists on disk; missing
// templates are a handled runtime condition, not a startup failure.
func (g *Generator) HasTemplate(tool catalog.Tool, cat catalog.Category, fw catalog.Framework) bool {
	info, err := fs.Stat(g.fsys, path.Join(string(tool), string(cat), string(fw)))
	return err == nil && info.IsDir()
}

// List returns the relative paths of every file in the triple's template
// directory, in walk order.
func (g *Generator) List(tool catalog.Tool, cat catalog.Category, fw catalog.Framework) ([]string, error) {
	root := path.Join(string(tool), string(cat), string(fw))
	sub, err := fs.Sub(g.fsys, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, root)
	}

	var list []string
	err = fs.WalkDir(sub, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." || entry.IsDir() {
			return nil
		}
		list = append(list, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, root)
	}
	return list, nil
}

// ReadFile returns the raw content of one file inside a triple's template
// directory. Used by the preview command.
func (g *Generator) ReadFile(tool catalog.Tool, cat catalog.Category, fw catalog.Framework, name string) ([]byte, error) {
	full := path.Join(string(tool), string(cat), string(fw), name)
	data, err := fs.ReadFile(g.fsys, full)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, full)
	}
	return data, nil
}

// Generate copies the triple's template tree into <TargetDir>/.<tool>,
// merging with any existing content. Files overwrite on collision and
// directories are merged, never replaced. For the cursor tool a top-level
// legacy .cursorrules file is moved to rules/rules.mdc afterwards.
//
// The source-exists check runs before anything is written, so a missing
// template leaves the destination untouched. There is no rollback of a
// partially written tree when the copy fails midway.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	targetDir := req.TargetDir
	if targetDir == "" {
		targetDir = "."
	}

	root := sourceRoot(req)
	if info, err := fs.Stat(g.fsys, root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s/%s/%s", ErrTemplateNotFound, req.Tool, req.Category, req.Framework)
	}

	sub, err := fs.Sub(g.fsys, root)
	if err != nil {
		return nil, fmt.Errorf("open template root %q: %w", root, err)
	}

	dest := filepath.Join(filepath.Clean(targetDir), req.Tool.Dir())
	res := &Result{Dest: dest}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", dest, err)
	}

	walkErr := fs.WalkDir(sub, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each entry
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == "." {
			return nil
		}

		if err := validateDestPath(dest, p); err != nil {
			return err
		}

		destPath := filepath.Join(dest, filepath.FromSlash(p))

		if entry.IsDir() {
			if _, statErr := os.Stat(destPath); os.IsNotExist(statErr) {
				res.DirsCreated++
			}
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return fmt.Errorf("create directory %q: %w", destPath, err)
			}
			return nil
		}

		content, err := fs.ReadFile(sub, p)
		if err != nil {
			return fmt.Errorf("read template %q: %w", p, err)
		}

		// Parent directories may be implied by MapFS entries that never
		// appear as explicit directory entries.
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", filepath.Dir(destPath), err)
		}

		// Shell scripts keep their executable bit
		perm := fs.FileMode(0o644)
		if strings.HasSuffix(p, ".sh") {
			perm = 0o755
		}

		if err := os.WriteFile(destPath, content, perm); err != nil {
			return fmt.Errorf("write %q: %w", destPath, err)
		}

		output.Debug("copied template file", "path", p, "dest", destPath)
		res.FilesCopied++
		return nil
	})
	if walkErr != nil {
		return res, walkErr
	}

	if req.Tool == catalog.ToolCursor {
		migrated, err := migrateLegacyRules(dest)
		if err != nil {
			return res, err
		}
		res.Migrated = migrated
	}

	return res, nil
}

// migrateLegacyRules moves a top-level .cursorrules file to rules/rules.mdc,
// overwriting any existing file at the target. This is a single fixed
// rename for the old single-file convention, not a migration framework.
func migrateLegacyRules(dest string) (bool, error) {
	legacy := filepath.Join(dest, defs.CursorRulesFile)
	if _, err := os.Stat(legacy); err != nil {
		return false, nil
	}

	rulesDir := filepath.Join(dest, defs.RulesDir)
	if err := os.MkdirAll(rulesDir, 0o755); err != nil {
		return false, fmt.Errorf("create rules directory %q: %w", rulesDir, err)
	}

	target := filepath.Join(rulesDir, defs.RulesFile)
	if err := os.Rename(legacy, target); err != nil {
		return false, fmt.Errorf("migrate %s to %s: %w", defs.CursorRulesFile, target, err)
	}

	output.Debug("migrated legacy rules file", "from", legacy, "to", target)
	return true, nil
}

// validateDestPath ensures a template-relative path cannot escape dest.
// Template trees are authored in-repo, but the templates root can also be
// a user-supplied directory (--templates-dir).
func validateDestPath(dest, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	absPath := filepath.Join(absDest, cleaned)
	if absPath != absDest && !strings.HasPrefix(absPath, absDest+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes output directory", ErrPathTraversal, relPath)
	}

	return nil
}
