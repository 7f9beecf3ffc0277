package cli

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"

	"github.com/rulekit-dev/rulekit/internal/cli/wizard"
)

func cliTestFS() fstest.MapFS {
	return fstest.MapFS{
		"cursor/backend/fastify/rules.mdc": &fstest.MapFile{
			Data: []byte("# Fastify rules\n"),
		},
		"claude/frontend/react/project_knowledge.md": &fstest.MapFile{
			Data: []byte("# React project knowledge\n"),
		},
	}
}

// withTestTemplates swaps the embedded templates for a test FS and forces
// headless mode for the duration of the test.
func withTestTemplates(t *testing.T, fsys fs.FS) {
	t.Helper()
	prev := templatesFS
	templatesFS = fsys
	headless.ForceHeadless(true)
	t.Cleanup(func() {
		templatesFS = prev
		headless.ClearForce()
	})
}

// newGenerateTestCmd builds an isolated generate command so test runs do
// not share flag state through the global command tree.
func newGenerateTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "generate", RunE: runGenerate, SilenceUsage: true, SilenceErrors: true}
	addGenerateFlags(cmd)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestGenerateEndToEndCursor(t *testing.T) {
	withTestTemplates(t, cliTestFS())
	t.Chdir(t.TempDir())

	cmd, buf := newGenerateTestCmd()
	cmd.SetArgs([]string{"--tool", "cursor", "--category", "backend", "--framework", "fastify"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(".cursor", "rules.mdc"))
	if err != nil {
		t.Fatalf("expected .cursor/rules.mdc: %v", err)
	}
	if string(data) != "# Fastify rules\n" {
		t.Errorf("content = %q", string(data))
	}

	out := buf.String()
	if !strings.Contains(out, "Files created in: ./.cursor") {
		t.Errorf("output should mention ./.cursor, got:\n%s", out)
	}
	if !strings.Contains(out, "Generating Cursor template for backend/fastify") {
		t.Errorf("output should include status line, got:\n%s", out)
	}
}

func TestGenerateEndToEndClaude(t *testing.T) {
	withTestTemplates(t, cliTestFS())
	t.Chdir(t.TempDir())

	cmd, buf := newGenerateTestCmd()
	cmd.SetArgs([]string{"--tool", "claude", "--category", "frontend", "--framework", "react"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(".claude", "project_knowledge.md"))
	if err != nil {
		t.Fatalf("expected .claude/project_knowledge.md: %v", err)
	}
	if string(data) != "# React project knowledge\n" {
		t.Errorf("content = %q", string(data))
	}
	if strings.Contains(buf.String(), "migrated") {
		t.Errorf("no migration should be reported for claude:\n%s", buf.String())
	}
}

func TestGenerateMissingTemplateIsHandled(t *testing.T) {
	withTestTemplates(t, cliTestFS())
	t.Chdir(t.TempDir())

	cmd, buf := newGenerateTestCmd()
	cmd.SetArgs([]string{"--tool", "gemini", "--category", "backend", "--framework", "express"})

	// A missing template is reported, not escalated: exit 0.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("missing template must not be a process failure, got: %v", err)
	}

	if !strings.Contains(buf.String(), "Template not found for gemini/backend/express") {
		t.Errorf("output should report the missing triple, got:\n%s", buf.String())
	}
	if _, err := os.Stat(".gemini"); !os.IsNotExist(err) {
		t.Error(".gemini should not have been created")
	}
}

func TestGeneratePartialFlagsError(t *testing.T) {
	withTestTemplates(t, cliTestFS())

	cmd, _ := newGenerateTestCmd()
	cmd.SetArgs([]string{"--tool", "cursor"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for partial flags")
	}
}

func TestGenerateUnknownIdentifiers(t *testing.T) {
	withTestTemplates(t, cliTestFS())

	tests := []struct {
		name string
		args []string
	}{
		{"unknown_tool", []string{"--tool", "copilot", "--category", "backend", "--framework", "fastify"}},
		{"unknown_category", []string{"--tool", "cursor", "--category", "mobile", "--framework", "fastify"}},
		{"framework_wrong_category", []string{"--tool", "cursor", "--category", "frontend", "--framework", "fastify"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newGenerateTestCmd()
			cmd.SetArgs(tt.args)
			if err := cmd.Execute(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGenerateHeadlessWithoutFlags(t *testing.T) {
	withTestTemplates(t, cliTestFS())

	cmd, _ := newGenerateTestCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if !errors.Is(err, wizard.ErrUnsupportedTerminal) {
		t.Fatalf("expected ErrUnsupportedTerminal, got: %v", err)
	}
}

func TestGenerateYesUsesSavedDefaults(t *testing.T) {
	withTestTemplates(t, cliTestFS())
	t.Chdir(t.TempDir())

	yaml := "tool: claude\ncategory: frontend\nframework: react\n"
	if err := os.WriteFile(".rulekit.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cmd, _ := newGenerateTestCmd()
	cmd.SetArgs([]string{"--yes"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(".claude", "project_knowledge.md")); err != nil {
		t.Errorf("defaults-driven run should have generated: %v", err)
	}
}

func TestGenerateSaveWritesDefaults(t *testing.T) {
	withTestTemplates(t, cliTestFS())
	t.Chdir(t.TempDir())

	cmd, _ := newGenerateTestCmd()
	cmd.SetArgs([]string{"--tool", "cursor", "--category", "backend", "--framework", "fastify", "--save"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	data, err := os.ReadFile(".rulekit.yaml")
	if err != nil {
		t.Fatalf("expected .rulekit.yaml: %v", err)
	}
	if !strings.Contains(string(data), "tool: cursor") {
		t.Errorf(".rulekit.yaml = %q", string(data))
	}
}

func TestGenerateOutputFlag(t *testing.T) {
	withTestTemplates(t, cliTestFS())
	target := t.TempDir()

	cmd, buf := newGenerateTestCmd()
	cmd.SetArgs([]string{"--tool", "cursor", "--category", "backend", "--framework", "fastify", "--output", target})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, ".cursor", "rules.mdc")); err != nil {
		t.Errorf("expected output under --output dir: %v", err)
	}
	if !strings.Contains(buf.String(), filepath.Join(target, ".cursor")) {
		t.Errorf("output should mention the destination, got:\n%s", buf.String())
	}
}
