package wizard

import (
	"strings"
	"testing"

	"github.com/rulekit-dev/rulekit/internal/catalog"
)

func TestToolOptions(t *testing.T) {
	opts := toolOptions()
	if len(opts) != len(catalog.Tools()) {
		t.Fatalf("toolOptions() returned %d options, want %d", len(opts), len(catalog.Tools()))
	}
	if opts[0].Value != "cursor" {
		t.Errorf("first tool option = %q, want %q", opts[0].Value, "cursor")
	}
	if !strings.Contains(opts[0].Key, ".cursor/") {
		t.Errorf("tool label %q should mention the output directory", opts[0].Key)
	}
}

func TestCategoryOptions(t *testing.T) {
	opts := categoryOptions()
	if len(opts) != 3 {
		t.Fatalf("categoryOptions() returned %d options, want 3", len(opts))
	}
	if opts[0].Value != "backend" {
		t.Errorf("first category = %q, want backend", opts[0].Value)
	}
}

func TestFrameworkOptionsScopedToCategory(t *testing.T) {
	for _, c := range catalog.Categories() {
		opts, err := frameworkOptions(c)
		if err != nil {
			t.Fatalf("frameworkOptions(%q) error: %v", c, err)
		}

		want, err := catalog.FrameworksFor(c)
		if err != nil {
			t.Fatalf("FrameworksFor(%q) error: %v", c, err)
		}
		if len(opts) != len(want) {
			t.Errorf("category %q: %d options, want %d", c, len(opts), len(want))
		}
		for i, f := range want {
			if opts[i].Value != string(f) {
				t.Errorf("category %q option %d = %q, want %q", c, i, opts[i].Value, f)
			}
		}
	}
}

func TestFrameworkOptionsUnknownCategory(t *testing.T) {
	if _, err := frameworkOptions(catalog.Category("mobile")); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestNewWizardTheme(t *testing.T) {
	theme := newWizardTheme()
	if theme == nil {
		t.Fatal("newWizardTheme() returned nil")
	}
}
