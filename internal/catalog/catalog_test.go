package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTableSync(t *testing.T) {
	// Every listed category must resolve to at least one framework.
	for _, c := range Categories() {
		fws, err := FrameworksFor(c)
		require.NoError(t, err, "category %q missing from framework table", c)
		require.NotEmpty(t, fws, "category %q has no frameworks", c)
	}
}

func TestFrameworksForUnknownCategory(t *testing.T) {
	_, err := FrameworksFor(Category("mobile"))
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNoCrossCategoryLeakage(t *testing.T) {
	seen := make(map[Framework]Category)
	for _, c := range Categories() {
		fws, err := FrameworksFor(c)
		require.NoError(t, err)
		for _, f := range fws {
			prev, dup := seen[f]
			assert.False(t, dup, "framework %q registered for both %q and %q", f, prev, c)
			seen[f] = c
		}
	}
}

func TestParseTool(t *testing.T) {
	tool, err := ParseTool("cursor")
	require.NoError(t, err)
	assert.Equal(t, ToolCursor, tool)
	assert.Equal(t, ".cursor", tool.Dir())

	_, err = ParseTool("copilot")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestParseFramework(t *testing.T) {
	f, err := ParseFramework(CategoryBackend, "fastify")
	require.NoError(t, err)
	assert.Equal(t, Framework("fastify"), f)

	// react belongs to frontend, not backend
	_, err = ParseFramework(CategoryBackend, "react")
	assert.ErrorIs(t, err, ErrUnknownFramework)

	_, err = ParseFramework(Category("mobile"), "react")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Next.js", Framework("nextjs").Label())
	assert.Equal(t, "NestJS", Framework("nestjs").Label())
	assert.Equal(t, "Django", Framework("django").Label())
	assert.Equal(t, "Backend", CategoryBackend.Label())
	assert.Equal(t, "Cursor", ToolCursor.Label())
	assert.Equal(t, "Gemini Code Assist", ToolGemini.Label())
}
