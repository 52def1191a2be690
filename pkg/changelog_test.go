package release

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderChangelog(t *testing.T) {
	got := RenderChangelog([]Commit{
		{ID: "xf0", Subject: "feat(foo): bar"},
		{ID: "xf1", Subject: "fix: some"},
		{ID: "xf3", Subject: "chore: some"},
		{ID: "xf2", Subject: "docs(foo): bar"},
	})

	want := `### Features
- **foo:** bar (xf0)

### Bug Fixes
- some (xf1)

### Documentation
- **foo:** bar (xf2)

### Chores
- some (xf3)
`
	require.Equal(t, want, got)
}

func TestRenderChangelogOrdering(t *testing.T) {
	got := RenderChangelog([]Commit{
		{ID: "c1", Subject: "refactor: tidy"},
		{ID: "c2", Subject: "fix: second"},
		{ID: "c3", Subject: "feat: plain"},
		{ID: "c4", Subject: "fix!: breaking fix"},
		{ID: "c5", Subject: "feat!: breaking feat"},
		{ID: "c6", Subject: "revert: feat: plain"},
		{ID: "c7", Subject: "fix: first"},
	})

	want := `### Features
- breaking feat (c5)
- plain (c3)

### Bug Fixes
- breaking fix (c4)
- second (c2)
- first (c7)

### Code Refactoring
- tidy (c1)

### Reverts
- feat: plain (c6)
`
	require.Equal(t, want, got)
}

func TestRenderChangelogSkipsReleaseAndUnconventional(t *testing.T) {
	got := RenderChangelog([]Commit{
		{ID: "r1", Subject: "chore(release): v1.2.3"},
		{ID: "w1", Subject: "wip stuff"},
		{ID: "c1", Subject: "chore(deps): bump x"},
		{ID: "m1", Subject: "Merge branch 'main'"},
	})
	require.Equal(t, "### Chores\n- **deps:** bump x (c1)\n", got)

	require.Empty(t, RenderChangelog([]Commit{
		{ID: "r1", Subject: "chore(release): v1.2.3"},
		{ID: "w1", Subject: "wip stuff"},
	}))
	require.Empty(t, RenderChangelog(nil))
}

func TestRenderChangelogDoesNotReorderInput(t *testing.T) {
	in := []Commit{
		{ID: "a", Subject: "chore: a"},
		{ID: "b", Subject: "feat: b"},
	}
	first := RenderChangelog(in)
	require.Equal(t, "chore: a", in[0].Subject)
	require.Equal(t, first, RenderChangelog(in))
}

func TestFormatSection(t *testing.T) {
	date := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)

	require.Equal(t,
		"## v1.1.0 (2024-03-09)\n\n### Features\n- x (a)\n\n",
		FormatSection("v1.1.0", BumpMinor, date, "### Features\n- x (a)\n"))

	require.Equal(t,
		"### v1.0.1 (2024-03-09)\n\n*no notable changes*\n\n",
		FormatSection("v1.0.1", BumpPatch, date, ""))

	require.Equal(t,
		"## v2.0.0 (2024-03-09)\n\n*no notable changes*\n\n",
		FormatSection("v2.0.0", BumpMajor, date, ""))
}

func TestPrependFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChangelogFile)

	require.NoError(t, PrependFile(path, "second\n"))
	require.NoError(t, PrependFile(path, "first\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", string(data))
}
