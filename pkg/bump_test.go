package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func commits(subjects ...string) []Commit {
	out := make([]Commit, len(subjects))
	for i, s := range subjects {
		out[i] = Commit{ID: string(rune('a' + i)), Subject: s}
	}
	return out
}

func TestSelectBump(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		want     BumpLevel
	}{
		{"empty", nil, BumpNone},
		{"breaking feat", []string{"feat!: drop api"}, BumpMajor},
		{"breaking fix", []string{"fix!: change default"}, BumpMajor},
		{"feat", []string{"feat: add"}, BumpMinor},
		{"feat prefix without grammar", []string{"featuring a fix"}, BumpMinor},
		{"fix", []string{"fix: bug"}, BumpPatch},
		{"refactor", []string{"refactor: tidy"}, BumpPatch},
		{"chore", []string{"chore: deps"}, BumpPatch},
		{"docs only", []string{"docs: readme", "docs(api): typo"}, BumpNone},
		{"unrecognized", []string{"wip stuff", "Merge branch 'x'"}, BumpNone},
		{"docs skipped until a match", []string{"docs: readme", "wip", "feat: add"}, BumpMinor},
		{"first match wins over later major", []string{"feat: add", "fix!: break"}, BumpMinor},
		{"first match wins over later minor", []string{"fix: bug", "feat: add"}, BumpPatch},
		{"major first", []string{"feat!: break", "fix: bug"}, BumpMajor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SelectBump(commits(tc.subjects...)))
		})
	}
}

func TestSelectBumpIgnoresCommitsAfterMatch(t *testing.T) {
	base := commits("docs: x", "chore: y")
	want := SelectBump(base)
	require.Equal(t, BumpPatch, want)

	for _, extra := range []string{"feat!: a", "feat: b", "fix: c", "wip"} {
		extended := append(commits("docs: x", "chore: y"), Commit{ID: "z", Subject: extra})
		require.Equal(t, want, SelectBump(extended), extra)
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		level BumpLevel
		base  Version
		want  string
	}{
		{BumpPatch, NewVersion(1, 0, 0), "v1.0.1"},
		{BumpMinor, NewVersion(1, 0, 0), "v1.1.0"},
		{BumpMajor, NewVersion(1, 0, 0), "v2.0.0"},
		{BumpPatch, NewVersion(1, 0, 99), "v1.0.100"},
		{BumpMinor, NewVersion(1, 99, 1), "v1.100.0"},
		{BumpMajor, NewVersion(99, 99, 99), "v100.0.0"},
		{BumpPatch, NewVersion(0, 0, 0), "v0.0.1"},
		{BumpNone, NewVersion(1, 2, 3), ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Bump(tc.level, tc.base), "%s from %s", tc.level, tc.base)
	}
}

func TestBumpBeyondInt(t *testing.T) {
	maxInt := Version{Major: "9223372036854775807", Minor: "9223372036854775807", Patch: "9223372036854775807"}
	require.Equal(t, "v9223372036854775808.0.0", Bump(BumpMajor, maxInt))
	require.Equal(t, "v9223372036854775807.9223372036854775808.0", Bump(BumpMinor, maxInt))
	require.Equal(t, "v9223372036854775807.9223372036854775807.9223372036854775808", Bump(BumpPatch, maxInt))

	require.Equal(t, "v100000000000000000000.0.0", Bump(BumpMajor, Version{Major: "99999999999999999999", Minor: "1", Patch: "2"}))
	require.Equal(t, "v0.0.1", Bump(BumpPatch, Version{}))
}

func TestBumpLevelString(t *testing.T) {
	require.Equal(t, "none", BumpNone.String())
	require.Equal(t, "patch", BumpPatch.String())
	require.Equal(t, "minor", BumpMinor.String())
	require.Equal(t, "major", BumpMajor.String())
}
