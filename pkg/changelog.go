package release

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"
)

// ChangelogFile is the file release sections are prepended to.
const ChangelogFile = "CHANGELOG.md"

// NoNotableChanges replaces an empty changelog body.
const NoNotableChanges = "*no notable changes*\n"

// sortOrder ranks subjects by prefix for rendering; unknown prefixes go last.
var sortOrder = []string{"feat!", "feat", "fix!", "fix", "refactor", "docs", "chore"}

var headings = map[CommitType]string{
	Feat:     "Features",
	Fix:      "Bug Fixes",
	Docs:     "Documentation",
	Refactor: "Code Refactoring",
	Chore:    "Chores",
	Revert:   "Reverts",
}

func sortKey(subject string) int {
	for i, prefix := range sortOrder {
		if strings.HasPrefix(subject, prefix) {
			return i
		}
	}
	return len(sortOrder)
}

// RenderChangelog groups conventional commits by type into Markdown:
//
//	### Features
//	- **scope:** subject (id)
//
//	### Bug Fixes
//	- subject (id)
//
// Commits are stably sorted by prefix before grouping; commits with the same
// prefix keep their walk order. Non-conventional subjects and chore(release)
// commits are left out. The result is empty when nothing qualifies.
func RenderChangelog(commits []Commit) string {
	sorted := slices.Clone(commits)
	slices.SortStableFunc(sorted, func(a, b Commit) int {
		return sortKey(a.Subject) - sortKey(b.Subject)
	})

	var b strings.Builder
	var last CommitType
	for _, c := range sorted {
		cc, ok := Classify(c)
		if !ok || cc.IsRelease() {
			continue
		}

		if cc.Type != last {
			if last != "" {
				b.WriteByte('\n')
			}
			last = cc.Type
			fmt.Fprintf(&b, "### %s\n", headings[cc.Type])
		}

		b.WriteString("- ")
		if cc.Note != "" {
			fmt.Fprintf(&b, "**%s:** ", cc.Note)
		}
		fmt.Fprintf(&b, "%s (%s)\n", cc.Subject, cc.ID)
	}

	return b.String()
}

// FormatSection wraps a rendered changelog body in a release header.
// Patch releases get a level-3 header, everything else level 2.
func FormatSection(tag string, level BumpLevel, date time.Time, body string) string {
	header := "##"
	if level == BumpPatch {
		header = "###"
	}
	if body == "" {
		body = NoNotableChanges
	}

	return fmt.Sprintf("%s %s (%s)\n\n%s\n", header, tag, date.Format(time.DateOnly), body)
}

// PrependFile writes text in front of the current contents of path,
// creating the file if it does not exist.
func PrependFile(path, text string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.WriteFile(path, append([]byte(text), data...), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
