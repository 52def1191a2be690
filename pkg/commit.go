package release

import (
	"regexp"
	"strings"
)

// ShortIDLength is the number of hex characters kept from a commit hash.
const ShortIDLength = 10

// Commit is a commit in the release range: its short id and subject line.
type Commit struct {
	ID      string
	Subject string
}

// CommitType is a conventional-commit type.
type CommitType string

const (
	Feat     CommitType = "feat"
	Fix      CommitType = "fix"
	Docs     CommitType = "docs"
	Refactor CommitType = "refactor"
	Chore    CommitType = "chore"
	Revert   CommitType = "revert"
)

// ClassifiedCommit is a commit whose subject follows the conventional-commit
// grammar.
type ClassifiedCommit struct {
	ID       string
	Type     CommitType
	Breaking bool
	// Note is the parenthesized scope; empty when absent.
	Note    string
	Subject string
}

var conventionalRe = regexp.MustCompile(`^(fix|feat|docs|refactor|chore|revert)(!)?(?:\(([\pP\pN\pL\s\p{Zs}]+)\))?:(.+)$`)

// Classify matches a commit subject against the conventional-commit grammar
// `type[!][(note)]: subject`. Subjects that do not match are reported with
// ok=false; they are not an error.
func Classify(c Commit) (ClassifiedCommit, bool) {
	m := conventionalRe.FindStringSubmatch(c.Subject)
	if m == nil {
		return ClassifiedCommit{}, false
	}

	return ClassifiedCommit{
		ID:       c.ID,
		Type:     CommitType(m[1]),
		Breaking: m[2] == "!",
		Note:     m[3],
		Subject:  strings.TrimSpace(m[4]),
	}, true
}

// IsRelease reports whether the commit is a release commit made by this tool
// (chore(release): ...).
func (c ClassifiedCommit) IsRelease() bool {
	return c.Type == Chore && c.Note == "release"
}

// shortID truncates a full hex hash to ShortIDLength characters.
func shortID(hash string) string {
	if len(hash) > ShortIDLength {
		return hash[:ShortIDLength]
	}
	return hash
}

// summary returns the first paragraph of a commit message with runs of
// whitespace squashed to single spaces, the way git reports a subject.
func summary(message string) string {
	message = strings.TrimLeft(message, " \t\r\n")
	if i := strings.Index(message, "\n\n"); i >= 0 {
		message = message[:i]
	}
	return strings.Join(strings.Fields(message), " ")
}
