package release

import (
	"math/big"
	"strings"
)

// BumpLevel is the magnitude of a version increment.
type BumpLevel int

const (
	// BumpNone means no commit asked for a release.
	BumpNone BumpLevel = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

// String returns a stable textual representation for BumpLevel.
func (l BumpLevel) String() string {
	switch l {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	default:
		return "none"
	}
}

// SelectBump scans subjects in the order given and returns the level of the
// first commit that matches a rule:
//
//	fix! | feat!             -> major
//	feat                     -> minor
//	chore | fix | refactor   -> patch
//
// docs never triggers a release. Later commits are not consulted once a rule
// matched, so a feat followed by a fix! is still a minor bump. The checks are
// plain prefix tests, not the conventional-commit grammar used by Classify.
func SelectBump(commits []Commit) BumpLevel {
	for _, c := range commits {
		s := c.Subject
		switch {
		case strings.HasPrefix(s, "fix!"), strings.HasPrefix(s, "feat!"):
			return BumpMajor
		case strings.HasPrefix(s, "feat"):
			return BumpMinor
		case strings.HasPrefix(s, "chore"),
			strings.HasPrefix(s, "fix"),
			strings.HasPrefix(s, "refactor"):
			return BumpPatch
		}
	}

	return BumpNone
}

// Bump applies level to base and formats the result as "vMAJOR.MINOR.PATCH".
// Components are incremented without overflow. BumpNone yields an empty
// string, which must never be used as a tag name.
func Bump(level BumpLevel, base Version) string {
	base = base.orZero()
	switch level {
	case BumpMajor:
		return formatTag(increment(base.Major), "0", "0")
	case BumpMinor:
		return formatTag(base.Major, increment(base.Minor), "0")
	case BumpPatch:
		return formatTag(base.Major, base.Minor, increment(base.Patch))
	default:
		return ""
	}
}

// increment adds one to a decimal digit string.
func increment(n string) string {
	i, ok := new(big.Int).SetString(n, 10)
	if !ok {
		i = new(big.Int)
	}
	return i.Add(i, big.NewInt(1)).String()
}

func formatTag(major, minor, patch string) string {
	return "v" + major + "." + minor + "." + patch
}
