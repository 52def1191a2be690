package release

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/woozymasta/semver"
)

// RankLimit is the number of tags RankTags returns at most: the latest
// release and the one before it.
const RankLimit = 2

// versionRe finds a MAJOR.MINOR.PATCH triple anywhere in a tag name.
var versionRe = regexp.MustCompile(`(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)`)

// Version is a release triple taken from a tag name. Components are kept as
// decimal digit strings without leading zeros, so they are not bounded by
// the width of an int. An empty component reads as "0".
type Version struct {
	Major string
	Minor string
	Patch string
}

// NewVersion builds a Version from int components.
func NewVersion(major, minor, patch int) Version {
	return Version{Major: strconv.Itoa(major), Minor: strconv.Itoa(minor), Patch: strconv.Itoa(patch)}
}

// String returns the triple as "MAJOR.MINOR.PATCH" (no "v" prefix).
func (v Version) String() string {
	v = v.orZero()
	return v.Major + "." + v.Minor + "." + v.Patch
}

func (v Version) orZero() Version {
	for _, c := range []*string{&v.Major, &v.Minor, &v.Patch} {
		if *c == "" {
			*c = "0"
		}
	}
	return v
}

// Compare returns a negative number, zero or a positive number following
// semver precedence.
func (v Version) Compare(o Version) int {
	a, aok := v.semver()
	b, bok := o.semver()
	if aok && bok {
		return a.Compare(b)
	}

	v, o = v.orZero(), o.orZero()
	if c := compareDigits(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareDigits(v.Minor, o.Minor); c != 0 {
		return c
	}
	return compareDigits(v.Patch, o.Patch)
}

// compareDigits orders decimal strings without leading zeros: the longer
// one is larger, equal lengths compare bytewise.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return strings.Compare(a, b)
}

// semver builds a release Semver without re-parsing a string. ok is false
// when a component does not fit an int.
func (v Version) semver() (semver.Semver, bool) {
	v = v.orZero()
	var parts [3]int
	for i, s := range []string{v.Major, v.Minor, v.Patch} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return semver.Semver{}, false
		}
		parts[i] = n
	}

	return semver.Semver{
		Major: parts[0],
		Minor: parts[1],
		Patch: parts[2],
		Flags: semver.FlagHasMajor | semver.FlagHasMinor | semver.FlagHasPatch,
		Valid: true,
	}, true
}

// ParseVersion extracts the first MAJOR.MINOR.PATCH triple from a tag name.
// Components must not carry leading zeros and may be arbitrarily large.
func ParseVersion(tag string) (Version, bool) {
	m := versionRe.FindStringSubmatch(tag)
	if m == nil {
		return Version{}, false
	}

	return Version{Major: m[1], Minor: m[2], Patch: m[3]}, true
}

// Tag is a tag name paired with the version parsed from it.
type Tag struct {
	Name    string
	Version Version
}

// RankTags parses every tag name, drops those without a version and returns
// at most RankLimit tags, newest first. Tags with equal versions are ordered
// by name so the result does not depend on input order.
func RankTags(names []string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		v, ok := ParseVersion(name)
		if !ok {
			continue
		}
		tags = append(tags, Tag{Name: name, Version: v})
	}

	slices.SortFunc(tags, func(a, b Tag) int {
		if c := b.Version.Compare(a.Version); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return capTags(tags, RankLimit)
}

// capTags returns tags[:min(limit, len(tags))] if limit>0; otherwise tags.
func capTags(tags []Tag, limit int) []Tag {
	if limit > 0 && limit < len(tags) {
		return tags[:limit]
	}

	return tags
}
