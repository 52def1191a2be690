package release

import (
	"errors"
	"fmt"
)

var (
	ErrNotRepository       = errors.New("not in a git repository")
	ErrNoHead              = errors.New("HEAD was not found")
	ErrNoSignature         = errors.New("git user.name and user.email are not configured")
	ErrNoOrigin            = errors.New("remote `origin` was not found")
	ErrNoCommits           = errors.New("no commits to release")
	ErrNothingToRelease    = errors.New("no commit warrants a release")
	ErrInvalidManifestPath = errors.New("manifest path should be a string or an array of strings")
	ErrNotAFile            = errors.New("is not a file")
)

// NoCommitsError reports an empty commit range between Start and End.
type NoCommitsError struct {
	Start string
	End   string
}

func (e *NoCommitsError) Error() string {
	return fmt.Sprintf("no commits between %s and %s", e.Start, e.End)
}

func (e *NoCommitsError) Unwrap() error { return ErrNoCommits }

// NothingToReleaseError reports a non-empty commit range in which no commit
// matched a bump rule (for example only docs commits).
type NothingToReleaseError struct {
	Start   string
	End     string
	Commits int
}

func (e *NothingToReleaseError) Error() string {
	return fmt.Sprintf("none of the %d commits between %s and %s warrants a release", e.Commits, e.Start, e.End)
}

func (e *NothingToReleaseError) Unwrap() error { return ErrNothingToRelease }

// InvalidManifestPathError reports a config value for a manifest kind that
// is neither a string nor a list of strings.
type InvalidManifestPathError struct {
	Kind  string
	Value any
}

func (e *InvalidManifestPathError) Error() string {
	return fmt.Sprintf("`%s` = %v: %s", e.Kind, e.Value, ErrInvalidManifestPath)
}

func (e *InvalidManifestPathError) Unwrap() error { return ErrInvalidManifestPath }
