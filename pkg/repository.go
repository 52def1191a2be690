package release

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"
)

// Repository is the git collaborator of a release: it lists tags, walks
// commits, commits the release files and creates the tag.
type Repository struct {
	repo *git.Repository
	root string
	log  zerolog.Logger
}

// OpenRepository opens the repository containing dir, searching parent
// directories for .git.
func OpenRepository(ctx context.Context, dir string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotRepository)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}

	return &Repository{
		repo: repo,
		root: wt.Filesystem.Root(),
		log:  zerolog.Ctx(ctx).With().Str("component", "git").Logger(),
	}, nil
}

// Root returns the worktree root directory.
func (r *Repository) Root() string {
	return r.root
}

// TagNames returns the short names of all tags.
func (r *Repository) TagNames() ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	r.log.Debug().Strs("tags", names).Msg("found tags")
	return names, nil
}

// Head returns the commit HEAD points at, or ErrNoHead on an empty repository.
func (r *Repository) Head() (*plumbing.Reference, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, ErrNoHead
		}
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}
	return head, nil
}

// CommitsSince returns the commits reachable from HEAD but not from tag,
// newest first by committer time.
func (r *Repository) CommitsSince(tag string) ([]Commit, error) {
	head, err := r.Head()
	if err != nil {
		return nil, err
	}
	start, err := r.repo.ResolveRevision(plumbing.Revision(tag))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", tag, err)
	}

	startCommit, err := r.repo.CommitObject(*start)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", start, err)
	}
	headCommit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", head.Hash(), err)
	}

	hidden := make(map[plumbing.Hash]bool)
	err = object.NewCommitPreorderIter(startCommit, nil, nil).ForEach(func(c *object.Commit) error {
		hidden[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history of %s: %w", tag, err)
	}

	var commits []Commit
	err = object.NewCommitIterCTime(headCommit, hidden, nil).ForEach(func(c *object.Commit) error {
		commits = append(commits, Commit{
			ID:      shortID(c.Hash.String()),
			Subject: summary(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commits since %s: %w", tag, err)
	}

	r.log.Debug().Str("since", tag).Int("commits", len(commits)).Msg("collected commits")
	return commits, nil
}

// Signature builds the author/committer signature from user.name and
// user.email.
func (r *Repository) Signature(when time.Time) (*object.Signature, error) {
	cfg, err := r.repo.ConfigScoped(gitconfig.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("reading git config: %w", err)
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return nil, ErrNoSignature
	}
	return &object.Signature{Name: cfg.User.Name, Email: cfg.User.Email, When: when}, nil
}

// CommitFiles stages paths and commits them on HEAD.
func (r *Repository) CommitFiles(paths []string, message string, sig *object.Signature) (plumbing.Hash, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("opening worktree: %w", err)
	}

	for _, p := range paths {
		rel, err := r.relative(p)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		if _, err := wt.Add(rel); err != nil {
			return plumbing.ZeroHash, fmt.Errorf("staging %s: %w", rel, err)
		}
	}

	hash, err := wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("committing: %w", err)
	}

	r.log.Debug().Str("commit", hash.String()).Strs("files", paths).Msg("committed release files")
	return hash, nil
}

// relative maps a path to the worktree-relative, slash-separated form the
// index expects.
func (r *Repository) relative(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	root, err := filepath.Abs(r.Root())
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", r.Root(), err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("%s is outside the worktree: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

// CreateTag creates an annotated tag at HEAD.
func (r *Repository) CreateTag(name, message string, sig *object.Signature) error {
	head, err := r.Head()
	if err != nil {
		return err
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{Tagger: sig, Message: message})
	if err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}

	r.log.Debug().Str("tag", name).Str("commit", head.Hash().String()).Msg("created tag")
	return nil
}

// HasRemote reports whether a remote with the given name is configured.
func (r *Repository) HasRemote(name string) (bool, error) {
	_, err := r.repo.Remote(name)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up remote %s: %w", name, err)
	}
	return true, nil
}

// Branch returns the short name of the branch HEAD points at.
func (r *Repository) Branch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", err
	}
	return head.Name().Short(), nil
}

// Push sends the current branch and tag to remote.
func (r *Repository) Push(ctx context.Context, remote, tag string) error {
	head, err := r.Head()
	if err != nil {
		return err
	}
	if !head.Name().IsBranch() {
		return fmt.Errorf("pushing: HEAD is detached")
	}

	tagRef := plumbing.NewTagReferenceName(tag)
	specs := []gitconfig.RefSpec{
		gitconfig.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name())),
		gitconfig.RefSpec(fmt.Sprintf("%s:%s", tagRef, tagRef)),
	}

	err = r.repo.PushContext(ctx, &git.PushOptions{RemoteName: remote, RefSpecs: specs})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pushing to %s: %w", remote, err)
	}

	r.log.Debug().Str("remote", remote).Strs("refspecs", []string{string(specs[0]), string(specs[1])}).Msg("pushed")
	return nil
}
