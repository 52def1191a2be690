package release

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"
)

const (
	// InitialTag is created when the repository has no version tag yet.
	InitialTag = "v0.0.1"
	// DefaultRemote is the remote a release is pushed to.
	DefaultRemote = "origin"

	initialTagMessage = "Initial release"
	releaseTagMessage = "Release"
	headRev           = "HEAD"
)

// Options configures a release run.
type Options struct {
	// Dir is the working directory; config, CHANGELOG.md and manifest paths
	// are resolved against it. Defaults to ".".
	Dir string
	// Force releases a patch version even when there are no new commits.
	Force bool
	// Push sends the release commit and tag to origin.
	Push bool
	// Verbose reports configured manifests that do not exist.
	Verbose bool
	// Now returns the release date. Defaults to time.Now.
	Now func() time.Time
	// Reporter receives progress messages. Defaults to a no-op.
	Reporter Reporter
}

// normalized returns a copy with implicit defaults applied.
func (o Options) normalized() Options {
	out := o
	if out.Dir == "" {
		out.Dir = "."
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.Reporter == nil {
		out.Reporter = nopReporter{}
	}
	return out
}

// Result holds metadata about a release.
type Result struct {
	PreviousTag  string    // Latest version tag before the release; empty for the initial tag.
	Tag          string    // The created (or, in a dry run, planned) tag.
	Bump         BumpLevel // Level chosen from the commits.
	Commits      []Commit  // Commits between PreviousTag and HEAD.
	Changelog    string    // Section prepended to CHANGELOG.md.
	UpdatedFiles []string  // Changelog and manifests written (or that would be).
	Initial      bool      // The repository had no version tag.
	Pushed       bool
}

// plan is everything decided before the working tree is touched.
type plan struct {
	repo   *Repository
	config Config
	result Result
}

// prepare opens the repository, loads config and decides the next tag.
// Nothing is written.
func prepare(ctx context.Context, opt Options) (*plan, error) {
	log := zerolog.Ctx(ctx)

	repo, err := OpenRepository(ctx, opt.Dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(opt.Dir)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("source", cfg.Source).Strs("helm", cfg.Helm).Strs("npm", cfg.Npm).Strs("composer", cfg.Composer).Msg("loaded config")

	if opt.Push {
		ok, err := repo.HasRemote(DefaultRemote)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNoOrigin
		}
	}

	names, err := repo.TagNames()
	if err != nil {
		return nil, err
	}
	ranked := RankTags(names)

	p := &plan{repo: repo, config: cfg}
	if len(ranked) == 0 {
		if _, err := repo.Head(); err != nil {
			return nil, err
		}
		p.result = Result{Tag: InitialTag, Bump: BumpPatch, Initial: true}
		return p, nil
	}

	latest := ranked[0]
	commits, err := repo.CommitsSince(latest.Name)
	if err != nil {
		return nil, err
	}

	level := SelectBump(commits)
	switch {
	case len(commits) == 0 && opt.Force:
		level = BumpPatch
	case len(commits) == 0:
		return nil, &NoCommitsError{Start: latest.Name, End: headRev}
	case level == BumpNone:
		return nil, &NothingToReleaseError{Start: latest.Name, End: headRev, Commits: len(commits)}
	}

	tag := Bump(level, latest.Version)
	if !semver.IsValid(tag) || semver.Canonical(tag) != tag {
		return nil, fmt.Errorf("computed tag %q is not a canonical version", tag)
	}
	log.Debug().Str("previous", latest.Name).Str("bump", level.String()).Str("tag", tag).Msg("decided release")

	p.result = Result{
		PreviousTag: latest.Name,
		Tag:         tag,
		Bump:        level,
		Commits:     commits,
		Changelog:   FormatSection(tag, level, opt.Now(), RenderChangelog(commits)),
	}
	return p, nil
}

// Run performs a release in the repository containing opt.Dir:
//
//  1. rank version tags; with none, tag HEAD as v0.0.1 and stop
//  2. collect commits since the latest tag and choose the bump level
//  3. prepend the release section to CHANGELOG.md
//  4. write the new tag into the configured manifests
//  5. commit those files as "chore(release): <tag>" and tag the commit
//  6. push to origin when requested
//
// Preconditions (repository, config, signature, origin, manifest targets)
// are checked before anything is written.
func Run(ctx context.Context, opt Options) (Result, error) {
	opt = opt.normalized()

	p, err := prepare(ctx, opt)
	if err != nil {
		return Result{}, err
	}
	res := p.result

	sig, err := p.repo.Signature(opt.Now())
	if err != nil {
		return res, err
	}

	if res.Initial {
		if err := p.repo.CreateTag(res.Tag, initialTagMessage, sig); err != nil {
			return res, err
		}
		opt.Reporter.InitialTagCreated(res.Tag)
		return res, nil
	}

	// Fail on manifest paths that are not files before writing anything.
	if _, err := ScanManifests(p.config, opt.Dir, res.Tag, false, nil); err != nil {
		return res, err
	}

	changelog := filepath.Join(opt.Dir, ChangelogFile)
	if err := PrependFile(changelog, res.Changelog); err != nil {
		return res, err
	}
	opt.Reporter.ChangelogWritten(ChangelogFile)
	res.UpdatedFiles = append(res.UpdatedFiles, changelog)

	manifests, err := UpdateManifests(p.config, opt.Dir, res.Tag, opt.Verbose, opt.Reporter)
	if err != nil {
		return res, err
	}
	res.UpdatedFiles = append(res.UpdatedFiles, manifests...)

	opt.Reporter.Committing(res.UpdatedFiles)
	if _, err := p.repo.CommitFiles(res.UpdatedFiles, "chore(release): "+res.Tag+"\n", sig); err != nil {
		return res, err
	}

	if err := p.repo.CreateTag(res.Tag, releaseTagMessage, sig); err != nil {
		return res, err
	}
	opt.Reporter.TagCreated(res.Tag)

	branch, err := p.repo.Branch()
	if err != nil {
		return res, err
	}
	opt.Reporter.PushHint(DefaultRemote, branch)

	if opt.Push {
		if err := p.repo.Push(ctx, DefaultRemote, res.Tag); err != nil {
			return res, err
		}
		res.Pushed = true
		opt.Reporter.Pushed(DefaultRemote, res.Tag)
	}

	return res, nil
}

// DryRun decides the release like Run and reports the changelog section and
// the files that would change, without writing to the working tree or the
// repository.
func DryRun(ctx context.Context, opt Options) (Result, error) {
	opt = opt.normalized()

	p, err := prepare(ctx, opt)
	if err != nil {
		return Result{}, err
	}
	res := p.result
	if res.Initial {
		return res, nil
	}

	res.UpdatedFiles = append(res.UpdatedFiles, filepath.Join(opt.Dir, ChangelogFile))
	manifests, err := ScanManifests(p.config, opt.Dir, res.Tag, opt.Verbose, opt.Reporter)
	if err != nil {
		return res, err
	}
	res.UpdatedFiles = append(res.UpdatedFiles, manifests...)

	return res, nil
}
