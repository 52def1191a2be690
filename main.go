// Package main implements the version CLI: it releases the next semantic
// version of the git repository in the current directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	release "github.com/tagflow/version/pkg"
	"github.com/tagflow/version/pkg/messages"
)

// Options are the command line flags.
type Options struct {
	Force   bool   `short:"f" long:"force"   description:"Force patch bump if there are no commits"`
	Verbose bool   `short:"v" long:"verbose" description:"Increase output verbosity"`
	Push    bool   `short:"p" long:"push"    description:"Push the release commit and tag to origin"`
	DryRun  bool   `short:"n" long:"dry-run" description:"Show the next release without changing anything"`
	Dir     string `short:"C" long:"dir"     description:"Run as if started in this directory" default:"."`
	Version bool   `long:"version"           description:"Show version number and exit"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "version"
	parser.LongDescription = `Releases the next semantic version from conventional commits:
writes CHANGELOG.md, updates Helm/npm/Composer manifests, commits and tags.`

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opt.Version {
		fmt.Fprintf(stdout, "v%s\n", Version)
		return 0
	}

	level := zerolog.WarnLevel
	if opt.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	printer := messages.New(messages.DetectLocale(getenv), stdout, stderr)
	ropt := release.Options{
		Dir:      opt.Dir,
		Force:    opt.Force,
		Push:     opt.Push,
		Verbose:  opt.Verbose,
		Reporter: printer,
	}

	if opt.DryRun {
		res, err := release.DryRun(ctx, ropt)
		if err != nil {
			report(printer, err)
			return 1
		}
		printDryRun(printer, stdout, res)
		return 0
	}

	if _, err := release.Run(ctx, ropt); err != nil {
		report(printer, err)
		return 1
	}
	return 0
}

func printDryRun(p *messages.Printer, stdout io.Writer, res release.Result) {
	if res.Initial {
		p.DryRunInitial(res.Tag)
		return
	}

	p.DryRun(res.Tag, res.Bump.String(), res.PreviousTag)
	for _, f := range res.UpdatedFiles {
		p.WouldUpdate(f)
	}
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, res.Changelog)
}

// report prints a localized message for known failures.
func report(p *messages.Printer, err error) {
	var (
		noCommits *release.NoCommitsError
		nothing   *release.NothingToReleaseError
		badPath   *release.InvalidManifestPathError
	)

	switch {
	case errors.Is(err, release.ErrNotRepository):
		p.NotRepository()
	case errors.Is(err, release.ErrNoHead):
		p.NoHead()
	case errors.As(err, &noCommits):
		p.NoCommits(noCommits.Start, noCommits.End)
	case errors.As(err, &nothing):
		p.NothingToRelease(nothing.Commits, nothing.Start)
	case errors.Is(err, release.ErrNoOrigin):
		p.OriginNotFound(release.DefaultRemote)
	case errors.As(err, &badPath):
		p.InvalidManifestPath(badPath.Kind)
	case errors.Is(err, release.ErrNoSignature):
		p.NoSignature()
	default:
		p.Error(err)
	}
}
