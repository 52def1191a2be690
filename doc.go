// Package main implements the version CLI tool.
//
// version releases the next semantic version of a git repository. It finds
// the latest tag containing a MAJOR.MINOR.PATCH triple, reads the commits
// made since, and picks the bump from the first conventional commit it
// recognizes:
//
//	fix!: ... / feat!: ...     major (1.2.3 → 2.0.0)
//	feat: ...                  minor (1.2.3 → 1.3.0)
//	fix / refactor / chore     patch (1.2.3 → 1.2.4)
//
// docs commits never trigger a release. The changelog section for the new
// tag is prepended to CHANGELOG.md, the version field of the configured
// manifests is rewritten, the files are committed as
// "chore(release): vX.Y.Z" and an annotated tag is created. A repository
// without version tags gets v0.0.1.
//
// Command Usage:
//
//	version [OPTIONS]
//
// Flags:
//
//	-f, --force:    Release a patch version even when there are no new commits.
//	-v, --verbose:  Report configured manifests that do not exist, log debug output.
//	-p, --push:     Push the branch and the new tag to origin.
//	-n, --dry-run:  Print the next tag, the files that would change and the
//	                changelog section without writing anything.
//	-C, --dir:      Run as if started in the given directory.
//	--version:      Show the version of the tool and exit.
//
// Manifests are configured in .version.json (or .version.toml) in the working
// directory. Each key is a path or a list of paths:
//
//	{
//	  "helm": ".helm/Chart.yaml",
//	  "npm": ["package.json", "web/package.json"],
//	  "composer": "composer.json"
//	}
//
// Without a config file the three paths above without "web/package.json" are
// used, and missing files are skipped. Output is printed in English or
// Russian depending on LC_ALL, LC_MESSAGES or LANG.
package main
