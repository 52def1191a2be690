// Package release decides and performs semantic-version releases of a git
// repository from its conventional-commit history.
//
// The decision engine is a set of pure functions:
//   - RankTags parses version tags and returns the latest two, newest first.
//   - Classify matches a subject against `type[!][(note)]: subject`.
//   - SelectBump picks major, minor or patch from the first commit that
//     matches a prefix rule.
//   - Bump computes the next "vMAJOR.MINOR.PATCH" tag.
//   - RenderChangelog groups commits into a Markdown section.
//
// Run wires them to a go-git repository: it prepends the section to
// CHANGELOG.md, rewrites the version of configured Helm, npm and Composer
// manifests, commits those files as "chore(release): <tag>", creates an
// annotated tag and optionally pushes to origin. DryRun reports the same
// decision without writing anything.
//
// Usage Example:
//
//	res, err := release.Run(ctx, release.Options{Dir: ".", Force: true})
//	if err != nil {
//	    log.Fatalf("release failed: %v", err)
//	}
//	log.Println("released", res.Tag)
package release
