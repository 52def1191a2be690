package release

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Manifest describes where a kind of manifest file keeps its version and
// how the new tag is written there.
type Manifest struct {
	Kind    string
	Pattern *regexp.Regexp
	Replace func(tag string) string
}

var jsonVersionRe = regexp.MustCompile(`"version":\s*"[^"]*"`)

func jsonVersion(tag string) string {
	return fmt.Sprintf(`"version": %q`, tag)
}

var (
	// HelmManifest rewrites the appVersion of a Helm chart.
	HelmManifest = Manifest{
		Kind:    "helm",
		Pattern: regexp.MustCompile(`appVersion:[ \t]*.*`),
		Replace: func(tag string) string { return "appVersion: " + tag },
	}

	// NpmManifest rewrites the version of package.json.
	NpmManifest = Manifest{Kind: "npm", Pattern: jsonVersionRe, Replace: jsonVersion}

	// ComposerManifest rewrites the version of composer.json.
	ComposerManifest = Manifest{Kind: "composer", Pattern: jsonVersionRe, Replace: jsonVersion}
)

// manifestTarget pairs a manifest kind with the paths configured for it.
type manifestTarget struct {
	Manifest
	Paths []string
}

func (c Config) targets() []manifestTarget {
	return []manifestTarget{
		{Manifest: HelmManifest, Paths: c.Helm},
		{Manifest: NpmManifest, Paths: c.Npm},
		{Manifest: ComposerManifest, Paths: c.Composer},
	}
}

// open reads a manifest. A missing file yields ok=false and no error; a
// path that exists but is not a regular file is an error.
func (m Manifest) open(path string) (data []byte, ok bool, err error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s manifest: %w", m.Kind, err)
	}
	if !info.Mode().IsRegular() {
		return nil, false, fmt.Errorf("%s manifest `%s` %w", m.Kind, path, ErrNotAFile)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, true, nil
}

// replaceFirst substitutes the first match of the manifest pattern.
func (m Manifest) replaceFirst(data []byte, tag string) ([]byte, bool) {
	loc := m.Pattern.FindIndex(data)
	if loc == nil {
		return data, false
	}

	out := make([]byte, 0, len(data)+len(tag))
	out = append(out, data[:loc[0]]...)
	out = append(out, m.Replace(tag)...)
	out = append(out, data[loc[1]:]...)
	return out, true
}

// manifestOptions controls how manifests are walked.
type manifestOptions struct {
	Dir      string
	Tag      string
	Verbose  bool
	Write    bool
	Reporter Reporter
}

// processManifests visits every configured manifest path. Missing files are
// skipped (reported only when Verbose), files without a version line are
// skipped and reported, and paths that are not regular files abort the walk.
// It returns the paths (joined with Dir) that were, or with Write=false would
// be, rewritten.
func processManifests(cfg Config, opt manifestOptions) ([]string, error) {
	var changed []string
	for _, t := range cfg.targets() {
		for _, p := range t.Paths {
			full := p
			if !filepath.IsAbs(full) {
				full = filepath.Join(opt.Dir, p)
			}

			data, ok, err := t.open(full)
			if err != nil {
				return changed, err
			}
			if !ok {
				if opt.Verbose {
					opt.Reporter.FileNotFound(p)
				}
				continue
			}

			out, ok := t.replaceFirst(data, opt.Tag)
			if !ok {
				opt.Reporter.VersionNotFound(p)
				continue
			}

			if opt.Write {
				if err := os.WriteFile(full, out, 0644); err != nil {
					return changed, fmt.Errorf("writing %s: %w", full, err)
				}
				opt.Reporter.VersionChanged(p)
			}
			changed = append(changed, full)
		}
	}
	return changed, nil
}

// UpdateManifests writes tag into every configured manifest and returns the
// rewritten paths.
func UpdateManifests(cfg Config, dir, tag string, verbose bool, rep Reporter) ([]string, error) {
	if rep == nil {
		rep = nopReporter{}
	}
	return processManifests(cfg, manifestOptions{Dir: dir, Tag: tag, Verbose: verbose, Write: true, Reporter: rep})
}

// ScanManifests reports which manifests UpdateManifests would rewrite
// without touching them.
func ScanManifests(cfg Config, dir, tag string, verbose bool, rep Reporter) ([]string, error) {
	if rep == nil {
		rep = nopReporter{}
	}
	return processManifests(cfg, manifestOptions{Dir: dir, Tag: tag, Verbose: verbose, Reporter: rep})
}
