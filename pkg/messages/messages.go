// Package messages prints the localized, user-facing output of a release.
//
// The language is chosen once by the caller (see DetectLocale) and passed to
// New; there is no process-wide locale state.
package messages

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages with translations; the first is the fallback.
var Supported = []language.Tag{language.English, language.Russian}

const (
	keyInitialTag       = "First tag was created - %s"
	keyNoHead           = "Make at least one commit. HEAD was not found"
	keyNoCommits        = "No commits between %s and %s"
	keyForceHint        = "If you want to create empty tag use --force or -f flag"
	keyNothingToRelease = "None of the %d commits since %s warrants a release (only feat, fix, refactor and chore do)"
	keyChangelog        = "outputting changes to %s"
	keyCommitting       = "committing %s"
	keyTagged           = "tagging release %s"
	keyPushHint         = "To publish, run:"
	keyPushed           = "pushed %s to %s"
	keyNoOrigin         = "Remote with name `%s` was not found"
	keyFileNotFound     = "tried to update the file `%s`, but couldn't find it"
	keyNoVersionLine    = "file `%s` does not contain line with version"
	keyVersionChanged   = "changed version in %s"
	keyInvalidPath      = "`%s` config should be an array<string> or a string"
	keyNotRepository    = "Not in a git repository"
	keyNoSignature      = "Could not get signature: git config --global user.name"
	keyDryRun           = "dry run: %s would be released (%s bump since %s)"
	keyDryRunInitial    = "dry run: the first tag %s would be created"
	keyWouldUpdate      = "would update %s"
)

var russian = map[string]string{
	keyInitialTag:       "Был создан первый тэг - %s",
	keyNoHead:           "Сделайте хотя бы один коммит. HEAD не был найден",
	keyNoCommits:        "Нет коммитов между %s и %s",
	keyForceHint:        "Чтобы создать пустой тэг, используйте флаг --force или -f",
	keyNothingToRelease: "Ни один из %d коммитов после %s не требует релиза (только feat, fix, refactor и chore)",
	keyChangelog:        "вписываем дополнения в %s",
	keyCommitting:       "коммитим %s",
	keyTagged:           "создали тег %s",
	keyPushHint:         "Чтобы отправить изменения, запустите:",
	keyPushed:           "отправили %s в %s",
	keyNoOrigin:         "Удаленный репозиторий `%s` не найден",
	keyFileNotFound:     "пытались обновить файл `%s`, но не нашли",
	keyNoVersionLine:    "файл `%s` не содержит строчки с версией",
	keyVersionChanged:   "изменили версию в %s",
	keyInvalidPath:      "`%s` в конфигурации должен быть массивом строк или строкой",
	keyNotRepository:    "Не в git репозитории",
	keyNoSignature:      "Не удалось получить подпись: git config --global user.name",
	keyDryRun:           "пробный запуск: будет выпущен %s (%s после %s)",
	keyDryRunInitial:    "пробный запуск: будет создан первый тэг %s",
	keyWouldUpdate:      "будет изменен %s",
}

// translations holds every non-English message. It is built once and only
// read afterwards.
var translations = mustCatalog()

func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range russian {
		if err := b.SetString(language.Russian, key, msg); err != nil {
			return nil, fmt.Errorf("russian message %q: %w", key, err)
		}
	}
	return b, nil
}

func mustCatalog() *catalog.Builder {
	b, err := newCatalog()
	if err != nil {
		panic(err)
	}
	return b
}

// symbols are the status markers, styled for one output.
type symbols struct {
	success string
	info    string
	warning string
	failure string
}

func newSymbols(w io.Writer) symbols {
	r := lipgloss.NewRenderer(w)
	mark := func(color, s string) string {
		return r.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
	}
	return symbols{
		success: mark("2", "✔"),
		info:    mark("4", "ℹ"),
		warning: mark("3", "⚠"),
		failure: mark("1", "✖"),
	}
}

// Printer writes progress to out and warnings and errors to errOut.
type Printer struct {
	p      *message.Printer
	out    io.Writer
	errOut io.Writer
	outSym symbols
	errSym symbols
}

// New returns a Printer for the given language. Unsupported languages fall
// back to English.
func New(lang language.Tag, out, errOut io.Writer) *Printer {
	return &Printer{
		p:      message.NewPrinter(lang, message.Catalog(translations)),
		out:    out,
		errOut: errOut,
		outSym: newSymbols(out),
		errSym: newSymbols(errOut),
	}
}

func (p *Printer) line(w io.Writer, symbol, key string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", symbol, p.p.Sprintf(key, args...))
}

// InitialTagCreated reports the v0.0.1 tag made in a repository without versions.
func (p *Printer) InitialTagCreated(tag string) {
	p.line(p.out, p.outSym.info, keyInitialTag, tag)
}

// ChangelogWritten reports the changelog file the release section went to.
func (p *Printer) ChangelogWritten(path string) {
	p.line(p.out, p.outSym.success, keyChangelog, path)
}

// FileNotFound warns about a configured manifest that does not exist.
func (p *Printer) FileNotFound(path string) {
	p.line(p.errOut, p.errSym.warning, keyFileNotFound, path)
}

// VersionNotFound warns about a manifest without a version line.
func (p *Printer) VersionNotFound(path string) {
	p.line(p.errOut, p.errSym.warning, keyNoVersionLine, path)
}

// VersionChanged reports a rewritten manifest.
func (p *Printer) VersionChanged(path string) {
	p.line(p.out, p.outSym.success, keyVersionChanged, path)
}

// Committing lists the files going into the release commit.
func (p *Printer) Committing(files []string) {
	p.line(p.out, p.outSym.success, keyCommitting, strings.Join(files, ", "))
}

// TagCreated reports the release tag.
func (p *Printer) TagCreated(tag string) {
	p.line(p.out, p.outSym.success, keyTagged, tag)
}

// PushHint prints the command that publishes the release.
func (p *Printer) PushHint(remote, branch string) {
	fmt.Fprintf(p.out, "%s %s `git push --follow-tags %s %s`\n", p.outSym.info, p.p.Sprintf(keyPushHint), remote, branch)
}

// Pushed reports a release sent to remote.
func (p *Printer) Pushed(remote, tag string) {
	p.line(p.out, p.outSym.success, keyPushed, tag, remote)
}

// NoHead reports a repository without commits.
func (p *Printer) NoHead() {
	p.line(p.errOut, p.errSym.failure, keyNoHead)
}

// NoCommits reports an empty release range and how to force a release.
func (p *Printer) NoCommits(start, end string) {
	p.line(p.errOut, p.errSym.warning, keyNoCommits, start, end)
	p.line(p.errOut, p.errSym.info, keyForceHint)
}

// NothingToRelease reports commits of which none asks for a version bump.
func (p *Printer) NothingToRelease(commits int, start string) {
	p.line(p.errOut, p.errSym.warning, keyNothingToRelease, commits, start)
}

// OriginNotFound reports a missing push remote.
func (p *Printer) OriginNotFound(remote string) {
	p.line(p.errOut, p.errSym.failure, keyNoOrigin, remote)
}

// InvalidManifestPath reports a config value of the wrong shape.
func (p *Printer) InvalidManifestPath(kind string) {
	p.line(p.errOut, p.errSym.failure, keyInvalidPath, kind)
}

// NotRepository reports a working directory outside any git repository.
func (p *Printer) NotRepository() {
	p.line(p.errOut, p.errSym.failure, keyNotRepository)
}

// NoSignature reports missing git user.name or user.email.
func (p *Printer) NoSignature() {
	p.line(p.errOut, p.errSym.failure, keyNoSignature)
}

// Error reports an error without a dedicated message.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errOut, "%s %v\n", p.errSym.failure, err)
}

// DryRun summarizes a planned release.
func (p *Printer) DryRun(tag, bump, previous string) {
	p.line(p.out, p.outSym.info, keyDryRun, tag, bump, previous)
}

// DryRunInitial reports the first tag a dry run would create.
func (p *Printer) DryRunInitial(tag string) {
	p.line(p.out, p.outSym.info, keyDryRunInitial, tag)
}

// WouldUpdate lists a file a dry run would change.
func (p *Printer) WouldUpdate(path string) {
	p.line(p.out, p.outSym.info, keyWouldUpdate, path)
}
