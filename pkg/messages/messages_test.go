package messages

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newTestPrinter(lang language.Tag) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(lang, &out, &errOut), &out, &errOut
}

func TestPrinterEnglish(t *testing.T) {
	p, out, errOut := newTestPrinter(language.English)

	p.ChangelogWritten("CHANGELOG.md")
	p.VersionChanged("package.json")
	p.Committing([]string{"CHANGELOG.md", "package.json"})
	p.TagCreated("v1.1.0")
	p.PushHint("origin", "main")

	require.Equal(t, "✔ outputting changes to CHANGELOG.md\n"+
		"✔ changed version in package.json\n"+
		"✔ committing CHANGELOG.md, package.json\n"+
		"✔ tagging release v1.1.0\n"+
		"ℹ To publish, run: `git push --follow-tags origin main`\n", out.String())
	require.Empty(t, errOut.String())
}

func TestPrinterRussian(t *testing.T) {
	p, out, errOut := newTestPrinter(language.Russian)

	p.InitialTagCreated("v0.0.1")
	p.NoCommits("v1.0.0", "HEAD")

	require.Equal(t, "ℹ Был создан первый тэг - v0.0.1\n", out.String())
	require.Equal(t, "⚠ Нет коммитов между v1.0.0 и HEAD\n"+
		"ℹ Чтобы создать пустой тэг, используйте флаг --force или -f\n", errOut.String())
}

func TestPrinterUnsupportedLanguageFallsBack(t *testing.T) {
	p, _, errOut := newTestPrinter(language.German)

	p.NoHead()
	require.Equal(t, "✖ Make at least one commit. HEAD was not found\n", errOut.String())
}

func TestPrinterWarningsGoToErrOut(t *testing.T) {
	p, out, errOut := newTestPrinter(language.English)

	p.FileNotFound(".helm/Chart.yaml")
	p.VersionNotFound("composer.json")
	p.OriginNotFound("origin")
	p.InvalidManifestPath("npm")
	p.Error(errors.New("boom"))

	require.Empty(t, out.String())
	require.Equal(t, "⚠ tried to update the file `.helm/Chart.yaml`, but couldn't find it\n"+
		"⚠ file `composer.json` does not contain line with version\n"+
		"✖ Remote with name `origin` was not found\n"+
		"✖ `npm` config should be an array<string> or a string\n"+
		"✖ boom\n", errOut.String())
}

func TestPrinterDryRun(t *testing.T) {
	p, out, _ := newTestPrinter(language.English)

	p.DryRun("v2.0.0", "major", "v1.4.2")
	p.WouldUpdate("CHANGELOG.md")
	p.DryRunInitial("v0.0.1")

	require.Equal(t, "ℹ dry run: v2.0.0 would be released (major bump since v1.4.2)\n"+
		"ℹ would update CHANGELOG.md\n"+
		"ℹ dry run: the first tag v0.0.1 would be created\n", out.String())
}

func TestRussianCatalogIsComplete(t *testing.T) {
	keys := []string{
		keyInitialTag, keyNoHead, keyNoCommits, keyForceHint, keyNothingToRelease,
		keyChangelog, keyCommitting, keyTagged, keyPushHint, keyPushed, keyNoOrigin,
		keyFileNotFound, keyNoVersionLine, keyVersionChanged, keyInvalidPath,
		keyNotRepository, keyNoSignature, keyDryRun, keyDryRunInitial, keyWouldUpdate,
	}
	require.Len(t, russian, len(keys))

	b, err := newCatalog()
	require.NoError(t, err)
	ru := message.NewPrinter(language.Russian, message.Catalog(b))
	en := message.NewPrinter(language.English, message.Catalog(b))
	args := []any{"a", "b", "c"}
	for _, key := range keys {
		require.Contains(t, russian, key)
		require.NotEqual(t, en.Sprintf(key, args...), ru.Sprintf(key, args...), key)
	}
}
