package release

// Reporter receives progress of a release for display. messages.Printer is
// the implementation used by the CLI.
type Reporter interface {
	InitialTagCreated(tag string)
	ChangelogWritten(path string)
	FileNotFound(path string)
	VersionNotFound(path string)
	VersionChanged(path string)
	Committing(files []string)
	TagCreated(tag string)
	PushHint(remote, branch string)
	Pushed(remote, tag string)
}

type nopReporter struct{}

func (nopReporter) InitialTagCreated(string) {}
func (nopReporter) ChangelogWritten(string) {}
func (nopReporter) FileNotFound(string) {}
func (nopReporter) VersionNotFound(string) {}
func (nopReporter) VersionChanged(string) {}
func (nopReporter) Committing([]string) {}
func (nopReporter) TagCreated(string) {}
func (nopReporter) PushHint(string, string) {}
func (nopReporter) Pushed(string, string) {}
