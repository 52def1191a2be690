package messages

import (
	"strings"

	"golang.org/x/text/language"
)

var matcher = language.NewMatcher(Supported)

// DetectLocale picks a supported language from the POSIX locale variables
// LC_ALL, LC_MESSAGES and LANG, in that order. Values such as "ru_RU.UTF-8"
// are accepted. English is returned when nothing matches.
func DetectLocale(getenv func(string) string) language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}

		t, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			continue
		}
		_, idx, conf := matcher.Match(t)
		if conf == language.No {
			return Supported[0]
		}
		return Supported[idx]
	}
	return Supported[0]
}
