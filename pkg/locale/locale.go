package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Fallback is used when the environment names no usable locale.
var Fallback = language.English

// System returns the process default locale from LC_ALL, LC_MESSAGES and
// LANG, in that order, or Fallback.
func System() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag, ok := FromPOSIX(os.Getenv(name)); ok {
			return tag
		}
	}
	return Fallback
}

// FromPOSIX parses values such as "ko_KR.UTF-8" or "de_DE@euro".
// "C" and "POSIX" carry no language and report false.
func FromPOSIX(v string) (language.Tag, bool) {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
