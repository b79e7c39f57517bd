package entities

import "golang.org/x/text/language"

// Request is a single resolution request. Codes are tried in order; the
// first one found anywhere along the fallback chain wins.
type Request struct {
	Codes []string
	Args  []any
	// DefaultMessage is returned verbatim when no code matches. nil means absent.
	DefaultMessage *string
	// Locale selects the catalog partition. nil means the default locale.
	Locale *language.Tag
}
