package entities

import "golang.org/x/text/language"

// Message is one catalog entry as produced by a message source.
// Locale is language.Und for the base (unlocalized) catalog.
type Message struct {
	Locale   language.Tag
	Code     string
	Template string
}
