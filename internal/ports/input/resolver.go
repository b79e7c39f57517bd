package input

import (
	"golang.org/x/text/language"

	"msgsource/internal/domain/entities"
)

// MessageResolver resolves message codes against the catalog. Codes are
// matched exactly, without trimming; blank codes count as missing.
type MessageResolver interface {
	// Resolve renders key for locale, substituting {0}, {1}, ... with args.
	// defaultMessage (may be nil) is returned verbatim when key is not found.
	Resolve(key string, args []any, defaultMessage *string, locale *language.Tag) (string, error)
	ResolveRequest(req entities.Request) (string, error)
	// Chain lists the locale partitions searched for locale, in order.
	Chain(locale *language.Tag) []language.Tag
	DefaultLocale() language.Tag
	Locales() []language.Tag
}
