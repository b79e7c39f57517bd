package discord

import (
	"golang.org/x/text/language"

	"msgsource/internal/domain"
	"msgsource/internal/domain/entities"
)

const defaultErrorMessage = "Something went wrong."

// Translator is the slice of the message resolver the error helpers need.
type Translator interface {
	ResolveRequest(req entities.Request) (string, error)
}

// TranslateDomainError maps a domain error code to a user-facing message by
// resolving "error.<code>", then "error.default", in locale.
func TranslateDomainError(t Translator, code string, locale language.Tag, args ...any) string {
	codes := []string{"error.default"}
	if code != "" {
		codes = append([]string{"error." + code}, codes...)
	}
	fallback := defaultErrorMessage
	msg, err := t.ResolveRequest(entities.Request{
		Codes:          codes,
		Args:           args,
		DefaultMessage: &fallback,
		Locale:         &locale,
	})
	if err != nil {
		return fallback
	}
	return msg
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(t Translator, err error, locale language.Tag, args ...any) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(t, domain.Code(err), locale, args...)
}
