package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptyCode       = errors.New("message code is empty")
	ErrInvalidLocale   = errors.New("invalid locale")
)

// MessageNotFoundError identifies the code that matched no entry along the
// whole fallback chain of Locale. It matches ErrMessageNotFound with errors.Is.
type MessageNotFoundError struct {
	Code   string
	Locale string
}

func (e *MessageNotFoundError) Error() string {
	return fmt.Sprintf("no message found under code '%s' for locale '%s'", e.Code, e.Locale)
}

func (e *MessageNotFoundError) Is(target error) bool {
	return target == ErrMessageNotFound
}

// Code returns the stable code of a domain error, or "" for foreign errors.
// Adapters render it through the catalog as "error.<code>".
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMessageNotFound):
		return "message_not_found"
	case errors.Is(err, ErrEmptyCode):
		return "empty_code"
	case errors.Is(err, ErrInvalidLocale):
		return "invalid_locale"
	default:
		return ""
	}
}
