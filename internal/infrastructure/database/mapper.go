package database

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"msgsource/internal/domain"
	"msgsource/internal/domain/catalog"
	"msgsource/internal/domain/entities"
)

// baseLocale is how the base catalog is stored in the locale column.
const baseLocale = ""

type messageRow struct {
	Locale   string
	Code     string
	Template string
}

func messageToDomain(row messageRow) (entities.Message, error) {
	tag := catalog.Base
	if locale := strings.TrimSpace(row.Locale); locale != baseLocale {
		parsed, err := language.Parse(locale)
		if err != nil {
			return entities.Message{}, fmt.Errorf("message %q locale %q: %w", row.Code, row.Locale, domain.ErrInvalidLocale)
		}
		tag = parsed
	}
	return entities.Message{Locale: tag, Code: row.Code, Template: row.Template}, nil
}

func messageToRow(m entities.Message) messageRow {
	locale := baseLocale
	if m.Locale != catalog.Base {
		locale = m.Locale.String()
	}
	return messageRow{Locale: locale, Code: m.Code, Template: m.Template}
}
