package output

import (
	"context"

	"msgsource/internal/domain/entities"
)

// MessageSource loads catalog entries once at startup.
// Entries later in the returned slice override earlier ones for the same
// locale and code.
type MessageSource interface {
	Load(ctx context.Context) ([]entities.Message, error)
}

// MessageRepository stores message overrides.
type MessageRepository interface {
	MessageSource
	Put(ctx context.Context, message entities.Message) error
	Delete(ctx context.Context, message entities.Message) error
}
