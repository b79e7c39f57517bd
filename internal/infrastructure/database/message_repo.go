package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"msgsource/internal/domain"
	"msgsource/internal/domain/entities"
	"msgsource/internal/ports/output"
)

var _ output.MessageRepository = (*MessageRepository)(nil)

const (
	selectMessages = `SELECT locale, code, template FROM messages ORDER BY locale, code`
	upsertMessage  = `INSERT INTO messages (locale, code, template) VALUES ($1, $2, $3)
ON CONFLICT (locale, code) DO UPDATE SET template = EXCLUDED.template, updated_at = now()`
	deleteMessage = `DELETE FROM messages WHERE locale = $1 AND code = $2`
)

// MessageRepository implements output.MessageRepository using pgx.
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Load returns every stored override.
func (r *MessageRepository) Load(ctx context.Context) ([]entities.Message, error) {
	rows, err := r.pool.Query(ctx, selectMessages)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[messageRow])
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}

	out := make([]entities.Message, 0, len(records))
	for _, record := range records {
		m, err := messageToDomain(record)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MessageRepository) Put(ctx context.Context, message entities.Message) error {
	if strings.TrimSpace(message.Code) == "" {
		return domain.ErrEmptyCode
	}
	row := messageToRow(message)
	if _, err := r.pool.Exec(ctx, upsertMessage, row.Locale, row.Code, row.Template); err != nil {
		return fmt.Errorf("put message: %w", err)
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, message entities.Message) error {
	row := messageToRow(message)
	if _, err := r.pool.Exec(ctx, deleteMessage, row.Locale, row.Code); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
