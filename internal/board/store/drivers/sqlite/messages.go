package sqlite

import (
	"context"

	"github.com/quietroom/quietroom/internal/board/domain"
)

type messagesRepo struct {
	db dbtx
}

const messageColumns = `id, title, body, username, created_at`

func (r *messagesRepo) ListMessages(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Title, &m.Body, &m.Username, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messagesRepo) GetMessageByID(ctx context.Context, id string) (domain.Message, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)

	var m domain.Message
	if err := row.Scan(&m.ID, &m.Title, &m.Body, &m.Username, &m.CreatedAt); err != nil {
		return domain.Message{}, mapNotFound(err)
	}
	return m, nil
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, title, body, username, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.Body, m.Username, m.CreatedAt.UTC(),
	)
	return err
}

func (r *messagesRepo) DeleteMessage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	return err
}
