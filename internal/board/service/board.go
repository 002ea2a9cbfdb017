package service

import (
	"context"
	"errors"
	"time"

	"github.com/quietroom/quietroom/internal/board/domain"
	"github.com/quietroom/quietroom/internal/board/store"
	"github.com/quietroom/quietroom/pkg/idx"
)

// ErrNotAdmin means a non-admin tried an admin-only operation.
var ErrNotAdmin = errors.New("service: not admin")

// BoardService owns the message list.
type BoardService struct {
	Store store.Store
}

// ListMessages returns every message, newest first. An empty board is an
// empty slice, not an error.
func (s *BoardService) ListMessages(ctx context.Context) ([]domain.Message, error) {
	return s.Store.Messages().ListMessages(ctx)
}

// PostMessage persists a new message stamped with the author's username and
// the current time. The author comes from the authenticated session, never
// from a submitted field.
func (s *BoardService) PostMessage(ctx context.Context, author domain.User, title, body string) (domain.Message, error) {
	m := domain.Message{
		ID:        idx.New().String(),
		Title:     title,
		Body:      body,
		Username:  author.Username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Messages().CreateMessage(ctx, m); err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

// DeleteMessage removes a message by id. Only admins may delete; deleting an
// id that no longer exists still succeeds.
func (s *BoardService) DeleteMessage(ctx context.Context, actor domain.User, id string) error {
	if !actor.IsAdmin {
		return ErrNotAdmin
	}
	return s.Store.Messages().DeleteMessage(ctx, id)
}
