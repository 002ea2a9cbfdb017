package service

import (
	"context"
	"testing"
	"time"

	"github.com/quietroom/quietroom/internal/board/domain"
	"github.com/stretchr/testify/require"
)

func TestPostMessage(t *testing.T) {
	ctx := context.Background()
	svc := &BoardService{Store: newTestStore(t)}
	author := domain.User{Username: "alice"}

	m, err := svc.PostMessage(ctx, author, "hello", "first post")
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.Equal(t, "alice", m.Username)
	require.WithinDuration(t, time.Now().UTC(), m.CreatedAt, 5*time.Second)

	list, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, m.ID, list[0].ID)
}

func TestListMessagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := &BoardService{Store: newTestStore(t)}
	author := domain.User{Username: "alice"}

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.PostMessage(ctx, author, title, "body")
		require.NoError(t, err)
	}

	list, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "three", list[0].Title)
	require.Equal(t, "one", list[2].Title)
}

func TestListMessagesEmptyBoard(t *testing.T) {
	ctx := context.Background()
	svc := &BoardService{Store: newTestStore(t)}

	list, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()
	svc := &BoardService{Store: newTestStore(t)}

	admin := domain.User{Username: "root", IsAdmin: true}
	member := domain.User{Username: "alice", IsMember: true}

	m, err := svc.PostMessage(ctx, member, "hello", "body")
	require.NoError(t, err)

	t.Run("non-admin rejected", func(t *testing.T) {
		err := svc.DeleteMessage(ctx, member, m.ID)
		require.ErrorIs(t, err, ErrNotAdmin)

		list, err := svc.ListMessages(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("admin deletes", func(t *testing.T) {
		require.NoError(t, svc.DeleteMessage(ctx, admin, m.ID))

		list, err := svc.ListMessages(ctx)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("deleting a missing id succeeds", func(t *testing.T) {
		require.NoError(t, svc.DeleteMessage(ctx, admin, m.ID))
	})
}
