package service

import (
	"context"
	"testing"

	"github.com/quietroom/quietroom/internal/board/store"
	"github.com/stretchr/testify/require"
)

func newMembershipFixture(t *testing.T) (*MembershipService, *CredentialService) {
	st := newTestStore(t)
	return &MembershipService{
		Store:      st,
		MemberPass: "open-sesame",
		AdminPass:  "mellon",
	}, &CredentialService{Store: st}
}

func TestPromoteMember(t *testing.T) {
	ctx := context.Background()
	svc, creds := newMembershipFixture(t)

	_, err := creds.Register(ctx, "Dana", "Hart", "dana", "passw0rd")
	require.NoError(t, err)

	t.Run("wrong passphrase never flips the flag", func(t *testing.T) {
		err := svc.PromoteMember(ctx, "dana", "wrong")
		require.ErrorIs(t, err, ErrBadPassphrase)

		u, err := creds.Store.Users().GetUserByUsername(ctx, "dana")
		require.NoError(t, err)
		require.False(t, u.IsMember)
	})

	t.Run("correct passphrase promotes", func(t *testing.T) {
		require.NoError(t, svc.PromoteMember(ctx, "dana", "open-sesame"))

		u, err := creds.Store.Users().GetUserByUsername(ctx, "dana")
		require.NoError(t, err)
		require.True(t, u.IsMember)
		require.False(t, u.IsAdmin, "member promotion must not touch the admin flag")
	})

	t.Run("already-member promotion is a no-op success", func(t *testing.T) {
		require.NoError(t, svc.PromoteMember(ctx, "dana", "open-sesame"))

		u, err := creds.Store.Users().GetUserByUsername(ctx, "dana")
		require.NoError(t, err)
		require.True(t, u.IsMember)
	})

	t.Run("vanished user reported", func(t *testing.T) {
		err := svc.PromoteMember(ctx, "ghost", "open-sesame")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPromoteAdmin(t *testing.T) {
	ctx := context.Background()
	svc, creds := newMembershipFixture(t)

	_, err := creds.Register(ctx, "Evan", "Reed", "evan", "passw0rd")
	require.NoError(t, err)

	t.Run("member passphrase does not grant admin", func(t *testing.T) {
		err := svc.PromoteAdmin(ctx, "evan", "open-sesame")
		require.ErrorIs(t, err, ErrBadPassphrase)
	})

	t.Run("correct passphrase promotes", func(t *testing.T) {
		require.NoError(t, svc.PromoteAdmin(ctx, "evan", "mellon"))

		u, err := creds.Store.Users().GetUserByUsername(ctx, "evan")
		require.NoError(t, err)
		require.True(t, u.IsAdmin)
	})

	t.Run("repeat promotion stays a success", func(t *testing.T) {
		require.NoError(t, svc.PromoteAdmin(ctx, "evan", "mellon"))
	})
}

func TestPromotionDisabledWithoutSecret(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MembershipService{Store: st} // no passphrases configured
	creds := &CredentialService{Store: st}

	_, err := creds.Register(ctx, "Fay", "Moss", "fay", "passw0rd")
	require.NoError(t, err)

	require.ErrorIs(t, svc.PromoteMember(ctx, "fay", ""), ErrBadPassphrase)
	require.ErrorIs(t, svc.PromoteAdmin(ctx, "fay", ""), ErrBadPassphrase)
}
