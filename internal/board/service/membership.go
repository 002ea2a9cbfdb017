package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/quietroom/quietroom/internal/board/domain"
	"github.com/quietroom/quietroom/internal/board/store"
)

// ErrBadPassphrase means the submitted promotion passphrase did not match
// the configured secret.
var ErrBadPassphrase = errors.New("service: bad passphrase")

// MembershipService performs the two one-way flag promotions. The shared
// passphrases are injected at startup; nothing here reads process-wide state.
type MembershipService struct {
	Store      store.Store
	MemberPass string
	AdminPass  string
}

// PromoteMember flips is_member for username after checking the passphrase.
// Promotion is idempotent: promoting a user who is already a member is a
// no-op success, not a failure. A vanished user surfaces store.ErrNotFound.
func (s *MembershipService) PromoteMember(ctx context.Context, username, passphrase string) error {
	if !passphraseMatches(passphrase, s.MemberPass) {
		return ErrBadPassphrase
	}
	return s.promote(ctx, username, func(u domain.User) bool { return u.IsMember }, store.Users.SetMember)
}

// PromoteAdmin flips is_admin for username after checking the passphrase.
// Same idempotency contract as PromoteMember.
func (s *MembershipService) PromoteAdmin(ctx context.Context, username, passphrase string) error {
	if !passphraseMatches(passphrase, s.AdminPass) {
		return ErrBadPassphrase
	}
	return s.promote(ctx, username, func(u domain.User) bool { return u.IsAdmin }, store.Users.SetAdmin)
}

// promote reads the current flag state and sets it inside one transaction,
// so "already true" can be distinguished from "user vanished" without racing
// a concurrent promotion.
func (s *MembershipService) promote(
	ctx context.Context,
	username string,
	has func(domain.User) bool,
	set func(store.Users, context.Context, string) error,
) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			return err
		}
		if has(u) {
			return nil
		}
		return set(tx.Users(), ctx, username)
	})
}

func passphraseMatches(submitted, secret string) bool {
	if secret == "" {
		// An unset secret disables the promotion entirely.
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(secret)) == 1
}
