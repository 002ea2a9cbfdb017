package web

import (
	"context"

	"github.com/quietroom/quietroom/internal/board/domain"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

func contextWithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// userFrom returns the authenticated user attached by the session
// middleware, or nil for anonymous requests.
func userFrom(ctx context.Context) *domain.User {
	if u, ok := ctx.Value(ctxKeyUser).(*domain.User); ok {
		return u
	}
	return nil
}
