package sqlite

import (
	"context"
	"time"

	"github.com/quietroom/quietroom/internal/board/domain"
	"github.com/quietroom/quietroom/internal/board/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, first_name, last_name, password_hash, is_member, is_admin, created_at, updated_at`

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)

	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.IsMember, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, first_name, last_name, password_hash, is_member, is_admin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.FirstName, u.LastName, u.PasswordHash,
		u.IsMember, u.IsAdmin, now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usersRepo) SetMember(ctx context.Context, username string) error {
	return r.setFlag(ctx, `is_member`, username)
}

func (r *usersRepo) SetAdmin(ctx context.Context, username string) error {
	return r.setFlag(ctx, `is_admin`, username)
}

// setFlag is keyed on the affected-rows count of the UPDATE, not the
// modified-column count, so setting an already-true flag still matches the
// row and is not reported as a missing user.
func (r *usersRepo) setFlag(ctx context.Context, column, username string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+column+` = 1, updated_at = ? WHERE username = ?`,
		time.Now().UTC(), username,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
