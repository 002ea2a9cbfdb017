package store

import (
	"context"
	"errors"

	"github.com/quietroom/quietroom/internal/board/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUsername returns a user by username (the identity key).
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UsernameTaken reports whether a username is already registered.
	UsernameTaken(ctx context.Context, username string) (bool, error)

	// SetMember flips is_member to true and bumps updated_at.
	// Returns ErrNotFound when no such user exists.
	SetMember(ctx context.Context, username string) error

	// SetAdmin flips is_admin to true and bumps updated_at.
	// Returns ErrNotFound when no such user exists.
	SetAdmin(ctx context.Context, username string) error
}

type Messages interface {
	// ListMessages returns all messages, newest first.
	ListMessages(ctx context.Context) ([]domain.Message, error)

	// GetMessageByID returns a single message.
	GetMessageByID(ctx context.Context, id string) (domain.Message, error)

	// CreateMessage inserts a new message (id is ULID).
	CreateMessage(ctx context.Context, m domain.Message) error

	// DeleteMessage removes a message by id. Deleting an id that no longer
	// exists is not an error.
	DeleteMessage(ctx context.Context, id string) error
}
