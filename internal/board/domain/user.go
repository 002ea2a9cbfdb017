package domain

import "time"

type User struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt encoded
	IsMember     bool
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the user's full name for rendering.
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
