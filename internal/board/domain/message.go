package domain

import "time"

// Message is a posting on the board. Username is the author's username at
// creation time, denormalized as plain text: deleting the user does not
// delete or re-attribute their messages.
type Message struct {
	ID        string
	Title     string
	Body      string
	Username  string
	CreatedAt time.Time
}
