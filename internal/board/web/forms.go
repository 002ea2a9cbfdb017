package web

import (
	"context"
	"net/url"

	"github.com/quietroom/quietroom/internal/board/store"
	"github.com/quietroom/quietroom/pkg/forms"
	"github.com/quietroom/quietroom/pkg/slogx"
)

// signUpForm declares the sign-up rules in evaluation order. The username
// uniqueness check runs against the store; a lookup failure is reported as a
// field error rather than aborting the whole request.
func signUpForm(users store.Users) forms.Form {
	return forms.Form{Fields: []forms.Field{
		{
			Name: "first_name", Trim: true, MinLen: 1, Escape: true,
			LengthMessage:       "First name must be specified",
			Alphanumeric:        true,
			AlphanumericMessage: "First name has non-alphanumeric characters",
		},
		{
			Name: "last_name", Trim: true, MinLen: 1, Escape: true,
			LengthMessage:       "Last name must be specified",
			Alphanumeric:        true,
			AlphanumericMessage: "Last name has non-alphanumeric characters",
		},
		{
			Name: "password", MinLen: 5,
			LengthMessage: "Passwords must be at least 5 characters",
		},
		{
			Name: "confirm_password",
			Check: func(ctx context.Context, value string, fields url.Values) string {
				if value != fields.Get("password") {
					return "Passwords do not match"
				}
				return ""
			},
		},
		{
			Name: "username", MinLen: 1, MaxLen: 12,
			LengthMessage: "Usernames must be specified and less than 12 characters",
			Check: func(ctx context.Context, value string, fields url.Values) string {
				taken, err := users.UsernameTaken(ctx, value)
				if err != nil {
					slogx.FromContext(ctx).Error("username lookup failed", "err", err)
					return "Username could not be checked, try again"
				}
				if taken {
					return "Username is taken"
				}
				return ""
			},
		},
	}}
}

// messageForm declares the new-message rules.
func messageForm() forms.Form {
	return forms.Form{Fields: []forms.Field{
		{
			Name: "title", Trim: true, MinLen: 1, MaxLen: 20, Escape: true,
			LengthMessage: "Title is required and must be under 20 characters",
		},
		{
			Name: "message", Trim: true, MinLen: 1, MaxLen: 250, Escape: true,
			LengthMessage: "Message body is required and must be under 250 characters",
		},
	}}
}
