package forms

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTrimAndLength(t *testing.T) {
	t.Parallel()

	form := Form{Fields: []Field{
		{Name: "title", Trim: true, MinLen: 1, MaxLen: 20, LengthMessage: "title out of bounds"},
	}}

	t.Run("trims before bounding", func(t *testing.T) {
		clean, errs := form.Validate(context.Background(), url.Values{"title": {"  hello  "}})
		require.Empty(t, errs)
		require.Equal(t, "hello", clean["title"])
	})

	t.Run("whitespace-only fails min bound", func(t *testing.T) {
		_, errs := form.Validate(context.Background(), url.Values{"title": {"   "}})
		require.Equal(t, Errors{{Field: "title", Message: "title out of bounds"}}, errs)
	})

	t.Run("over max fails", func(t *testing.T) {
		_, errs := form.Validate(context.Background(), url.Values{"title": {"123456789012345678901"}})
		require.True(t, errs.Has("title"))
	})

	t.Run("missing field fails min bound", func(t *testing.T) {
		_, errs := form.Validate(context.Background(), url.Values{})
		require.True(t, errs.Has("title"))
	})
}

func TestValidateAlphanumeric(t *testing.T) {
	t.Parallel()

	form := Form{Fields: []Field{
		{
			Name: "first_name", Trim: true, MinLen: 1,
			LengthMessage:       "First name must be specified",
			Alphanumeric:        true,
			AlphanumericMessage: "First name has non-alphanumeric characters",
		},
	}}

	_, errs := form.Validate(context.Background(), url.Values{"first_name": {"Ann-Marie"}})
	require.Equal(t, "First name has non-alphanumeric characters", errs[0].Message)

	_, errs = form.Validate(context.Background(), url.Values{"first_name": {"Ann3"}})
	require.Empty(t, errs)
}

func TestValidateShortCircuitsPerField(t *testing.T) {
	t.Parallel()

	// Empty value fails the length rule; the character-class rule and the
	// custom check must not add a second message for the same field.
	called := false
	form := Form{Fields: []Field{
		{
			Name: "name", Trim: true, MinLen: 1,
			LengthMessage:       "required",
			Alphanumeric:        true,
			AlphanumericMessage: "bad characters",
			Check: func(ctx context.Context, value string, fields url.Values) string {
				called = true
				return "custom"
			},
		},
	}}

	_, errs := form.Validate(context.Background(), url.Values{"name": {"  "}})
	require.Equal(t, Errors{{Field: "name", Message: "required"}}, errs)
	require.False(t, called)
}

func TestValidateAccumulatesAcrossFields(t *testing.T) {
	t.Parallel()

	form := Form{Fields: []Field{
		{Name: "a", MinLen: 1, LengthMessage: "a required"},
		{Name: "b", MinLen: 1, LengthMessage: "b required"},
		{Name: "c", MinLen: 1, LengthMessage: "c required"},
	}}

	_, errs := form.Validate(context.Background(), url.Values{"b": {"ok"}})
	require.Equal(t, Errors{
		{Field: "a", Message: "a required"},
		{Field: "c", Message: "c required"},
	}, errs)
}

func TestValidateEscapes(t *testing.T) {
	t.Parallel()

	form := Form{Fields: []Field{
		{Name: "body", Trim: true, MinLen: 1, MaxLen: 250, LengthMessage: "required", Escape: true},
	}}

	clean, errs := form.Validate(context.Background(), url.Values{"body": {`<b>"hi" & bye</b>`}})
	require.Empty(t, errs)
	require.Equal(t, "&lt;b&gt;&#34;hi&#34; &amp; bye&lt;/b&gt;", clean["body"])

	t.Run("failed fields still echo escaped input", func(t *testing.T) {
		long := strings.Repeat("<", 251)
		clean, errs := form.Validate(context.Background(), url.Values{"body": {long}})
		require.True(t, errs.Has("body"))
		require.Equal(t, strings.Repeat("&lt;", 251), clean["body"])
	})
}

func TestValidateCustomCheck(t *testing.T) {
	t.Parallel()

	form := Form{Fields: []Field{
		{Name: "password", MinLen: 5, LengthMessage: "Passwords must be at least 5 characters"},
		{
			Name: "confirm_password",
			Check: func(ctx context.Context, value string, fields url.Values) string {
				if value != fields.Get("password") {
					return "Passwords do not match"
				}
				return ""
			},
		},
	}}

	t.Run("mismatch reported", func(t *testing.T) {
		_, errs := form.Validate(context.Background(), url.Values{
			"password":         {"longenough"},
			"confirm_password": {"different"},
		})
		require.Equal(t, Errors{{Field: "confirm_password", Message: "Passwords do not match"}}, errs)
	})

	t.Run("match passes", func(t *testing.T) {
		_, errs := form.Validate(context.Background(), url.Values{
			"password":         {"longenough"},
			"confirm_password": {"longenough"},
		})
		require.Empty(t, errs)
	})
}
