package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName        = "quietroom_session"
	sessionUsernameKey = "username"
)

// Sessions wraps the cookie-backed session store. A session carries only the
// username; the user record is re-read from the store on every request so
// promotions take effect immediately.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(secret []byte) *Sessions {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: cs}
}

// Username returns the authenticated username for this request, or "" when
// the session is missing or undecodable.
func (s *Sessions) Username(r *http.Request) string {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	if v, ok := sess.Values[sessionUsernameKey].(string); ok {
		return v
	}
	return ""
}

// SignIn binds the session to username and writes the cookie.
func (s *Sessions) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	sess, _ := s.store.Get(r, sessionName) // a bad cookie yields a fresh session
	sess.Values[sessionUsernameKey] = username
	return sess.Save(r, w)
}

// SignOut destroys the session before the caller redirects.
func (s *Sessions) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, sessionName)
	delete(sess.Values, sessionUsernameKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
