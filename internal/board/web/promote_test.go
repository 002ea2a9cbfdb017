package web

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quietroom/quietroom/internal/board/store"
)

func TestPromotion(t *testing.T) {
	register := func(t *testing.T, c *http.Client, base string) {
		t.Helper()
		signUp(t, c, base, "Alice", "Archer", "alice", "hunter2")
		logIn(t, c, base, "alice", "hunter2")
	}

	flags := func(t *testing.T, st store.Store) (member, admin bool) {
		t.Helper()
		u, err := st.Users().GetUserByUsername(context.Background(), "alice")
		require.NoError(t, err)
		return u.IsMember, u.IsAdmin
	}

	t.Run("correct passphrase grants membership", func(t *testing.T) {
		srv, st := newTestServer(t)
		c := newClient(t)
		register(t, c, srv.URL)

		resp, _ := postForm(t, c, srv.URL+"/become-member", url.Values{"password": {testMemberPass}})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get("Location"))

		member, admin := flags(t, st)
		require.True(t, member)
		require.False(t, admin)
	})

	t.Run("wrong passphrase never flips a flag", func(t *testing.T) {
		srv, st := newTestServer(t)
		c := newClient(t)
		register(t, c, srv.URL)

		for _, path := range []string{"/become-member", "/become-admin"} {
			resp, body := postForm(t, c, srv.URL+path, url.Values{"password": {"guess"}})
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
			require.Contains(t, body, "Incorrect password.", path)
		}

		member, admin := flags(t, st)
		require.False(t, member)
		require.False(t, admin)
	})

	t.Run("the member passphrase does not grant admin", func(t *testing.T) {
		srv, st := newTestServer(t)
		c := newClient(t)
		register(t, c, srv.URL)

		resp, _ := postForm(t, c, srv.URL+"/become-admin", url.Values{"password": {testMemberPass}})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		_, admin := flags(t, st)
		require.False(t, admin)
	})

	t.Run("re-promotion is a quiet success", func(t *testing.T) {
		srv, st := newTestServer(t)
		c := newClient(t)
		register(t, c, srv.URL)

		for range 2 {
			resp, _ := postForm(t, c, srv.URL+"/become-member", url.Values{"password": {testMemberPass}})
			require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		}

		member, _ := flags(t, st)
		require.True(t, member)
	})

	t.Run("join is an alias for become-member", func(t *testing.T) {
		srv, st := newTestServer(t)
		c := newClient(t)
		register(t, c, srv.URL)

		resp, _ := postForm(t, c, srv.URL+"/join", url.Values{"password": {testMemberPass}})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)

		member, _ := flags(t, st)
		require.True(t, member)
	})

	t.Run("forms bounce anonymous visitors and existing holders", func(t *testing.T) {
		srv, _ := newTestServer(t)

		anon := newClient(t)
		resp, _ := get(t, anon, srv.URL+"/become-member")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get("Location"))

		// The POST gate sends anonymous visitors home too
		resp, _ = postForm(t, anon, srv.URL+"/become-member", url.Values{"password": {testMemberPass}})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get("Location"))

		c := newClient(t)
		register(t, c, srv.URL)
		postForm(t, c, srv.URL+"/become-member", url.Values{"password": {testMemberPass}})

		resp, _ = get(t, c, srv.URL+"/become-member")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get("Location"))

		// Not an admin yet, so that form still renders
		resp, body := get(t, c, srv.URL+"/become-admin")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, body, "admin passphrase")
	})
}
