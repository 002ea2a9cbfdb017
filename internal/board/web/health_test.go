package web

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t)

	t.Run("livez reports ok", func(t *testing.T) {
		resp, body := get(t, c, srv.URL+"/livez")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health healthResponse
		require.NoError(t, json.Unmarshal([]byte(body), &health))
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "test", health.Version)
		require.Nil(t, health.Checks)
	})

	t.Run("readyz checks the database", func(t *testing.T) {
		resp, body := get(t, c, srv.URL+"/readyz")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health healthResponse
		require.NoError(t, json.Unmarshal([]byte(body), &health))
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
