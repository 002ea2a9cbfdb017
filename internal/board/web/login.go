package web

import (
	"errors"
	"net/http"

	"github.com/quietroom/quietroom/internal/board/service"
	"github.com/quietroom/quietroom/pkg/slogx"
)

// LogInHandler serves login and logout.
type LogInHandler struct {
	Credentials *service.CredentialService
	Sessions    *Sessions
	Renderer    *Renderer
}

func (h *LogInHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if userFrom(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	_ = h.Renderer.Render(w, http.StatusOK, "log_in", View{Title: "Log In"})
}

// HandlePost authenticates and establishes a session. Failed attempts
// redirect back to the form with no detail about which credential was wrong.
func (h *LogInHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PostFormValue("username")
	user, err := h.Credentials.Authenticate(ctx, username, r.PostFormValue("password"))
	if errors.Is(err, service.ErrUnknownUser) || errors.Is(err, service.ErrBadPassword) {
		log.Info("login rejected", "username", username)
		http.Redirect(w, r, "/log-in", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error("login failed", "username", username, "err", err)
		h.Renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	if err := h.Sessions.SignIn(w, r, user.Username); err != nil {
		log.Error("failed to write session", "username", username, "err", err)
		h.Renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	log.Info("login accepted", "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout destroys the session before redirecting home.
func (h *LogInHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Sessions.SignOut(w, r); err != nil {
		slogx.FromContext(ctx).Error("failed to destroy session", "err", err)
		h.Renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
