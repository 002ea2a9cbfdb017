package web

import (
	"errors"
	"net/http"

	"github.com/quietroom/quietroom/internal/board/service"
	"github.com/quietroom/quietroom/internal/board/store"
	"github.com/quietroom/quietroom/pkg/forms"
	"github.com/quietroom/quietroom/pkg/slogx"
)

// SignUpHandler serves the registration form.
type SignUpHandler struct {
	Credentials *service.CredentialService
	Store       store.Store
	Renderer    *Renderer
}

func (h *SignUpHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if userFrom(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	_ = h.Renderer.Render(w, http.StatusOK, "sign_up", View{
		Title: "Sign Up",
		Form:  map[string]string{},
	})
}

func (h *SignUpHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderError(w, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	clean, errs := signUpForm(h.Store.Users()).Validate(ctx, r.PostForm)
	if len(errs) > 0 {
		h.renderForm(w, clean, errs)
		return
	}

	_, err := h.Credentials.Register(ctx,
		clean["first_name"], clean["last_name"], clean["username"], clean["password"])
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost the race with a concurrent sign-up for the same name.
		h.renderForm(w, clean, forms.Errors{{Field: "username", Message: "Username is taken"}})
		return
	}
	if err != nil {
		log.Error("failed to register user", "username", clean["username"], "err", err)
		h.Renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	log.Info("user registered", "username", clean["username"])
	http.Redirect(w, r, "/log-in", http.StatusSeeOther)
}

// renderForm re-renders the sign-up form with sanitized echoed input.
// Passwords are never echoed back.
func (h *SignUpHandler) renderForm(w http.ResponseWriter, clean map[string]string, errs forms.Errors) {
	delete(clean, "password")
	delete(clean, "confirm_password")

	_ = h.Renderer.Render(w, http.StatusBadRequest, "sign_up", View{
		Title:  "Sign Up",
		Form:   clean,
		Errors: errs,
	})
}
