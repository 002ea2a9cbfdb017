package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/quietroom/quietroom/internal/board/domain"
	"github.com/quietroom/quietroom/internal/board/service"
	"github.com/quietroom/quietroom/internal/board/store"
	"github.com/quietroom/quietroom/pkg/slogx"
)

// PromoteHandler serves both passphrase-gated promotions. The member and
// admin methods only differ in which flag they check and which service
// call they make, so the plumbing is shared.
type PromoteHandler struct {
	Membership *service.MembershipService
	Renderer   *Renderer
}

func (h *PromoteHandler) HandleMemberGet(w http.ResponseWriter, r *http.Request) {
	h.handleGet(w, r, "member_form", "Join Us", func(u domain.User) bool { return u.IsMember })
}

func (h *PromoteHandler) HandleAdminGet(w http.ResponseWriter, r *http.Request) {
	h.handleGet(w, r, "admin_form", "Become an Admin", func(u domain.User) bool { return u.IsAdmin })
}

func (h *PromoteHandler) HandleMemberPost(w http.ResponseWriter, r *http.Request) {
	h.handlePost(w, r, h.Membership.PromoteMember)
}

func (h *PromoteHandler) HandleAdminPost(w http.ResponseWriter, r *http.Request) {
	h.handlePost(w, r, h.Membership.PromoteAdmin)
}

// handleGet shows the passphrase form. Visitors who are not logged in, or
// who already hold the flag, are sent home instead.
func (h *PromoteHandler) handleGet(w http.ResponseWriter, r *http.Request, page, title string, has func(domain.User) bool) {
	user := userFrom(r.Context())
	if user == nil || has(*user) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	_ = h.Renderer.Render(w, http.StatusOK, page, View{Title: title, User: user})
}

func (h *PromoteHandler) handlePost(w http.ResponseWriter, r *http.Request, promote func(ctx context.Context, username, passphrase string) error) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user := userFrom(ctx)
	if user == nil {
		// Same gate as the GET form: anonymous visitors go home.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	err := promote(ctx, user.Username, r.PostFormValue("password"))
	switch {
	case errors.Is(err, service.ErrBadPassphrase):
		log.Info("promotion rejected", "username", user.Username)
		h.Renderer.RenderError(w, http.StatusUnauthorized, "Incorrect password.")
	case errors.Is(err, store.ErrNotFound):
		log.Warn("promotion for vanished user", "username", user.Username)
		h.Renderer.RenderError(w, http.StatusUnauthorized, "There was a problem updating your membership.")
	case err != nil:
		log.Error("promotion failed", "username", user.Username, "err", err)
		h.Renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
	default:
		log.Info("promotion applied", "username", user.Username)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
