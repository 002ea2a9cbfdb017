package web

import (
	"net/http"

	"github.com/quietroom/quietroom/internal/board/service"
	"github.com/quietroom/quietroom/pkg/slogx"
)

// MessageHandler serves the new message form.
type MessageHandler struct {
	Board    *service.BoardService
	Renderer *Renderer
}

func (h *MessageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if user == nil {
		http.Redirect(w, r, "/log-in", http.StatusFound)
		return
	}

	_ = h.Renderer.Render(w, http.StatusOK, "message_form", View{
		Title: "New Message",
		User:  user,
	})
}

func (h *MessageHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user := userFrom(ctx)
	if user == nil {
		http.Redirect(w, r, "/log-in", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.Renderer.RenderError(w, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	clean, errs := messageForm().Validate(ctx, r.PostForm)
	if len(errs) > 0 {
		_ = h.Renderer.Render(w, http.StatusBadRequest, "message_form", View{
			Title:  "New Message",
			User:   user,
			Errors: errs,
			Form:   clean,
		})
		return
	}

	msg, err := h.Board.PostMessage(ctx, *user, clean["title"], clean["message"])
	if err != nil {
		log.Error("failed to create message", "username", user.Username, "err", err)
		h.Renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	log.Info("message created", "message_id", msg.ID, "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
