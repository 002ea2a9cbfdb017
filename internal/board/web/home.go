package web

import (
	"errors"
	"net/http"

	"github.com/quietroom/quietroom/internal/board/service"
	"github.com/quietroom/quietroom/pkg/slogx"
)

const boardTitle = "Members Only Chat"

// HomeHandler serves the message list and the admin delete action.
type HomeHandler struct {
	Board    *service.BoardService
	Renderer *Renderer
}

// HandleGet lists all messages. A store failure degrades to a 404-class
// error page, matching the board's historical behaviour.
func (h *HomeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	messages, err := h.Board.ListMessages(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list messages", "err", err)
		h.Renderer.RenderError(w, http.StatusNotFound, "Messages not found")
		return
	}

	_ = h.Renderer.Render(w, http.StatusOK, "home", View{
		Title:    boardTitle,
		User:     userFrom(ctx),
		Messages: messages,
	})
}

// HandlePost deletes a message by id. Only admins may delete.
func (h *HomeHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user := userFrom(ctx)
	if user == nil {
		http.Redirect(w, r, "/log-in", http.StatusSeeOther)
		return
	}

	id := r.PostFormValue("messageId")
	if err := h.Board.DeleteMessage(ctx, *user, id); err != nil {
		if errors.Is(err, service.ErrNotAdmin) {
			log.Warn("non-admin attempted message delete", "username", user.Username, "message_id", id)
			h.Renderer.RenderError(w, http.StatusUnauthorized, "Only admins can delete messages.")
			return
		}
		log.Error("failed to delete message", "message_id", id, "err", err)
		h.Renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
