package handlers

import (
	"net/http"

	"scuttlebutt/internal/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(s *store.Store) *CommentHandler {
	return &CommentHandler{store: s}
}

// Delete serves DELETE /api/comments/:comment_id.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	if err := h.store.DeleteComment(id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
