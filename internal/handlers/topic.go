package handlers

import (
	"net/http"

	"scuttlebutt/internal/store"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	store *store.Store
}

func NewTopicHandler(s *store.Store) *TopicHandler {
	return &TopicHandler{store: s}
}

func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.store.Topics()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
