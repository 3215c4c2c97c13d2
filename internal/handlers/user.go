package handlers

import (
	"net/http"

	"scuttlebutt/internal/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.Users()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
