package handlers

import (
	"net/http"

	"scuttlebutt/internal/apperr"
	"scuttlebutt/internal/store"
	"scuttlebutt/internal/utils"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	store *store.Store
}

func NewArticleHandler(s *store.Store) *ArticleHandler {
	return &ArticleHandler{store: s}
}

// List serves GET /api/articles with optional sort_by, order and topic
// query parameters.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.store.ListArticles(c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Get serves GET /api/articles/:article_id. The response carries the stored
// markdown body plus its rendered HTML.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	article, err := h.store.GetArticle(id)
	if err != nil {
		fail(c, err)
		return
	}
	article.BodyHTML = utils.RenderMarkdown(article.Body)
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Comments serves GET /api/articles/:article_id/comments, newest first.
func (h *ArticleHandler) Comments(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	comments, err := h.store.ArticleComments(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type commentPayload struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// AddComment serves POST /api/articles/:article_id/comments.
func (h *ArticleHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	var payload commentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, apperr.BadRequest())
		return
	}
	comment, err := h.store.AddComment(id, payload.Username, payload.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

type votePayload struct {
	// Pointer so an absent field is distinguishable from a zero delta.
	IncVotes *int `json:"inc_votes"`
}

// UpdateVotes serves PATCH /api/articles/:article_id. A missing or
// non-numeric inc_votes is rejected before the store is involved.
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	var payload votePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IncVotes == nil {
		fail(c, apperr.BadRequest())
		return
	}
	article, err := h.store.UpdateVotes(id, *payload.IncVotes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
