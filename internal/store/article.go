package store

import (
	"errors"

	"scuttlebutt/internal/apperr"
	"scuttlebutt/internal/models"
	"scuttlebutt/internal/utils"

	"gorm.io/gorm"
)

// Columns a client may order article listings by. Anything outside this set
// falls back to created_at before it can touch the query text.
var articleSortColumns = map[string]bool{
	"article_id": true,
	"title":      true,
	"topic":      true,
	"author":     true,
	"body":       true,
	"created_at": true,
	"votes":      true,
}

const articleListSelect = "articles.article_id, articles.author, articles.title, " +
	"articles.topic, articles.created_at, articles.votes, " +
	"COUNT(comments.comment_id) AS comment_count"

// ListArticles builds and runs the filtered, sorted listing query. Comment
// counts come from the join, so they are live rather than cached. A topic
// filter must name a stored topic; an unrecognized sort_by or order silently
// defaults instead of failing.
func (s *Store) ListArticles(sortBy, order, topic string) ([]models.Article, error) {
	if !articleSortColumns[sortBy] {
		sortBy = "created_at"
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	q := s.db.Model(&models.Article{}).
		Select(articleListSelect).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")

	if topic != "" {
		if err := s.Exists(topic, EntityTopic); err != nil {
			return nil, err
		}
		q = q.Where("articles.topic = ?", topic)
	}

	articles := make([]models.Article, 0)
	if err := q.Order("articles." + sortBy + " " + order).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle fetches one article with its live comment count. Identifier
// shape is validated by the handler layer; the store only sees ints.
func (s *Store) GetArticle(id int) (*models.Article, error) {
	var article models.Article
	err := s.db.Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		Take(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("article does not exist")
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ArticleComments returns the article's comments, newest first. An article
// with no comments yields an empty list, not an error.
func (s *Store) ArticleComments(id int) ([]models.Comment, error) {
	if _, err := s.GetArticle(id); err != nil {
		return nil, err
	}
	comments := make([]models.Comment, 0)
	if err := s.db.Where("article_id = ?", id).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment stores a comment once the payload, the article, and the author
// have all been checked, in that order. Markup is stripped from the body
// before it is stored.
func (s *Store) AddComment(id int, username, body string) (*models.Comment, error) {
	if username == "" || body == "" {
		return nil, apperr.BadRequest()
	}
	if _, err := s.GetArticle(id); err != nil {
		return nil, err
	}
	if err := s.Exists(username, EntityUser); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ArticleID: uint(id),
		Author:    username,
		Body:      utils.StripMarkup(body),
		Votes:     0,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateVotes adds delta to the article's vote count in place and returns the
// updated article. Deltas may be negative and counts may go below zero.
func (s *Store) UpdateVotes(id, delta int) (*models.Article, error) {
	if _, err := s.GetArticle(id); err != nil {
		return nil, err
	}
	err := s.db.Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error
	if err != nil {
		return nil, err
	}
	return s.GetArticle(id)
}
