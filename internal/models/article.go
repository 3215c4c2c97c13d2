package models

import (
	"time"
)

type Article struct {
	ArticleID uint      `gorm:"primaryKey" json:"article_id"`
	Title     string    `gorm:"not null" json:"title"`
	Topic     string    `gorm:"not null;index" json:"topic"`  // references topics.slug, checked on write
	Author    string    `gorm:"not null;index" json:"author"` // references users.username, checked on write
	Body      string    `gorm:"type:text" json:"body,omitempty"`
	Votes     int       `gorm:"default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`

	// Not stored; filled per query.
	CommentCount int    `gorm:"->;-:migration" json:"comment_count"`
	BodyHTML     string `gorm:"-" json:"body_html,omitempty"`
}
