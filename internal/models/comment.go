package models

import (
	"time"
)

type Comment struct {
	CommentID uint      `gorm:"primaryKey" json:"comment_id"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	Author    string    `gorm:"not null;index" json:"author"` // references users.username, checked on write
	Body      string    `gorm:"type:text;not null" json:"body"`
	Votes     int       `gorm:"default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
