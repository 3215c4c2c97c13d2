// Package testutil provides the in-memory database and fixture set shared by
// the store and router test suites.
package testutil

import (
	"testing"
	"time"

	"scuttlebutt/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated in-memory database scoped to a single test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Article{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return gdb
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed loads the fixture set: three topics, four users, five articles spread
// across the topics, and four comments (three on article 1, one on article 3,
// none on article 2).
func Seed(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	topics := []models.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
		{Slug: "football", Description: "FOOTIE!"},
		{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
	}
	users := []models.User{
		{Username: "butter_bridge", Name: "Jonny", AvatarURL: "https://example.com/avatars/butter_bridge.jpg"},
		{Username: "icellusedkars", Name: "Sam", AvatarURL: "https://example.com/avatars/icellusedkars.jpg"},
		{Username: "rogersop", Name: "Paul", AvatarURL: "https://example.com/avatars/rogersop.png"},
		{Username: "lurker", Name: "Do Nothing", AvatarURL: "https://example.com/avatars/lurker.png"},
	}
	articles := []models.Article{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "coding", Author: "butter_bridge",
			Body: "I find this existence challenging", Votes: 100, CreatedAt: ts("2020-07-09T20:11:00Z")},
		{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "coding", Author: "icellusedkars",
			Body: "Call me Mitchell.", Votes: 0, CreatedAt: ts("2020-10-16T05:03:00Z")},
		{ArticleID: 3, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "football", Author: "rogersop",
			Body: "Bastet walks amongst us.", Votes: 30, CreatedAt: ts("2020-08-03T13:14:00Z")},
		{ArticleID: 4, Title: "Seven inspirational thought leaders from Manchester", Topic: "football", Author: "rogersop",
			Body: "Who are we kidding, there is only one.", Votes: 0, CreatedAt: ts("2020-10-18T01:00:00Z")},
		{ArticleID: 5, Title: "Seafood substitutions are increasing", Topic: "cooking", Author: "butter_bridge",
			Body: "Texture has gone. Taste has gone.", Votes: 7, CreatedAt: ts("2020-09-16T09:21:00Z")},
	}
	comments := []models.Comment{
		{CommentID: 1, ArticleID: 1, Author: "butter_bridge",
			Body: "Oh, I have got compassion running out of my nose, pal!", Votes: 16, CreatedAt: ts("2020-04-06T12:17:00Z")},
		{CommentID: 2, ArticleID: 1, Author: "icellusedkars",
			Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: ts("2020-10-31T03:03:00Z")},
		{CommentID: 3, ArticleID: 1, Author: "rogersop",
			Body: "Fruit pastilles", Votes: 0, CreatedAt: ts("2020-06-15T10:25:00Z")},
		{CommentID: 4, ArticleID: 3, Author: "lurker",
			Body: "git push origin master", Votes: 0, CreatedAt: ts("2020-06-20T07:24:00Z")},
	}

	if err := gdb.Create(&topics).Error; err != nil {
		t.Fatalf("seed topics: %v", err)
	}
	if err := gdb.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if err := gdb.Create(&articles).Error; err != nil {
		t.Fatalf("seed articles: %v", err)
	}
	if err := gdb.Create(&comments).Error; err != nil {
		t.Fatalf("seed comments: %v", err)
	}
}
