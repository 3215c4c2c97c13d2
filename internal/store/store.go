// Package store maps the API's resources onto the relational schema. All
// request-varying values reach the database as bound parameters; the only
// strings ever spliced into query text come from fixed allow-lists.
package store

import (
	"scuttlebutt/internal/apperr"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Entity selects the table/column pair the existence gate checks. Label is
// what error messages call the missing thing. Instances are package-fixed;
// request input never picks the table or column.
type Entity struct {
	Table  string
	Column string
	Label  string
}

var (
	EntityUser  = Entity{Table: "users", Column: "username", Label: "Username"}
	EntityTopic = Entity{Table: "topics", Column: "slug", Label: "topic"}
)

// Exists confirms that value names a currently stored row of the given entity
// class. The check and any dependent write are separate statements, so a
// concurrent delete can land between them; the fallout is a store error on
// the write rather than the tidy not-found below.
func (s *Store) Exists(value string, e Entity) error {
	var n int64
	if err := s.db.Table(e.Table).Where(e.Column+" = ?", value).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound(e.Label + " not found")
	}
	return nil
}
