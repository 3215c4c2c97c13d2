package store

import (
	"scuttlebutt/internal/apperr"
	"scuttlebutt/internal/models"
)

// DeleteComment removes a comment by id.
func (s *Store) DeleteComment(id int) error {
	res := s.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("comment does not exist")
	}
	return nil
}
