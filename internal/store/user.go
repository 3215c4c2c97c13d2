package store

import (
	"scuttlebutt/internal/models"
)

func (s *Store) Users() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.db.Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
