package store

import (
	"scuttlebutt/internal/models"
)

func (s *Store) Topics() ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	if err := s.db.Order("slug ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
