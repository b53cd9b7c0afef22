package team

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	FindByID(id uuid.UUID) (*Team, error)
	FindAll() ([]Team, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TeamRepository {
	return &repository{db: db}
}

func (r *repository) FindByID(id uuid.UUID) (*Team, error) {
	var t Team
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAll() ([]Team, error) {
	var teams []Team
	if err := r.db.Order("name").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
