package okr

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type OKRRepository interface {
	Create(o *OKR) error
	FindAll(criteria FilterCriteria) ([]*OKR, error)
	FindByID(id uuid.UUID) (*OKR, error)
	Update(o *OKR) error
	UpdateStatus(id uuid.UUID, status Status, overallProgress int) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) OKRRepository {
	return &repository{db: db}
}

func (r *repository) Create(o *OKR) error {
	return r.db.Create(o).Error
}

// FindAll pushes the status and priority criteria into the query. The
// assignedTo dimension needs the caller's identity and is applied by
// ApplyFilters after the fetch; running both over the result is harmless
// because the filter semantics are idempotent.
func (r *repository) FindAll(criteria FilterCriteria) ([]*OKR, error) {
	q := r.db.
		Preload("KeyResults", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("created_at DESC")

	if criteria.Status != "" {
		q = q.Where("status = ?", criteria.Status)
	}
	if criteria.Priority != "" {
		q = q.Where("priority = ?", criteria.Priority)
	}

	var okrs []*OKR
	if err := q.Find(&okrs).Error; err != nil {
		return nil, err
	}
	return okrs, nil
}

func (r *repository) FindByID(id uuid.UUID) (*OKR, error) {
	var o OKR
	err := r.db.
		Preload("KeyResults", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Update replaces the OKR row and its key results in one transaction. Key
// results are recreated rather than diffed; their ids are not stable across
// edits.
func (r *repository) Update(o *OKR) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("okr_id = ?", o.ID).Delete(&KeyResult{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(o).Error
	})
}

func (r *repository) UpdateStatus(id uuid.UUID, status Status, overallProgress int) error {
	result := r.db.Model(&OKR{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           status,
			"overall_progress": overallProgress,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&OKR{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
