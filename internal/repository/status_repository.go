package repository

import (
	"errors"

	"github.com/brunowerneck/spiral-erp/internal/models"

	"gorm.io/gorm"
)

// StatusRepository production-status data access interface
type StatusRepository interface {
	List() ([]models.Status, error)
	GetByID(id string) (*models.Status, error)
	GetByName(name string) (*models.Status, error)
	Create(status *models.Status) error
	Update(status *models.Status) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountByOrder(order int, excludeID *string) (int64, error)
	CountReferences(statusID string) (int64, error)
}

// GormStatusRepository GORM implementation
type GormStatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates the status repository.
func NewStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// List returns all statuses in lifecycle order.
func (r *GormStatusRepository) List() ([]models.Status, error) {
	var statuses []models.Status
	if err := r.db.Order("sort_order ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// GetByID fetches one status, nil when missing.
func (r *GormStatusRepository) GetByID(id string) (*models.Status, error) {
	return r.getBy("id", id)
}

// GetByName fetches one status by its (upper-cased) name, nil when missing.
func (r *GormStatusRepository) GetByName(name string) (*models.Status, error) {
	return r.getBy("name", name)
}

func (r *GormStatusRepository) getBy(column, value string) (*models.Status, error) {
	var status models.Status
	if err := r.db.Where(column+" = ?", value).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}

// Create inserts a status.
func (r *GormStatusRepository) Create(status *models.Status) error {
	return r.db.Create(status).Error
}

// Update saves a status.
func (r *GormStatusRepository) Update(status *models.Status) error {
	return r.db.Save(status).Error
}

// Delete removes a status.
func (r *GormStatusRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Status{}).Error
}

// CountByName counts statuses with the given name, optionally excluding one ID.
func (r *GormStatusRepository) CountByName(name string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Status{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByOrder counts statuses with the given lifecycle order, optionally
// excluding one ID.
func (r *GormStatusRepository) CountByOrder(order int, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Status{}).Where("sort_order = ?", order)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountReferences counts batch history entries pointing at a status.
func (r *GormStatusRepository) CountReferences(statusID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.BatchStatus{}).Where("status_id = ?", statusID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
