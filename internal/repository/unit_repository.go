package repository

import (
	"errors"

	"github.com/brunowerneck/spiral-erp/internal/models"

	"gorm.io/gorm"
)

// UnitRepository unit-of-measure data access interface
type UnitRepository interface {
	List() ([]models.Unit, error)
	Page(page, perPage int) ([]models.Unit, int64, error)
	GetByID(id string) (*models.Unit, error)
	Create(unit *models.Unit) error
	Update(unit *models.Unit) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountByAbbreviation(abbreviation string, excludeID *string) (int64, error)
	CountReferences(unitID string) (int64, error)
}

// GormUnitRepository GORM implementation
type GormUnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates the unit repository.
func NewUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// List returns all units ordered by name.
func (r *GormUnitRepository) List() ([]models.Unit, error) {
	var units []models.Unit
	if err := r.db.Order("name ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// Page returns one page of units ordered by name, plus the total row count.
func (r *GormUnitRepository) Page(page, perPage int) ([]models.Unit, int64, error) {
	var total int64
	if err := r.db.Model(&models.Unit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var units []models.Unit
	query := applyPagination(r.db.Order("name ASC"), page, perPage)
	if err := query.Find(&units).Error; err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

// GetByID fetches one unit, nil when missing.
func (r *GormUnitRepository) GetByID(id string) (*models.Unit, error) {
	var unit models.Unit
	if err := r.db.Where("id = ?", id).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

// Create inserts a unit.
func (r *GormUnitRepository) Create(unit *models.Unit) error {
	return r.db.Create(unit).Error
}

// Update saves a unit.
func (r *GormUnitRepository) Update(unit *models.Unit) error {
	return r.db.Save(unit).Error
}

// Delete removes a unit.
func (r *GormUnitRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Unit{}).Error
}

// CountByName counts units with the given name, optionally excluding one ID.
func (r *GormUnitRepository) CountByName(name string, excludeID *string) (int64, error) {
	return r.countBy("name", name, excludeID)
}

// CountByAbbreviation counts units with the given abbreviation, optionally
// excluding one ID.
func (r *GormUnitRepository) CountByAbbreviation(abbreviation string, excludeID *string) (int64, error) {
	return r.countBy("abbreviation", abbreviation, excludeID)
}

func (r *GormUnitRepository) countBy(column, value string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Unit{}).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountReferences counts materials and batches pointing at a unit.
func (r *GormUnitRepository) CountReferences(unitID string) (int64, error) {
	var materials int64
	if err := r.db.Model(&models.Material{}).Where("unit_id = ?", unitID).Count(&materials).Error; err != nil {
		return 0, err
	}
	var batches int64
	if err := r.db.Model(&models.Batch{}).Where("output_unit_id = ?", unitID).Count(&batches).Error; err != nil {
		return 0, err
	}
	return materials + batches, nil
}
