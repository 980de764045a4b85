package repository

import (
	"errors"

	"github.com/brunowerneck/spiral-erp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaterialRepository material data access interface
type MaterialRepository interface {
	List() ([]models.Material, error)
	GetByID(id string) (*models.Material, error)
	Create(material *models.Material) error
	Update(material *models.Material) error
	Delete(id string) error
	NamesBySupplier(supplierID string, excludeID *string) ([]string, error)
	CountReferences(materialID string) (int64, error)
}

// GormMaterialRepository GORM implementation
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates the material repository.
func NewMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// List returns all materials ordered by name, with supplier and unit loaded.
func (r *GormMaterialRepository) List() ([]models.Material, error) {
	var materials []models.Material
	err := r.db.Preload("Supplier").Preload("Unit").
		Order("name ASC").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// GetByID fetches one material with supplier and unit, nil when missing.
func (r *GormMaterialRepository) GetByID(id string) (*models.Material, error) {
	var material models.Material
	err := r.db.Preload("Supplier").Preload("Unit").
		Where("id = ?", id).
		First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &material, nil
}

// Create inserts a material.
func (r *GormMaterialRepository) Create(material *models.Material) error {
	return r.db.Create(material).Error
}

// Update saves a material's own columns, never its associations.
func (r *GormMaterialRepository) Update(material *models.Material) error {
	return r.db.Omit(clause.Associations).Save(material).Error
}

// Delete removes a material.
func (r *GormMaterialRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Material{}).Error
}

// NamesBySupplier snapshots the material names registered under a supplier,
// optionally excluding one material. The per-supplier uniqueness rule runs
// against this snapshot in memory.
func (r *GormMaterialRepository) NamesBySupplier(supplierID string, excludeID *string) ([]string, error) {
	var names []string
	query := r.db.Model(&models.Material{}).Where("supplier_id = ?", supplierID)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// CountReferences counts batch line items and products pointing at a material.
func (r *GormMaterialRepository) CountReferences(materialID string) (int64, error) {
	var lineItems int64
	if err := r.db.Model(&models.BatchMaterial{}).Where("material_id = ?", materialID).Count(&lineItems).Error; err != nil {
		return 0, err
	}
	var products int64
	if err := r.db.Table("product_materials").Where("material_id = ?", materialID).Count(&products).Error; err != nil {
		return 0, err
	}
	return lineItems + products, nil
}
