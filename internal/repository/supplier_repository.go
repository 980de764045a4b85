package repository

import (
	"errors"

	"github.com/brunowerneck/spiral-erp/internal/models"

	"gorm.io/gorm"
)

// SupplierRepository supplier data access interface
type SupplierRepository interface {
	List() ([]models.Supplier, error)
	GetByID(id string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountMaterials(supplierID string) (int64, error)
	MaterialCounts() (map[string]int64, error)
	ListMaterials(supplierID string) ([]models.Material, error)
}

// GormSupplierRepository GORM implementation
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates the supplier repository.
func NewSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// List returns all suppliers ordered by name.
func (r *GormSupplierRepository) List() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Order("name ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// GetByID fetches one supplier, nil when missing.
func (r *GormSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.Where("id = ?", id).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

// Create inserts a supplier.
func (r *GormSupplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

// Update saves a supplier.
func (r *GormSupplierRepository) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

// Delete removes a supplier.
func (r *GormSupplierRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Supplier{}).Error
}

// CountByName counts suppliers with the given name, optionally excluding one ID.
func (r *GormSupplierRepository) CountByName(name string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Supplier{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountMaterials counts materials registered under a supplier.
func (r *GormSupplierRepository) CountMaterials(supplierID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Material{}).Where("supplier_id = ?", supplierID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MaterialCounts groups material counts by supplier ID.
func (r *GormSupplierRepository) MaterialCounts() (map[string]int64, error) {
	type row struct {
		SupplierID string
		Total      int64
	}
	var rows []row
	err := r.db.Model(&models.Material{}).
		Select("supplier_id, count(*) as total").
		Group("supplier_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, item := range rows {
		counts[item.SupplierID] = item.Total
	}
	return counts, nil
}

// ListMaterials returns the materials belonging to a supplier, ordered by name.
func (r *GormSupplierRepository) ListMaterials(supplierID string) ([]models.Material, error) {
	var materials []models.Material
	err := r.db.Preload("Supplier").Preload("Unit").
		Where("supplier_id = ?", supplierID).
		Order("name ASC").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}
