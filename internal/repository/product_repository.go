package repository

import (
	"errors"

	"github.com/brunowerneck/spiral-erp/internal/models"

	"gorm.io/gorm"
)

// ProductRepository product data access interface
type ProductRepository interface {
	List() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product, materials *[]models.Material) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountBatches(productID string) (int64, error)
}

// GormProductRepository GORM implementation
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List returns all products ordered by name, bill-of-materials loaded.
func (r *GormProductRepository) List() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Materials.Supplier").Preload("Materials.Unit").
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches one product with its bill-of-materials, nil when missing.
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Materials.Supplier").Preload("Materials.Unit").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a product together with its bill-of-materials associations.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves the product's scalar columns and, when materials is non-nil,
// replaces the bill-of-materials set in the same transaction. Any failure
// rolls the whole update back.
func (r *GormProductRepository) Update(product *models.Product, materials *[]models.Material) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Materials").Save(product).Error; err != nil {
			return err
		}
		if materials == nil {
			return nil
		}
		if err := tx.Model(product).Association("Materials").Replace(*materials); err != nil {
			return err
		}
		product.Materials = *materials
		return nil
	})
}

// Delete removes a product and its bill-of-materials associations.
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_materials WHERE product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Product{}).Error
	})
}

// CountByName counts products with the given name, optionally excluding one ID.
func (r *GormProductRepository) CountByName(name string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBatches counts batches producing this product.
func (r *GormProductRepository) CountBatches(productID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Batch{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
