package service

import (
	"fmt"

	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/validation"
)

// SupplierService supplier business service
type SupplierService struct {
	repo repository.SupplierRepository
}

// NewSupplierService creates the supplier service.
func NewSupplierService(repo repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// SupplierListItem decorates a supplier with its material count for listings.
type SupplierListItem struct {
	models.Supplier
	Materials int64 `json:"materials"`
}

// List returns all suppliers with their material counts.
func (s *SupplierService) List() ([]SupplierListItem, error) {
	suppliers, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.MaterialCounts()
	if err != nil {
		return nil, err
	}
	items := make([]SupplierListItem, 0, len(suppliers))
	for _, supplier := range suppliers {
		items = append(items, SupplierListItem{
			Supplier:  supplier,
			Materials: counts[supplier.ID],
		})
	}
	return items, nil
}

// GetByID returns one supplier.
func (s *SupplierService) GetByID(id string) (*models.Supplier, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrNotFound
	}
	return supplier, nil
}

// ListMaterials returns the materials registered under a supplier.
func (s *SupplierService) ListMaterials(id string) ([]models.Material, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrNotFound
	}
	return s.repo.ListMaterials(id)
}

// Create validates and inserts a supplier.
func (s *SupplierService) Create(name string) (*models.Supplier, error) {
	if err := s.checkName(name, nil); err != nil {
		return nil, err
	}
	supplier := models.Supplier{Name: name}
	if err := s.repo.Create(&supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Update renames a supplier.
func (s *SupplierService) Update(id string, name *string) (*models.Supplier, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrNotFound
	}
	if name != nil && supplier.Name != *name {
		if err := s.checkName(*name, &id); err != nil {
			return nil, err
		}
		supplier.Name = *name
		if err := s.repo.Update(supplier); err != nil {
			return nil, err
		}
	}
	return supplier, nil
}

// Delete removes a supplier, blocked while materials reference it.
func (s *SupplierService) Delete(id string) error {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return ErrNotFound
	}
	count, err := s.repo.CountMaterials(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSupplierHasMaterials
	}
	return s.repo.Delete(id)
}

func (s *SupplierService) checkName(name string, excludeID *string) error {
	if err := validation.Name(name); err != nil {
		return FieldErrors{"name": err.Error()}
	}
	count, err := s.repo.CountByName(name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return FieldErrors{"name": fmt.Sprintf("O fornecedor com nome %s já existe em nossos registros", name)}
	}
	return nil
}
