package service

import (
	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/validation"

	"github.com/shopspring/decimal"
)

// MaterialService material business service
type MaterialService struct {
	repo      repository.MaterialRepository
	suppliers repository.SupplierRepository
	units     repository.UnitRepository
}

// NewMaterialService creates the material service.
func NewMaterialService(
	repo repository.MaterialRepository,
	suppliers repository.SupplierRepository,
	units repository.UnitRepository,
) *MaterialService {
	return &MaterialService{repo: repo, suppliers: suppliers, units: units}
}

// MaterialCreateInput create material input
type MaterialCreateInput struct {
	Name       string
	SupplierID string
	UnitID     string
	UnitValue  decimal.Decimal
}

// MaterialUpdateInput update material input; nil fields stay untouched.
type MaterialUpdateInput struct {
	Name       *string
	SupplierID *string
	UnitID     *string
	UnitValue  *decimal.Decimal
}

// List returns all materials.
func (s *MaterialService) List() ([]models.Material, error) {
	return s.repo.List()
}

// GetByID returns one material.
func (s *MaterialService) GetByID(id string) (*models.Material, error) {
	material, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, ErrNotFound
	}
	return material, nil
}

// Create validates and inserts a material. The name must be unique among the
// supplier's materials; the check runs against an in-memory snapshot of the
// existing names.
func (s *MaterialService) Create(input MaterialCreateInput) (*models.Material, error) {
	fields := FieldErrors{}
	if err := validation.Name(input.Name); err != nil {
		fields["name"] = err.Error()
	}
	if err := validation.PositiveUnitValue(input.UnitValue); err != nil {
		fields["unit_value"] = err.Error()
	}

	supplier, err := s.suppliers.GetByID(input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		fields["supplier"] = "Fornecedor não encontrado"
	}
	unit, err := s.units.GetByID(input.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		fields["unit"] = "Unidade não encontrada"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	existing, err := s.repo.NamesBySupplier(supplier.ID, nil)
	if err != nil {
		return nil, err
	}
	if err := validation.MaterialNameAvailable(input.Name, supplier.Name, existing); err != nil {
		return nil, FieldErrors{"name": err.Error()}
	}

	material := models.Material{
		Name:       input.Name,
		UnitValue:  models.NewMoneyFromDecimal(input.UnitValue),
		SupplierID: supplier.ID,
		UnitID:     unit.ID,
	}
	if err := s.repo.Create(&material); err != nil {
		return nil, err
	}
	return s.GetByID(material.ID)
}

// Update applies the provided fields to a material, re-checking the
// per-supplier name uniqueness whenever the name or the supplier changes.
func (s *MaterialService) Update(id string, input MaterialUpdateInput) (*models.Material, error) {
	material, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, ErrNotFound
	}

	name := material.Name
	if input.Name != nil {
		if err := validation.Name(*input.Name); err != nil {
			return nil, FieldErrors{"name": err.Error()}
		}
		name = *input.Name
	}

	supplier := &material.Supplier
	if input.SupplierID != nil && *input.SupplierID != material.SupplierID {
		supplier, err = s.suppliers.GetByID(*input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, FieldErrors{"supplier": "Fornecedor não encontrado"}
		}
	}

	if name != material.Name || supplier.ID != material.SupplierID {
		existing, err := s.repo.NamesBySupplier(supplier.ID, &id)
		if err != nil {
			return nil, err
		}
		if err := validation.MaterialNameAvailable(name, supplier.Name, existing); err != nil {
			return nil, FieldErrors{"name": err.Error()}
		}
	}

	if input.UnitID != nil && *input.UnitID != material.UnitID {
		unit, err := s.units.GetByID(*input.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, FieldErrors{"unit": "Unidade não encontrada"}
		}
		material.UnitID = unit.ID
	}

	if input.UnitValue != nil {
		if err := validation.PositiveUnitValue(*input.UnitValue); err != nil {
			return nil, FieldErrors{"unit_value": err.Error()}
		}
		material.UnitValue = models.NewMoneyFromDecimal(*input.UnitValue)
	}

	material.Name = name
	material.SupplierID = supplier.ID
	if err := s.repo.Update(material); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a material, blocked while batches or products reference it.
func (s *MaterialService) Delete(id string) error {
	material, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return ErrNotFound
	}
	count, err := s.repo.CountReferences(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMaterialInUse
	}
	return s.repo.Delete(id)
}
