package service

import (
	"fmt"

	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/validation"
)

// ProductService product business service
type ProductService struct {
	repo      repository.ProductRepository
	materials repository.MaterialRepository
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository, materials repository.MaterialRepository) *ProductService {
	return &ProductService{repo: repo, materials: materials}
}

// ProductCreateInput create product input
type ProductCreateInput struct {
	Name             string
	ShortDescription string
	LongDescription  string
	MaterialIDs      []string
}

// ProductUpdateInput update product input; nil fields stay untouched.
type ProductUpdateInput struct {
	Name             *string
	ShortDescription *string
	LongDescription  *string
	MaterialIDs      *[]string
}

// List returns all products.
func (s *ProductService) List() ([]models.Product, error) {
	return s.repo.List()
}

// GetByID returns one product.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create validates and inserts a product with its bill-of-materials.
func (s *ProductService) Create(input ProductCreateInput) (*models.Product, error) {
	if err := s.checkName(input.Name, nil); err != nil {
		return nil, err
	}
	materials, err := s.resolveMaterials(input.MaterialIDs)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		Name:             input.Name,
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		Materials:        materials,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return s.GetByID(product.ID)
}

// Update applies the provided fields, replacing the bill-of-materials when a
// materials list is given.
func (s *ProductService) Update(id string, input ProductUpdateInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	// Resolve everything before touching storage so a bad reference cannot
	// leave a half-applied update behind.
	var materials *[]models.Material
	if input.MaterialIDs != nil {
		resolved, err := s.resolveMaterials(*input.MaterialIDs)
		if err != nil {
			return nil, err
		}
		materials = &resolved
	}

	if input.Name != nil && *input.Name != product.Name {
		if err := s.checkName(*input.Name, &id); err != nil {
			return nil, err
		}
		product.Name = *input.Name
	}
	if input.ShortDescription != nil {
		product.ShortDescription = *input.ShortDescription
	}
	if input.LongDescription != nil {
		product.LongDescription = *input.LongDescription
	}
	if err := s.repo.Update(product, materials); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a product, blocked while batches reference it.
func (s *ProductService) Delete(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	count, err := s.repo.CountBatches(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductInUse
	}
	return s.repo.Delete(id)
}

func (s *ProductService) checkName(name string, excludeID *string) error {
	if err := validation.Name(name); err != nil {
		return FieldErrors{"name": err.Error()}
	}
	count, err := s.repo.CountByName(name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return FieldErrors{"name": fmt.Sprintf("O produto %s já existe em nossos registros", name)}
	}
	return nil
}

func (s *ProductService) resolveMaterials(ids []string) ([]models.Material, error) {
	materials := make([]models.Material, 0, len(ids))
	for _, id := range ids {
		material, err := s.materials.GetByID(id)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, ErrMaterialNotFound
		}
		materials = append(materials, *material)
	}
	return materials, nil
}
