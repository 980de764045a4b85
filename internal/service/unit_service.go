package service

import (
	"github.com/brunowerneck/spiral-erp/internal/constants"
	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/validation"
)

// UnitService unit-of-measure business service
type UnitService struct {
	repo repository.UnitRepository
}

// NewUnitService creates the unit service.
func NewUnitService(repo repository.UnitRepository) *UnitService {
	return &UnitService{repo: repo}
}

// UnitInput create/update unit input
type UnitInput struct {
	Name         *string
	Abbreviation *string
}

// UnitPage one page of units plus paging metadata.
type UnitPage struct {
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Pages   int64         `json:"pages"`
	Units   []models.Unit `json:"units"`
}

// List returns all units.
func (s *UnitService) List() ([]models.Unit, error) {
	return s.repo.List()
}

// Page returns one page of units.
func (s *UnitService) Page(page, perPage int) (*UnitPage, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if perPage <= 0 {
		perPage = constants.DefaultPerPage
	}
	if perPage > constants.MaxPerPage {
		perPage = constants.MaxPerPage
	}
	units, total, err := s.repo.Page(page, perPage)
	if err != nil {
		return nil, err
	}
	pages := (total + int64(perPage) - 1) / int64(perPage)
	return &UnitPage{
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
		Units:   units,
	}, nil
}

// GetByID returns one unit.
func (s *UnitService) GetByID(id string) (*models.Unit, error) {
	unit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrNotFound
	}
	return unit, nil
}

// Create validates and inserts a unit.
func (s *UnitService) Create(name, abbreviation string) (*models.Unit, error) {
	fields := FieldErrors{}
	if err := validation.Name(name); err != nil {
		fields["name"] = err.Error()
	}
	if err := validation.Abbreviation(abbreviation); err != nil {
		fields["abbreviation"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, fields
	}
	if err := s.checkUnique(name, abbreviation, nil); err != nil {
		return nil, err
	}

	unit := models.Unit{Name: name, Abbreviation: abbreviation}
	if err := s.repo.Create(&unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

// Update applies the provided fields to a unit.
func (s *UnitService) Update(id string, input UnitInput) (*models.Unit, error) {
	unit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrNotFound
	}

	name := unit.Name
	abbreviation := unit.Abbreviation
	if input.Name != nil {
		name = *input.Name
	}
	if input.Abbreviation != nil {
		abbreviation = *input.Abbreviation
	}

	fields := FieldErrors{}
	if err := validation.Name(name); err != nil {
		fields["name"] = err.Error()
	}
	if err := validation.Abbreviation(abbreviation); err != nil {
		fields["abbreviation"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, fields
	}
	if err := s.checkUnique(name, abbreviation, &id); err != nil {
		return nil, err
	}

	unit.Name = name
	unit.Abbreviation = abbreviation
	if err := s.repo.Update(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// Delete removes a unit, blocked while materials or batches reference it.
func (s *UnitService) Delete(id string) error {
	unit, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return ErrNotFound
	}
	count, err := s.repo.CountReferences(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUnitInUse
	}
	return s.repo.Delete(id)
}

func (s *UnitService) checkUnique(name, abbreviation string, excludeID *string) error {
	fields := FieldErrors{}
	count, err := s.repo.CountByName(name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		fields["name"] = "Nome já existe"
	}
	count, err = s.repo.CountByAbbreviation(abbreviation, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		fields["abbreviation"] = "Abreviatura já existe"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}
