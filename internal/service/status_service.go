package service

import (
	"fmt"

	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/validation"
)

// StatusService production-status business service
type StatusService struct {
	repo repository.StatusRepository
}

// NewStatusService creates the status service.
func NewStatusService(repo repository.StatusRepository) *StatusService {
	return &StatusService{repo: repo}
}

// StatusInput create/update status input; nil fields stay untouched on update.
type StatusInput struct {
	Name  *string
	Order *int
}

// List returns all statuses in lifecycle order.
func (s *StatusService) List() ([]models.Status, error) {
	return s.repo.List()
}

// GetByID returns one status.
func (s *StatusService) GetByID(id string) (*models.Status, error) {
	status, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrNotFound
	}
	return status, nil
}

// Create validates and inserts a status. The name is stored upper-cased.
func (s *StatusService) Create(input StatusInput) (*models.Status, error) {
	fields := FieldErrors{}
	if input.Name == nil {
		fields["name"] = "Status é obrigatório"
	}
	if input.Order == nil {
		fields["order"] = "Ordem é obrigatória"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	name, err := validation.StatusName(*input.Name)
	if err != nil {
		fields["name"] = err.Error()
	}
	if err := validation.StatusOrder(*input.Order); err != nil {
		fields["order"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, fields
	}
	if err := s.checkUnique(name, *input.Order, nil); err != nil {
		return nil, err
	}

	status := models.Status{Name: name, SortOrder: *input.Order}
	if err := s.repo.Create(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Update applies the provided fields to a status.
func (s *StatusService) Update(id string, input StatusInput) (*models.Status, error) {
	status, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrNotFound
	}

	name := status.Name
	order := status.SortOrder
	fields := FieldErrors{}
	if input.Name != nil {
		name, err = validation.StatusName(*input.Name)
		if err != nil {
			fields["name"] = err.Error()
		}
	}
	if input.Order != nil {
		order = *input.Order
		if err := validation.StatusOrder(order); err != nil {
			fields["order"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return nil, fields
	}
	if name == status.Name && order == status.SortOrder {
		return status, nil
	}
	if err := s.checkUnique(name, order, &id); err != nil {
		return nil, err
	}

	status.Name = name
	status.SortOrder = order
	if err := s.repo.Update(status); err != nil {
		return nil, err
	}
	return status, nil
}

// Delete removes a status, blocked while batch histories reference it.
func (s *StatusService) Delete(id string) error {
	status, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if status == nil {
		return ErrNotFound
	}
	count, err := s.repo.CountReferences(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStatusInUse
	}
	return s.repo.Delete(id)
}

func (s *StatusService) checkUnique(name string, order int, excludeID *string) error {
	fields := FieldErrors{}
	count, err := s.repo.CountByName(name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		fields["name"] = fmt.Sprintf("Status de Produção %s já existe", name)
	}
	count, err = s.repo.CountByOrder(order, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		fields["order"] = fmt.Sprintf("Ordem (%d) já existe", order)
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}
