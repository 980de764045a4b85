package service

import (
	"github.com/brunowerneck/spiral-erp/internal/constants"
	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/validation"

	"github.com/shopspring/decimal"
)

// BatchService production-batch business service
type BatchService struct {
	repo     repository.BatchRepository
	products repository.ProductRepository
	units    repository.UnitRepository
	statuses repository.StatusRepository
	policy   TransitionPolicy
}

// NewBatchService creates the batch service. A nil policy means every status
// transition is allowed.
func NewBatchService(
	repo repository.BatchRepository,
	products repository.ProductRepository,
	units repository.UnitRepository,
	statuses repository.StatusRepository,
	policy TransitionPolicy,
) *BatchService {
	if policy == nil {
		policy = PermissiveTransitions{}
	}
	return &BatchService{
		repo:     repo,
		products: products,
		units:    units,
		statuses: statuses,
		policy:   policy,
	}
}

// BatchMaterialInput one captured material line item
type BatchMaterialInput struct {
	MaterialID string
	UnitValue  decimal.Decimal
	Amount     decimal.Decimal
}

// BatchCreateInput create batch input
type BatchCreateInput struct {
	ProductID    string
	OutputUnitID string
	Output       decimal.Decimal
	Materials    []BatchMaterialInput
}

// BatchUpdateInput update batch input. Materials are appended, never replaced;
// the status transition is mandatory.
type BatchUpdateInput struct {
	Materials   []BatchMaterialInput
	StatusID    string
	StatusNotes string
	Output      *decimal.Decimal
}

// List returns all batches ordered by creation time, decorated for
// serialization.
func (s *BatchService) List() ([]models.Batch, error) {
	batches, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	for i := range batches {
		batches[i].Decorate()
	}
	return batches, nil
}

// GetByID returns one decorated batch.
func (s *BatchService) GetByID(id string) (*models.Batch, error) {
	batch, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrNotFound
	}
	batch.Decorate()
	return batch, nil
}

// Create builds a batch: resolves the product and output unit, captures the
// material line items as value copies, computes the unit cost and appends the
// initial "CRIADO" transition. A missing "CRIADO" status is a configuration
// error that blocks creation.
func (s *BatchService) Create(input BatchCreateInput) (*models.Batch, error) {
	product, err := s.products.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	unit, err := s.units.GetByID(input.OutputUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}

	if err := validation.PositiveOutput(input.Output); err != nil {
		return nil, FieldErrors{"output": err.Error()}
	}

	created, err := s.statuses.GetByName(constants.StatusNameCreated)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrCreatedStatusMissing
	}

	batch := models.Batch{
		ProductID:    product.ID,
		OutputUnitID: unit.ID,
		Output:       models.NewQuantityFromDecimal(input.Output),
	}
	batch.Materials = buildLineItems(input.Materials)
	if err := batch.CalculateUnitValue(); err != nil {
		return nil, err
	}
	batch.Statuses = append(batch.Statuses, models.BatchStatus{
		StatusID: created.ID,
		Notes:    constants.BatchCreatedNotes,
	})

	if err := s.repo.Create(&batch); err != nil {
		return nil, err
	}
	return s.GetByID(batch.ID)
}

// Update appends material line items, recomputes the unit cost against the
// effective output and records the mandatory status transition.
func (s *BatchService) Update(id string, input BatchUpdateInput) (*models.Batch, error) {
	batch, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrNotFound
	}

	status, err := s.statuses.GetByID(input.StatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}
	var current *models.Status
	if latest := batch.LatestStatus(); latest != nil {
		current = &latest.Status
	}
	if err := s.policy.Allow(current, *status); err != nil {
		return nil, err
	}

	if input.Output != nil {
		if err := validation.PositiveOutput(*input.Output); err != nil {
			return nil, models.ErrZeroOutput
		}
		batch.Output = models.NewQuantityFromDecimal(*input.Output)
	}
	batch.Materials = append(batch.Materials, buildLineItems(input.Materials)...)
	if err := batch.CalculateUnitValue(); err != nil {
		return nil, err
	}
	batch.Statuses = append(batch.Statuses, models.BatchStatus{
		StatusID: status.ID,
		Notes:    input.StatusNotes,
	})

	if err := s.repo.Update(batch); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a batch and its children. Allowed only while the current
// status sits on the "created" or "cancelled" lifecycle order.
func (s *BatchService) Delete(id string) error {
	batch, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if batch == nil {
		return ErrNotFound
	}

	latest := batch.LatestStatus()
	if latest != nil {
		order := latest.Status.SortOrder
		if order != constants.StatusOrderCreated && order != constants.StatusOrderCancelled {
			return &BatchNotDeletableError{Status: latest.Status}
		}
	}
	return s.repo.Delete(batch)
}

// buildLineItems copies the captured amount and unit value into owned line
// items. The snapshot keeps historical batches priced as they were consumed.
func buildLineItems(inputs []BatchMaterialInput) []models.BatchMaterial {
	items := make([]models.BatchMaterial, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, models.BatchMaterial{
			MaterialID: input.MaterialID,
			UnitValue:  models.NewMoneyFromDecimal(input.UnitValue),
			Amount:     models.NewQuantityFromDecimal(input.Amount),
		})
	}
	return items
}
