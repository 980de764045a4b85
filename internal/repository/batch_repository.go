package repository

import (
	"errors"

	"github.com/brunowerneck/spiral-erp/internal/models"

	"gorm.io/gorm"
)

// BatchRepository production-batch data access interface
type BatchRepository interface {
	List() ([]models.Batch, error)
	GetByID(id string) (*models.Batch, error)
	Create(batch *models.Batch) error
	Update(batch *models.Batch) error
	Delete(batch *models.Batch) error
}

// GormBatchRepository GORM implementation
type GormBatchRepository struct {
	db *gorm.DB
}

// NewBatchRepository creates the batch repository.
func NewBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

func (r *GormBatchRepository) withChildren(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Product").
		Preload("OutputUnit").
		Preload("Materials.Material.Supplier").
		Preload("Materials.Material.Unit").
		Preload("Statuses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Statuses.Status")
}

// List returns all batches ordered by creation time ascending.
func (r *GormBatchRepository) List() ([]models.Batch, error) {
	var batches []models.Batch
	if err := r.withChildren(r.db).Order("created_at ASC").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// GetByID fetches one batch with all children loaded, nil when missing.
func (r *GormBatchRepository) GetByID(id string) (*models.Batch, error) {
	var batch models.Batch
	if err := r.withChildren(r.db).Where("id = ?", id).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// Create inserts a batch together with its line items and status history in
// one transaction.
func (r *GormBatchRepository) Create(batch *models.Batch) error {
	return r.db.Create(batch).Error
}

// Update saves the batch's scalar columns and inserts any newly appended
// children (empty ID) in one transaction. Existing children are never
// modified; the history is append-only and line items are immutable.
func (r *GormBatchRepository) Update(batch *models.Batch) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range batch.Materials {
			if batch.Materials[i].ID != "" {
				continue
			}
			batch.Materials[i].BatchID = batch.ID
			if err := tx.Create(&batch.Materials[i]).Error; err != nil {
				return err
			}
		}
		for i := range batch.Statuses {
			if batch.Statuses[i].ID != "" {
				continue
			}
			batch.Statuses[i].BatchID = batch.ID
			if err := tx.Create(&batch.Statuses[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(batch).Updates(map[string]interface{}{
			"output":     batch.Output,
			"unit_value": batch.UnitValue,
		}).Error
	})
}

// Delete removes a batch and cascades to its line items and status history.
func (r *GormBatchRepository) Delete(batch *models.Batch) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_id = ?", batch.ID).Delete(&models.BatchMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("batch_id = ?", batch.ID).Delete(&models.BatchStatus{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", batch.ID).Delete(&models.Batch{}).Error
	})
}
