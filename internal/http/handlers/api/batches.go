package api

import (
	"errors"
	"net/http"

	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BatchMaterialLine material line item on batch creation
type BatchMaterialLine struct {
	ID        string          `json:"id"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Amount    decimal.Decimal `json:"amount"`
}

// BatchCreateRequest create batch request
type BatchCreateRequest struct {
	ProductID    string              `json:"product_id"`
	OutputUnitID string              `json:"output_unit_id"`
	Output       decimal.Decimal     `json:"output"`
	Materials    []BatchMaterialLine `json:"materials"`
}

// BatchUpdateMaterial appended material line item; the priced material is
// nested so the captured unit value travels with its id.
type BatchUpdateMaterial struct {
	Material struct {
		ID        string          `json:"id"`
		UnitValue decimal.Decimal `json:"unit_value"`
	} `json:"material"`
	Amount decimal.Decimal `json:"amount"`
}

// BatchUpdateStatus mandatory status transition on update
type BatchUpdateStatus struct {
	Status struct {
		ID string `json:"id"`
	} `json:"status"`
	Notes string `json:"notes"`
}

// BatchUpdateRequest update batch request
type BatchUpdateRequest struct {
	Materials []BatchUpdateMaterial `json:"materials"`
	Status    *BatchUpdateStatus    `json:"status"`
	Output    *decimal.Decimal      `json:"output"`
}

// GetBatches lists production batches oldest first.
func (h *Handler) GetBatches(c *gin.Context) {
	batches, err := h.BatchService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao listar produções", err)
		return
	}
	response.OK(c, batches)
}

// GetBatchByID fetches one production batch.
func (h *Handler) GetBatchByID(c *gin.Context) {
	batch, err := h.BatchService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Produção não encontrada", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao buscar produção", err)
		return
	}
	response.OK(c, batch)
}

// CreateBatch starts a production batch on the "CRIADO" status.
func (h *Handler) CreateBatch(c *gin.Context) {
	var req BatchCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.BatchCreateInput{
		ProductID:    req.ProductID,
		OutputUnitID: req.OutputUnitID,
		Output:       req.Output,
	}
	for _, line := range req.Materials {
		input.Materials = append(input.Materials, service.BatchMaterialInput{
			MaterialID: line.ID,
			UnitValue:  line.UnitValue,
			Amount:     line.Amount,
		})
	}

	batch, err := h.BatchService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, http.StatusNotFound, "Produto não encontrado", nil)
		case errors.Is(err, service.ErrUnitNotFound):
			respondError(c, http.StatusNotFound, "Unidade de rendimento não encontrada", nil)
		case errors.Is(err, service.ErrCreatedStatusMissing):
			respondError(c, http.StatusNotFound, "Status de Produção CRIADO não foi encontrado", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao criar produção", err)
		}
		return
	}
	response.Created(c, batch)
}

// UpdateBatch appends material consumption and records a status transition;
// the unit cost is recomputed against the effective output.
func (h *Handler) UpdateBatch(c *gin.Context) {
	var req BatchUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.BatchUpdateInput{Output: req.Output}
	if req.Status != nil {
		input.StatusID = req.Status.Status.ID
		input.StatusNotes = req.Status.Notes
	}
	for _, line := range req.Materials {
		input.Materials = append(input.Materials, service.BatchMaterialInput{
			MaterialID: line.Material.ID,
			UnitValue:  line.Material.UnitValue,
			Amount:     line.Amount,
		})
	}

	batch, err := h.BatchService.Update(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Produção não encontrada", nil)
		case errors.Is(err, service.ErrStatusNotFound):
			respondError(c, http.StatusNotFound, "Status de Produção não encontrado", nil)
		case errors.Is(err, models.ErrZeroOutput):
			respondError(c, http.StatusBadRequest, "Rendimento deve ser maior que zero.", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao atualizar produção", err)
		}
		return
	}
	response.OK(c, batch)
}

// DeleteBatch removes a batch still on its initial or cancelled status.
func (h *Handler) DeleteBatch(c *gin.Context) {
	err := h.BatchService.Delete(c.Param("id"))
	if err != nil {
		var notDeletable *service.BatchNotDeletableError
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Produção não encontrada", nil)
		case errors.As(err, &notDeletable):
			respondError(c, http.StatusBadRequest, notDeletable.Error(), nil)
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao remover produção", err)
		}
		return
	}
	response.Message(c, "Produção removida")
}
