package api

import (
	"errors"
	"net/http"

	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MaterialRef nested reference carrying only an id
type MaterialRef struct {
	ID string `json:"id"`
}

// MaterialRequest create/update material request
type MaterialRequest struct {
	Name      *string          `json:"name"`
	UnitValue *decimal.Decimal `json:"unit_value"`
	Supplier  *MaterialRef     `json:"supplier"`
	Unit      *MaterialRef     `json:"unit"`
}

// GetMaterials lists all materials with supplier and unit loaded.
func (h *Handler) GetMaterials(c *gin.Context) {
	materials, err := h.MaterialService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao listar materiais", err)
		return
	}
	response.OK(c, materials)
}

// GetMaterialByID fetches one material.
func (h *Handler) GetMaterialByID(c *gin.Context) {
	material, err := h.MaterialService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Material não encontrado", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao buscar material", err)
		return
	}
	response.OK(c, material)
}

// CreateMaterial creates a material.
func (h *Handler) CreateMaterial(c *gin.Context) {
	var req MaterialRequest
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]string{}
	if req.Name == nil {
		fields["name"] = "Nome é obrigatório"
	}
	if req.UnitValue == nil {
		fields["unit_value"] = "Valor unitário é obrigatório"
	}
	if req.Supplier == nil || req.Supplier.ID == "" {
		fields["supplier"] = "Fornecedor é obrigatório"
	}
	if req.Unit == nil || req.Unit.ID == "" {
		fields["unit"] = "Unidade é obrigatória"
	}
	if len(fields) > 0 {
		response.FieldErrors(c, fields)
		return
	}

	material, err := h.MaterialService.Create(service.MaterialCreateInput{
		Name:       *req.Name,
		SupplierID: req.Supplier.ID,
		UnitID:     req.Unit.ID,
		UnitValue:  *req.UnitValue,
	})
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao criar material", err)
		return
	}
	response.Created(c, material)
}

// UpdateMaterial changes a material; absent fields stay untouched.
func (h *Handler) UpdateMaterial(c *gin.Context) {
	var req MaterialRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.MaterialUpdateInput{
		Name:      req.Name,
		UnitValue: req.UnitValue,
	}
	if req.Supplier != nil {
		input.SupplierID = &req.Supplier.ID
	}
	if req.Unit != nil {
		input.UnitID = &req.Unit.ID
	}

	material, err := h.MaterialService.Update(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Material não encontrado", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao atualizar material", err)
		}
		return
	}
	response.OK(c, material)
}

// DeleteMaterial removes a material unless a batch or product references it.
func (h *Handler) DeleteMaterial(c *gin.Context) {
	err := h.MaterialService.Delete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Material não encontrado", nil)
		case errors.Is(err, service.ErrMaterialInUse):
			respondError(c, http.StatusBadRequest, "Impossível apagar material usado em Produção.", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao apagar material", err)
		}
		return
	}
	response.Message(c, "Material apagado")
}
