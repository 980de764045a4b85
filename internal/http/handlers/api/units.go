package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
)

// UnitRequest create/update unit request
type UnitRequest struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

// GetUnits lists all measurement units.
func (h *Handler) GetUnits(c *gin.Context) {
	units, err := h.UnitService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao listar unidades", err)
		return
	}
	response.OK(c, units)
}

// GetUnitsPaginated lists units one page at a time.
func (h *Handler) GetUnitsPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "5"))

	result, err := h.UnitService.Page(page, perPage)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao listar unidades", err)
		return
	}
	response.OK(c, result)
}

// GetUnitByID fetches one unit.
func (h *Handler) GetUnitByID(c *gin.Context) {
	unit, err := h.UnitService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Unidade não encontrada", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao buscar unidade", err)
		return
	}
	response.OK(c, unit)
}

// CreateUnit creates a measurement unit.
func (h *Handler) CreateUnit(c *gin.Context) {
	var req UnitRequest
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]string{}
	if req.Name == nil {
		fields["name"] = "Nome é obrigatório"
	}
	if req.Abbreviation == nil {
		fields["abbreviation"] = "Abreviatura é obrigatória"
	}
	if len(fields) > 0 {
		response.FieldErrors(c, fields)
		return
	}

	unit, err := h.UnitService.Create(*req.Name, *req.Abbreviation)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao criar unidade", err)
		return
	}
	response.Created(c, unit)
}

// UpdateUnit renames a unit or changes its abbreviation.
func (h *Handler) UpdateUnit(c *gin.Context) {
	var req UnitRequest
	if !bindJSON(c, &req) {
		return
	}

	unit, err := h.UnitService.Update(c.Param("id"), service.UnitInput{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Unidade não encontrada", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao atualizar unidade", err)
		}
		return
	}
	response.OK(c, unit)
}

// DeleteUnit removes a unit unless a material or batch still references it.
func (h *Handler) DeleteUnit(c *gin.Context) {
	err := h.UnitService.Delete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Unidade não encontrada", nil)
		case errors.Is(err, service.ErrUnitInUse):
			respondError(c, http.StatusBadRequest, "Impossível apagar unidade usada em material, produto ou produção.", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao apagar unidade", err)
		}
		return
	}
	response.Message(c, "Unidade apagada")
}
