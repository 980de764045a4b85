package api

import (
	"errors"
	"net/http"

	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
)

// StatusRequest create/update production-status request
type StatusRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

// GetStatuses lists production statuses ordered by lifecycle position.
func (h *Handler) GetStatuses(c *gin.Context) {
	statuses, err := h.StatusService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao listar status", err)
		return
	}
	response.OK(c, statuses)
}

// GetStatusByID fetches one production status.
func (h *Handler) GetStatusByID(c *gin.Context) {
	status, err := h.StatusService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Status de Produção não encontrado", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao buscar status", err)
		return
	}
	response.OK(c, status)
}

// CreateStatus creates a production status.
func (h *Handler) CreateStatus(c *gin.Context) {
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.StatusService.Create(service.StatusInput{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao criar status", err)
		return
	}
	response.Created(c, status)
}

// UpdateStatus renames a production status or moves it in the lifecycle.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.StatusService.Update(c.Param("id"), service.StatusInput{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Status de Produção não encontrado", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao atualizar status", err)
		}
		return
	}
	response.OK(c, status)
}

// DeleteStatus removes a production status unless a batch transition used it.
func (h *Handler) DeleteStatus(c *gin.Context) {
	err := h.StatusService.Delete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Status de Produção não encontrado", nil)
		case errors.Is(err, service.ErrStatusInUse):
			respondError(c, http.StatusBadRequest, "Impossível apagar status usado em produção.", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao apagar status", err)
		}
		return
	}
	response.Message(c, "Status de Produção apagado")
}
