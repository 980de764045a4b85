package api

import (
	"errors"
	"net/http"

	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
)

// SupplierRequest create/update supplier request
type SupplierRequest struct {
	Name *string `json:"name"`
}

// GetSuppliers lists suppliers with their material counts.
func (h *Handler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.SupplierService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao listar fornecedores", err)
		return
	}
	response.OK(c, suppliers)
}

// GetSupplierByID fetches one supplier.
func (h *Handler) GetSupplierByID(c *gin.Context) {
	supplier, err := h.SupplierService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Fornecedor não encontrado", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao buscar fornecedor", err)
		return
	}
	response.OK(c, supplier)
}

// GetSupplierMaterials lists the materials belonging to a supplier.
func (h *Handler) GetSupplierMaterials(c *gin.Context) {
	materials, err := h.SupplierService.ListMaterials(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Fornecedor não encontrado", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao listar materiais do fornecedor", err)
		return
	}
	response.OK(c, materials)
}

// CreateSupplier creates a supplier.
func (h *Handler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Name == nil {
		response.FieldErrors(c, map[string]string{"name": "Nome é obrigatório"})
		return
	}

	supplier, err := h.SupplierService.Create(*req.Name)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao criar fornecedor", err)
		return
	}
	response.Created(c, supplier)
}

// UpdateSupplier renames a supplier.
func (h *Handler) UpdateSupplier(c *gin.Context) {
	var req SupplierRequest
	if !bindJSON(c, &req) {
		return
	}

	supplier, err := h.SupplierService.Update(c.Param("id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Fornecedor não encontrado", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao atualizar fornecedor", err)
		}
		return
	}
	response.OK(c, supplier)
}

// DeleteSupplier removes a supplier unless materials still reference it.
func (h *Handler) DeleteSupplier(c *gin.Context) {
	err := h.SupplierService.Delete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Fornecedor não encontrado", nil)
		case errors.Is(err, service.ErrSupplierHasMaterials):
			respondError(c, http.StatusBadRequest, "Impossível apagar fornecedor. Apague primeiro os materiais.", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao apagar fornecedor", err)
		}
		return
	}
	response.Message(c, "Fornecedor apagado")
}
