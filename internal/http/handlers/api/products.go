package api

import (
	"errors"
	"net/http"

	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest create/update product request. The recipe arrives as a list
// of material references, `{"materials": [{"id": ...}]}`.
type ProductRequest struct {
	Name             *string        `json:"name"`
	ShortDescription *string        `json:"short_description"`
	LongDescription  *string        `json:"long_description"`
	Materials        *[]MaterialRef `json:"materials"`
}

func (req ProductRequest) materialIDs() *[]string {
	if req.Materials == nil {
		return nil
	}
	ids := make([]string, 0, len(*req.Materials))
	for _, ref := range *req.Materials {
		ids = append(ids, ref.ID)
	}
	return &ids
}

// GetProducts lists all products with their recipe materials loaded.
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.ProductService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao listar produtos", err)
		return
	}
	response.OK(c, products)
}

// GetProductByID fetches one product.
func (h *Handler) GetProductByID(c *gin.Context) {
	product, err := h.ProductService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Produto não encontrado", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Erro ao buscar produto", err)
		return
	}
	response.OK(c, product)
}

// CreateProduct creates a product and links its recipe materials.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Name == nil {
		response.FieldErrors(c, map[string]string{"name": "Nome é obrigatório"})
		return
	}

	input := service.ProductCreateInput{Name: *req.Name}
	if req.ShortDescription != nil {
		input.ShortDescription = *req.ShortDescription
	}
	if req.LongDescription != nil {
		input.LongDescription = *req.LongDescription
	}
	if ids := req.materialIDs(); ids != nil {
		input.MaterialIDs = *ids
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMaterialNotFound):
			respondError(c, http.StatusNotFound, "Material não encontrado", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao criar produto", err)
		}
		return
	}
	response.Created(c, product)
}

// UpdateProduct changes a product; a materials list replaces the recipe.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.ProductService.Update(c.Param("id"), service.ProductUpdateInput{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		MaterialIDs:      req.materialIDs(),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Produto não encontrado", nil)
		case errors.Is(err, service.ErrMaterialNotFound):
			respondError(c, http.StatusNotFound, "Material não encontrado", nil)
		case respondFieldErrors(c, err):
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao atualizar produto", err)
		}
		return
	}
	response.OK(c, product)
}

// DeleteProduct removes a product unless a batch still references it.
func (h *Handler) DeleteProduct(c *gin.Context) {
	err := h.ProductService.Delete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Produto não encontrado", nil)
		case errors.Is(err, service.ErrProductInUse):
			respondError(c, http.StatusBadRequest, "Impossível apagar produto usado em Produção.", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Erro ao apagar produto", err)
		}
		return
	}
	response.Message(c, "Produto apagado")
}
