package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/brunowerneck/spiral-erp/internal/http/handlers/shared"
	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, msg string, err error) {
	shared.RespondError(c, status, msg, err)
}

// bindJSON decodes the request body, translating an empty body into the
// generic "Dados vazios" error.
func bindJSON(c *gin.Context, target interface{}) bool {
	err := c.ShouldBindJSON(target)
	if err == nil {
		return true
	}
	if errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "Dados vazios", nil)
		return false
	}
	respondError(c, http.StatusBadRequest, "Requisição inválida", err)
	return false
}

// respondFieldErrors writes the per-field map of a validation failure and
// reports whether err was one.
func respondFieldErrors(c *gin.Context, err error) bool {
	var fields service.FieldErrors
	if errors.As(err, &fields) {
		response.FieldErrors(c, fields)
		return true
	}
	return false
}
