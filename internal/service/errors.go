package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/brunowerneck/spiral-erp/internal/models"
)

// Shared sentinel errors returned by the services. Handlers translate them
// into the user-facing Portuguese messages.
var (
	ErrNotFound             = errors.New("record not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrUnitNotFound         = errors.New("unit not found")
	ErrMaterialNotFound     = errors.New("material not found")
	ErrStatusNotFound       = errors.New("status not found")
	ErrCreatedStatusMissing = errors.New("created production status missing")

	ErrSupplierHasMaterials = errors.New("supplier still has materials")
	ErrMaterialInUse        = errors.New("material referenced by a batch or product")
	ErrProductInUse         = errors.New("product referenced by a batch")
	ErrUnitInUse            = errors.New("unit referenced by a material or batch")
	ErrStatusInUse          = errors.New("status referenced by a batch history")
)

// FieldErrors carries a per-field validation message map, rendered as the 400
// response body.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// BatchNotDeletableError rejects deleting a batch whose current status is
// neither "created" nor "cancelled". The message names the current status.
type BatchNotDeletableError struct {
	Status models.Status
}

func (e *BatchNotDeletableError) Error() string {
	return fmt.Sprintf("Impossível remover produção com status %s. "+
		"Só é possível apagar produções ainda não iniciadas ou canceladas.", e.Status.Name)
}
