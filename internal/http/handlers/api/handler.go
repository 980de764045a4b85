// Package api holds the REST handlers of the batch-tracking API.
package api

import "github.com/brunowerneck/spiral-erp/internal/provider"

// Handler REST handler entry point
type Handler struct {
	*provider.Container
}

// New creates the API handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
