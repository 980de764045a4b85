package service

import "github.com/brunowerneck/spiral-erp/internal/models"

// TransitionPolicy decides whether a batch may move from its current status to
// the next one. The production flow today allows every transition, including
// leaving "cancelled"; a strict state machine can be substituted here without
// touching the batch service.
type TransitionPolicy interface {
	Allow(current *models.Status, next models.Status) error
}

// PermissiveTransitions allows every transition.
type PermissiveTransitions struct{}

// Allow always succeeds.
func (PermissiveTransitions) Allow(current *models.Status, next models.Status) error {
	return nil
}
