package plan

import (
	"time"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cada transição é terminal para o pedido: nova adesão cria outro Plan.

func Approve(p *models.Plan, now time.Time) error {
	if p.Status != StatusPending {
		return httperr.ErrPolicy("invalid_state")
	}

	p.Status = StatusApproved
	p.ApprovedAt = &now
	return nil
}

func Reject(p *models.Plan, now time.Time) error {
	if p.Status != StatusPending {
		return httperr.ErrPolicy("invalid_state")
	}

	p.Status = StatusRejected
	p.RejectedAt = &now
	return nil
}

func Deactivate(p *models.Plan, now time.Time) error {
	if p.Status != StatusApproved {
		return httperr.ErrPolicy("invalid_state")
	}

	p.Status = StatusDeactivated
	p.DeactivatedAt = &now
	return nil
}
