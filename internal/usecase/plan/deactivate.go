package plan

import (
	"context"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	apptDomain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/plan"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type DeactivatePlan struct {
	repo     domain.Repository
	apptRepo apptDomain.Repository
	audit    *audit.Dispatcher
}

func NewDeactivatePlan(
	repo domain.Repository,
	apptRepo apptDomain.Repository,
	audit *audit.Dispatcher,
) *DeactivatePlan {
	return &DeactivatePlan{
		repo:     repo,
		apptRepo: apptRepo,
		audit:    audit,
	}
}

func (uc *DeactivatePlan) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	planID uint,
) (*models.Plan, error) {

	shop, err := uc.apptRepo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}

	p, err := uc.repo.GetPlan(ctx, barbershopID, planID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("plan_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Deactivate(p, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "plan_deactivated",
		Entity:       "plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
