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

type ApprovePlan struct {
	repo     domain.Repository
	apptRepo apptDomain.Repository
	audit    *audit.Dispatcher
}

func NewApprovePlan(
	repo domain.Repository,
	apptRepo apptDomain.Repository,
	audit *audit.Dispatcher,
) *ApprovePlan {
	return &ApprovePlan{
		repo:     repo,
		apptRepo: apptRepo,
		audit:    audit,
	}
}

// Execute aprova o pedido. No máximo um plano aprovado por cliente:
// se já houver outro, o pedido não passa.
func (uc *ApprovePlan) Execute(
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

	already, err := uc.repo.HasApprovedPlan(ctx, barbershopID, p.ClientID, p.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, httperr.ErrPolicy("client_already_has_plan")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Approve(p, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "plan_approved",
		Entity:       "plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
