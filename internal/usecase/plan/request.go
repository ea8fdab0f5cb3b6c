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

// ======================================================
// INPUT
// ======================================================

type RequestPlanInput struct {
	BarbershopID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	PlanType         string
	SelectedSchedule string

	// Campos usados apenas quando PlanType == custom
	UnlimitedCuts   bool
	UnlimitedBeard  bool
	EyebrowIncluded bool
	CutQuota        int
	AllowedDays     []int
	Priority        string
	ProductDiscount int
	FixedSchedule   bool
}

// ======================================================
// USE CASE
// ======================================================

type RequestPlan struct {
	repo     domain.Repository
	apptRepo apptDomain.Repository
	catalog  *domain.Catalog
	audit    *audit.Dispatcher
}

func NewRequestPlan(
	repo domain.Repository,
	apptRepo apptDomain.Repository,
	catalog *domain.Catalog,
	audit *audit.Dispatcher,
) *RequestPlan {
	return &RequestPlan{
		repo:     repo,
		apptRepo: apptRepo,
		catalog:  catalog,
		audit:    audit,
	}
}

// Execute registra o pedido de adesão (nasce pendente; o barbeiro
// aprova ou rejeita). Plano fixo herda os benefícios do catálogo;
// custom leva os benefícios escolhidos na adesão.
func (uc *RequestPlan) Execute(
	ctx context.Context,
	in RequestPlanInput,
) (*models.Plan, error) {

	shop, err := uc.apptRepo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}

	client, err := uc.apptRepo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	p := &models.Plan{
		BarbershopID:     in.BarbershopID,
		ClientID:         client.ID,
		PlanType:         in.PlanType,
		Status:           domain.StatusPending,
		SelectedSchedule: in.SelectedSchedule,
		RequestedAt:      now,
	}

	switch {
	case uc.catalog.IsFixedType(in.PlanType):
		if err := uc.catalog.Apply(p); err != nil {
			return nil, err
		}

	case in.PlanType == domain.TypeCustom:
		p.UnlimitedCuts = in.UnlimitedCuts
		p.UnlimitedBeard = in.UnlimitedBeard
		p.EyebrowIncluded = in.EyebrowIncluded
		p.CutQuota = in.CutQuota
		p.AllowedDays = domain.FormatDays(in.AllowedDays)
		p.Priority = in.Priority
		p.ProductDiscount = in.ProductDiscount
		p.FixedSchedule = in.FixedSchedule

		if err := domain.ValidateCustom(p); err != nil {
			return nil, err
		}

	default:
		return nil, httperr.ErrValidation("unknown_plan_type")
	}

	if err := uc.repo.CreatePlan(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       "plan_requested",
		Entity:       "plan",
		EntityID:     &p.ID,
		Metadata:     map[string]any{"plan_type": p.PlanType},
	})

	return p, nil
}
