package plan

import (
	"context"

	apptDomain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/plan"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type UsageOutput struct {
	Plan  *models.Plan `json:"plan"`
	Usage domain.Usage `json:"usage"`
}

type GetUsage struct {
	repo     domain.Repository
	apptRepo apptDomain.Repository
}

func NewGetUsage(
	repo domain.Repository,
	apptRepo apptDomain.Repository,
) *GetUsage {
	return &GetUsage{
		repo:     repo,
		apptRepo: apptRepo,
	}
}

// Execute calcula o uso do mês corrente para o cliente (pelo telefone).
// Sem plano aprovado o resultado é "não usável", nunca um plano padrão.
func (uc *GetUsage) Execute(
	ctx context.Context,
	barbershopID uint,
	phone string,
) (*UsageOutput, error) {

	shop, err := uc.apptRepo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}

	client, err := uc.apptRepo.GetClientByPhone(ctx, barbershopID, phone)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("client_not_found")
	}

	p, err := uc.repo.GetApprovedPlanForClient(ctx, barbershopID, client.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &UsageOutput{
			Usage: domain.Usage{CanUsePlan: false, Reason: "no_plan"},
		}, nil
	}

	now := timezone.NowIn(shop.Timezone)
	monthStart, monthEnd := domain.ValidPeriod(now)

	monthAppointments, err := uc.apptRepo.ListPlanBookingsForPeriod(
		ctx,
		client.ID,
		models.CategoryCut,
		monthStart,
		monthEnd,
	)
	if err != nil {
		return nil, err
	}

	return &UsageOutput{
		Plan:  p,
		Usage: domain.ComputeUsage(p, monthAppointments),
	}, nil
}
