package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	planDomain "github.com/BruksfildServices01/barber-club/internal/domain/plan"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date string
	Time string

	// O cliente pediu cobertura pelo plano. Nunca é assumido:
	// sem plano usável o pedido falha, não vira preço cheio calado.
	UsePlan bool

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo         domain.Repository
	planRepo     planDomain.Repository
	availability *GetAvailability
	audit        *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	planRepo planDomain.Repository,
	availability *GetAvailability,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:         repo,
		planRepo:     planRepo,
		availability: availability,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Barbearia
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}

	// --------------------------------------------------
	// Data / hora no timezone da barbearia
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date_or_time")
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now) {
		return nil, httperr.ErrValidation("time_in_past")
	}

	// --------------------------------------------------
	// Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrNotFoundCode("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Cliente (get or create) + suspensão
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	if client.Suspended {
		return nil, httperr.ErrPolicy("client_suspended")
	}

	// --------------------------------------------------
	// Plano (quando pedido)
	// --------------------------------------------------
	price := service.Price
	isPlanBooking := false
	var planID *uint
	var quota *domain.QuotaCheck

	if in.UsePlan {
		covered, p, q, err := uc.resolvePlanCoverage(ctx, shop, client, service, start, now)
		if err != nil {
			return nil, err
		}
		price = planDomain.PriceFor(service, covered)
		isPlanBooking = true
		planID = &p.ID
		quota = q
	}

	// --------------------------------------------------
	// Grade do dia (reconferida no commit contra a agenda)
	// --------------------------------------------------
	free, err := uc.availability.IsSlotFree(
		ctx,
		in.BarbershopID,
		start,
		time.Duration(service.DurationMin)*time.Minute,
		shop.SlotGranularityMin,
	)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, httperr.ErrValidation("outside_working_hours")
	}

	// --------------------------------------------------
	// Commit transacional (conflito + cota + insert)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicRef:       uuid.NewString(),
		BarbershopID:    in.BarbershopID,
		ClientID:        client.ID,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		ServiceCategory: service.Category,
		Price:           price,
		DurationMin:     service.DurationMin,
		StartTime:       start,
		EndTime:         end,
		Status:          string(domain.InitialStatus()),
		IsPlanBooking:   isPlanBooking,
		PlanID:          planID,
		Notes:           in.Notes,
	}

	if err := uc.repo.CommitAppointment(ctx, ap, quota); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrConflict("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		Metadata: map[string]any{
			"plan_booking": isPlanBooking,
			"start":        start,
		},
	})

	return ap, nil
}

// resolvePlanCoverage resolve se o plano do cliente cobre o serviço na
// data pedida. Qualquer regra violada aborta o pedido — o motor nunca
// rebaixa silenciosamente para preço cheio.
func (uc *CreateAppointment) resolvePlanCoverage(
	ctx context.Context,
	shop *models.Barbershop,
	client *models.Client,
	service *models.Service,
	start time.Time,
	now time.Time,
) (bool, *models.Plan, *domain.QuotaCheck, error) {

	p, err := uc.planRepo.GetApprovedPlanForClient(ctx, shop.ID, client.ID)
	if err != nil {
		return false, nil, nil, err
	}

	usable, reason := planDomain.IsUsable(p, start, now)
	if !usable {
		return false, nil, nil, httperr.ErrPolicy(reason)
	}

	if !planDomain.IsDayAllowed(p, start) {
		return false, nil, nil, httperr.ErrPolicy("plan_day_not_allowed")
	}

	monthStart, monthEnd := planDomain.ValidPeriod(now)
	monthAppointments, err := uc.repo.ListPlanBookingsForPeriod(
		ctx,
		client.ID,
		models.CategoryCut,
		monthStart,
		monthEnd,
	)
	if err != nil {
		return false, nil, nil, err
	}

	usage := planDomain.ComputeUsage(p, monthAppointments)

	covered, reason := planDomain.Covers(p, service.Category, usage)
	if !covered {
		return false, nil, nil, httperr.ErrPolicy(reason)
	}

	// cota finita de cortes: reconta dentro da transação do insert
	var quota *domain.QuotaCheck
	if service.Category == models.CategoryCut && !p.UnlimitedCuts {
		quota = &domain.QuotaCheck{
			ClientID:   client.ID,
			Category:   models.CategoryCut,
			Limit:      p.CutQuota,
			MonthStart: monthStart,
			MonthEnd:   monthEnd,
		}
	}

	return true, p, quota, nil
}
