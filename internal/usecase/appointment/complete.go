package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Conclusão é a base da contagem de uso do plano e do faturamento.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, barbershopID, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("appointment_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "appointment_completed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
