package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmAppointment) Execute(
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
	if err := domain.Confirm(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "appointment_confirmed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
