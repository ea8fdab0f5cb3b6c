package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type CancelByAdmin struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByAdmin(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelByAdmin {
	return &CancelByAdmin{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela pelo barbeiro: sem janela, motivo opcional.
// Não suspende a conta — isso é exclusivo da falta.
func (uc *CancelByAdmin) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	appointmentID uint,
	reason string,
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
	if err := domain.AdminCancel(ap, now, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		Metadata:     map[string]any{"reason": reason},
	})

	return ap, nil
}
