package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type MarkNoShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca a falta e aplica o efeito colateral devolvido pelo
// domínio: suspende a conta do cliente na mesma transação. O cliente
// fica bloqueado para novos agendamentos até liberação manual.
func (uc *MarkNoShow) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	appointmentID uint,
	observation string,
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

	result, err := domain.MarkNoShow(ap, now, observation)
	if err != nil {
		return nil, err
	}

	if result.SuspensionTriggered {
		client, err := uc.repo.GetClientByID(ctx, barbershopID, ap.ClientID)
		if err != nil {
			return nil, err
		}
		client.Suspended = true
		client.SuspendedReason = result.Reason
		client.SuspendedAt = &now

		if err := uc.repo.UpdateAppointmentAndClient(ctx, ap, client); err != nil {
			return nil, err
		}
	} else {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "appointment_no_show",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		Metadata: map[string]any{
			"client_id":   ap.ClientID,
			"observation": observation,
		},
	})

	return ap, nil
}
