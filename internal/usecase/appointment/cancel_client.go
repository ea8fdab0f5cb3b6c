package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type CancelByClient struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	window time.Duration
}

func NewCancelByClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	windowMin int,
) *CancelByClient {
	return &CancelByClient{
		repo:   repo,
		audit:  audit,
		window: time.Duration(windowMin) * time.Minute,
	}
}

// Execute cancela pelo cliente, identificado pela referência pública +
// telefone (prova de posse, cliente não tem login). A janela usa o
// relógio do servidor — timestamp do cliente não entra na conta.
func (uc *CancelByClient) Execute(
	ctx context.Context,
	barbershopID uint,
	publicRef string,
	phone string,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}

	ap, err := uc.repo.GetAppointmentByRef(ctx, barbershopID, publicRef)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("appointment_not_found")
	}

	owner, err := uc.repo.GetClientByPhone(ctx, barbershopID, phone)
	if err != nil || owner.ID != ap.ClientID {
		return nil, httperr.ErrNotFoundCode("appointment_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.ClientCancel(ap, now, uc.window); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		Action:       "appointment_cancelled_by_client",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
