package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NoShowResult é o efeito colateral da falta, devolvido para quem chamou
// persistir (o domínio não toca no cadastro do cliente).
type NoShowResult struct {
	SuspensionTriggered bool
	Reason              string
}

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

// ClientCancel aplica a janela de cancelamento: o cliente só cancela
// enquanto now < início - janela. Fora da janela nada é alterado.
func ClientCancel(ap *models.Appointment, now time.Time, window time.Duration) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if !now.Before(ap.StartTime.Add(-window)) {
		return httperr.ErrPolicy("cancellation_window_expired")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// AdminCancel não tem janela: o barbeiro cancela a qualquer momento.
// Cancelamento (do cliente ou do barbeiro) nunca suspende a conta —
// isso é exclusivo da falta.
func AdminCancel(ap *models.Appointment, now time.Time, reason string) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.CancelReason = reason
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// MarkNoShow registra a falta e dispara a suspensão da conta.
// Uma única falta basta (tolerância zero).
func MarkNoShow(ap *models.Appointment, now time.Time, observation string) (NoShowResult, error) {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return NoShowResult{}, err
	}

	ap.Status = string(StatusNoShow)
	ap.NoShowAt = &now
	ap.NoShowNote = observation

	// correção de conclusão indevida: limpa o completed_at
	ap.CompletedAt = nil

	return NoShowResult{
		SuspensionTriggered: true,
		Reason:              "no_show",
	}, nil
}
