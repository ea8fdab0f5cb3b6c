package appointment

import "github.com/BruksfildServices01/barber-club/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// Statuses que ocupam horário na agenda
var ActiveStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Terminal: nenhuma transição sai daqui
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ===============================
// Validations
// ===============================

// Política adotada: agendamento nasce pendente e o barbeiro confirma
// manualmente. Pendente e confirmado contam igual para disponibilidade.
func InitialStatus() Status {
	return StatusPending
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrPolicy("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.IsActive() {
		return httperr.ErrPolicy("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.IsActive() {
		return httperr.ErrPolicy("invalid_state")
	}
	return nil
}

// No-show pode ser marcado até depois de concluído, para corrigir
// uma conclusão registrada por engano.
func CanMarkNoShow(current Status) error {
	if current.IsActive() || current == StatusCompleted {
		return nil
	}
	return httperr.ErrPolicy("invalid_state")
}
