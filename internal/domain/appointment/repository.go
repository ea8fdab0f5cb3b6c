package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-club/internal/models"
)

// QuotaCheck é a recontagem de cota do plano feita dentro da mesma
// transação do insert, para duas reservas simultâneas não passarem
// ambas com uma única unidade de cota restante.
type QuotaCheck struct {
	ClientID   uint
	Category   string
	Limit      int
	MonthStart time.Time
	MonthEnd   time.Time
}

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service (catálogo) --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	GetClientByPhone(
		ctx context.Context,
		barbershopID uint,
		phone string,
	) (*models.Client, error)

	GetClientByID(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Calendário --------
	GetWeekSchedule(
		ctx context.Context,
		barbershopID uint,
	) ([]models.WeekSchedule, error)

	// Retorna nil (sem erro) quando não há exceção para a data
	GetSpecialDay(
		ctx context.Context,
		barbershopID uint,
		date string,
	) (*models.SpecialDay, error)

	// -------- Appointment (commit / conflito) --------

	// CommitAppointment grava o agendamento em transação única:
	// trava e reconfere conflito de intervalo, reconta a cota do
	// plano (quando quota != nil) e insere. Fecha a corrida entre
	// dois clientes disputando o mesmo horário.
	CommitAppointment(
		ctx context.Context,
		ap *models.Appointment,
		quota *QuotaCheck,
	) error

	// -------- Appointment (leitura) --------
	GetAppointment(
		ctx context.Context,
		barbershopID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentByRef(
		ctx context.Context,
		barbershopID uint,
		publicRef string,
	) (*models.Appointment, error)

	ListActiveForDay(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForPeriod(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// Agendamentos cobertos pelo plano no período (uso mensal)
	ListPlanBookingsForPeriod(
		ctx context.Context,
		clientID uint,
		category string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Transição + suspensão do cliente na mesma transação (falta)
	UpdateAppointmentAndClient(
		ctx context.Context,
		ap *models.Appointment,
		client *models.Client,
	) error
}
