package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

// ===============================
// Calendário da barbearia
// ===============================

// DayHours é o horário efetivo de um dia específico, já com a exceção
// de calendário aplicada por cima da grade semanal.
type DayHours struct {
	IsOpen    bool
	OpenTime  string
	CloseTime string

	LunchStart string
	LunchEnd   string

	// Motivo da exceção, quando houver (feriado, evento...)
	Reason string
}

const DateLayout = "2006-01-02"

// ResolveDay aplica a regra: exceção de calendário sempre sobrepõe a
// grade semanal; sem exceção, vale a linha do dia da semana.
// Semana sem a linha do dia é defeito de configuração.
func ResolveDay(
	date time.Time,
	week []models.WeekSchedule,
	special *models.SpecialDay,
) (DayHours, error) {

	if special != nil {
		if special.IsClosed {
			return DayHours{IsOpen: false, Reason: special.Reason}, nil
		}
		return DayHours{
			IsOpen:    true,
			OpenTime:  special.OpenTime,
			CloseTime: special.CloseTime,
			Reason:    special.Reason,
		}, nil
	}

	weekday := int(date.Weekday())
	for _, ws := range week {
		if ws.Weekday != weekday {
			continue
		}
		if !ws.IsOpen || ws.OpenTime == "" || ws.CloseTime == "" {
			return DayHours{IsOpen: false}, nil
		}
		return DayHours{
			IsOpen:     true,
			OpenTime:   ws.OpenTime,
			CloseTime:  ws.CloseTime,
			LunchStart: ws.LunchStart,
			LunchEnd:   ws.LunchEnd,
		}, nil
	}

	return DayHours{}, httperr.ErrConfig("week_schedule_incomplete")
}

// At materializa um horário "15:04" na data e timezone informados.
func At(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// IsPastDate diz se a data (dia inteiro) já passou em relação a now.
// Dia no passado nunca abre para novos agendamentos.
func IsPastDate(date time.Time, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// ===============================
// Validações de escrita
// ===============================

func validHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}

func hmBefore(a, b string) bool {
	ta, errA := time.Parse("15:04", a)
	tb, errB := time.Parse("15:04", b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Before(tb)
}

// ValidateSpecialDay valida a exceção no momento da escrita:
// dia aberto exige open < close.
func ValidateSpecialDay(sd *models.SpecialDay) error {
	if _, err := time.Parse(DateLayout, sd.Date); err != nil {
		return httperr.ErrValidation("invalid_date")
	}

	if sd.IsClosed {
		return nil
	}

	if !validHM(sd.OpenTime) || !validHM(sd.CloseTime) {
		return httperr.ErrValidation("invalid_time_range")
	}
	if !hmBefore(sd.OpenTime, sd.CloseTime) {
		return httperr.ErrValidation("invalid_time_range")
	}
	return nil
}

// ValidateWeekSchedule exige as 7 linhas (0..6) e horários coerentes
// nos dias abertos. Falha aqui deve derrubar o startup, não a request.
func ValidateWeekSchedule(week []models.WeekSchedule) error {
	seen := make(map[int]bool, 7)

	for _, ws := range week {
		if ws.Weekday < 0 || ws.Weekday > 6 {
			return httperr.ErrValidation("invalid_weekday")
		}
		if seen[ws.Weekday] {
			return httperr.ErrValidation("duplicated_weekday")
		}
		seen[ws.Weekday] = true

		if !ws.IsOpen {
			continue
		}
		if !validHM(ws.OpenTime) || !validHM(ws.CloseTime) || !hmBefore(ws.OpenTime, ws.CloseTime) {
			return httperr.ErrValidation("invalid_time_range")
		}
		if ws.LunchStart != "" || ws.LunchEnd != "" {
			if !validHM(ws.LunchStart) || !validHM(ws.LunchEnd) || !hmBefore(ws.LunchStart, ws.LunchEnd) {
				return httperr.ErrValidation("invalid_time_range")
			}
		}
	}

	if len(seen) != 7 {
		// na escrita a semana vem do chamador: erro de entrada, não de
		// configuração (a leitura com grade furada continua ErrConfig)
		return httperr.ErrValidation("week_schedule_incomplete")
	}
	return nil
}
