package plan

import (
	"time"

	appt "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

// ===============================
// Uso mensal e cobertura
// ===============================

// Usage é derivado por request a partir do plano + agendamentos do mês;
// nunca é persistido.
type Usage struct {
	CutsUsed      int  `json:"cuts_used"`
	CutsLimit     *int `json:"cuts_limit"` // nil = ilimitado
	CutsRemaining *int `json:"cuts_remaining"`

	CanUsePlan bool   `json:"can_use_plan"`
	Reason     string `json:"reason,omitempty"`
}

// ValidPeriod é o período mensal de validade do plano: o mês corrente
// enquanto o plano estiver aprovado. Agendar fora dele não é permitido.
func ValidPeriod(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// IsUsable diz se o plano pode cobrir um agendamento na data alvo.
// Plano não aprovado nunca é usável — o chamador deve forçar
// is_plan_booking=false, nunca substituir por um plano padrão.
func IsUsable(p *models.Plan, date time.Time, now time.Time) (bool, string) {
	if p == nil {
		return false, "no_plan"
	}
	if p.Status != StatusApproved {
		return false, "plan_not_approved"
	}

	start, end := ValidPeriod(now)
	if date.Before(start) || !date.Before(end) {
		return false, "outside_plan_period"
	}
	return true, ""
}

// IsDayAllowed checa só a regra de dia-da-semana do plano.
// Loja fechada no dia é checada pelo calendário, não aqui.
func IsDayAllowed(p *models.Plan, date time.Time) bool {
	return ParseDays(p.AllowedDays)[date.Weekday()]
}

// ComputeUsage conta os cortes do mês cobertos pelo plano.
// Contam pending, confirmed e completed; cancelado e falta devolvem a cota.
func ComputeUsage(p *models.Plan, monthAppointments []models.Appointment) Usage {
	used := 0
	for _, ap := range monthAppointments {
		if !ap.IsPlanBooking || ap.ServiceCategory != models.CategoryCut {
			continue
		}
		switch appt.Status(ap.Status) {
		case appt.StatusPending, appt.StatusConfirmed, appt.StatusCompleted:
			used++
		}
	}

	u := Usage{CutsUsed: used}

	if p.UnlimitedCuts {
		u.CanUsePlan = true
		return u
	}

	limit := p.CutQuota
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	u.CutsLimit = &limit
	u.CutsRemaining = &remaining
	u.CanUsePlan = remaining > 0
	if !u.CanUsePlan {
		u.Reason = "plan_limit_reached"
	}
	return u
}

// Covers diz se a categoria do serviço é coberta pelo plano, dado o
// uso do mês. Categorias fora do clube pagam preço cheio sempre.
func Covers(p *models.Plan, category string, usage Usage) (bool, string) {
	switch category {
	case models.CategoryCut:
		if p.UnlimitedCuts || usage.CanUsePlan {
			return true, ""
		}
		return false, "plan_limit_reached"
	case models.CategoryBeard:
		if p.UnlimitedBeard {
			return true, ""
		}
		return false, "service_not_covered"
	case models.CategoryEyebrow:
		if p.EyebrowIncluded {
			return true, ""
		}
		return false, "service_not_covered"
	default:
		return false, "service_not_covered"
	}
}

// PriceFor zera o preço quando o serviço é coberto; senão, preço de tabela.
func PriceFor(service *models.Service, covered bool) float64 {
	if covered {
		return 0
	}
	return service.Price
}
