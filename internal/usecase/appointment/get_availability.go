package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository

	// passo padrão da grade quando a barbearia não define o seu
	defaultGranularityMin int
}

func NewGetAvailability(repo domain.Repository, defaultGranularityMin int) *GetAvailability {
	return &GetAvailability{
		repo:                  repo,
		defaultGranularityMin: defaultGranularityMin,
	}
}

// Execute gera os horários livres do dia para um serviço.
// A grade anda em passo fixo (config da barbearia); um início vale se
// início+duração cabe até o fechamento e o intervalo semiaberto não
// cruza nenhum agendamento ativo (pendente ou confirmado).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFoundCode("service_not_found")
	}

	now := timezone.NowIn(shop.Timezone)

	// dia no passado nunca abre para novos agendamentos
	if schedule.IsPastDate(in.Date, now) {
		return []domain.TimeSlot{}, nil
	}

	day, err := uc.resolveDay(ctx, in.BarbershopID, in.Date)
	if err != nil {
		return nil, err
	}
	if !day.IsOpen {
		return []domain.TimeSlot{}, nil
	}

	dayStart := schedule.At(in.Date, day.OpenTime)
	dayEnd := schedule.At(in.Date, day.CloseTime)

	hasLunch := day.LunchStart != "" && day.LunchEnd != ""
	var lunchStart, lunchEnd time.Time
	if hasLunch {
		lunchStart = schedule.At(in.Date, day.LunchStart)
		lunchEnd = schedule.At(in.Date, day.LunchEnd)
	}

	appointments, err := uc.repo.ListActiveForDay(
		ctx,
		in.BarbershopID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	step := uc.granularity(shop.SlotGranularityMin)
	duration := time.Duration(service.DurationMin) * time.Minute

	slots := []domain.TimeSlot{}

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(step) {

		slotStart := cur
		slotEnd := cur.Add(duration)

		// hoje: horário que já passou não é ofertado
		if slotStart.Before(now) {
			continue
		}

		// almoço
		if hasLunch && slotStart.Before(lunchEnd) && slotEnd.After(lunchStart) {
			continue
		}

		conflict := false
		for _, ap := range appointments {
			if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}

// IsSlotFree reconfere um início específico contra a grade do dia
// (mesmas regras do Execute). Usado na revalidação do commit.
func (uc *GetAvailability) IsSlotFree(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	duration time.Duration,
	granularityMin int,
) (bool, error) {

	day, err := uc.resolveDay(ctx, barbershopID, start)
	if err != nil {
		return false, err
	}
	if !day.IsOpen {
		return false, nil
	}

	dayStart := schedule.At(start, day.OpenTime)
	dayEnd := schedule.At(start, day.CloseTime)

	end := start.Add(duration)
	if start.Before(dayStart) || end.After(dayEnd) {
		return false, nil
	}

	// início precisa cair na grade
	step := uc.granularity(granularityMin)
	if start.Sub(dayStart)%step != 0 {
		return false, nil
	}

	if day.LunchStart != "" && day.LunchEnd != "" {
		lunchStart := schedule.At(start, day.LunchStart)
		lunchEnd := schedule.At(start, day.LunchEnd)
		if start.Before(lunchEnd) && end.After(lunchStart) {
			return false, nil
		}
	}

	return true, nil
}

func (uc *GetAvailability) resolveDay(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
) (schedule.DayHours, error) {

	week, err := uc.repo.GetWeekSchedule(ctx, barbershopID)
	if err != nil {
		return schedule.DayHours{}, err
	}

	special, err := uc.repo.GetSpecialDay(
		ctx,
		barbershopID,
		date.Format(schedule.DateLayout),
	)
	if err != nil {
		return schedule.DayHours{}, err
	}

	return schedule.ResolveDay(date, week, special)
}

func (uc *GetAvailability) granularity(shopMin int) time.Duration {
	if shopMin > 0 {
		return time.Duration(shopMin) * time.Minute
	}
	return time.Duration(uc.defaultGranularityMin) * time.Minute
}
