package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

// relógio congelado: terça, 10/03/2026, 09:00 no fuso da barbearia
func frozenNow() time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, timezone.Location(""))
}

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := timezone.Clock
	timezone.Clock = func() time.Time { return at }
	t.Cleanup(func() { timezone.Clock = prev })
}

func dateAt(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, timezone.Location(""))
	require.NoError(t, err)
	return d
}

func slotStarts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func newCutService() models.Service {
	return models.Service{
		ID:           1,
		BarbershopID: 1,
		Name:         "Corte Masculino",
		Category:     models.CategoryCut,
		DurationMin:  30,
		Price:        35,
		Active:       true,
	}
}

func TestGetAvailability_FullOpenDay(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(newCutService())

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         dateAt(t, "2026-03-12"),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)

	// grade de 15 em 15, serviço de 30min, 09:00–18:00:
	// primeiro início 09:00, último que ainda cabe 17:30
	assert.Equal(t, "09:00", starts[0])
	assert.Equal(t, "17:30", starts[len(starts)-1])
	assert.Len(t, starts, 35)
}

func TestGetAvailability_ExcludesOverlappingStarts(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(newCutService())

	day := dateAt(t, "2026-03-12")
	repo.seed(models.Appointment{
		BarbershopID: 1,
		ClientID:     99,
		Status:       "confirmed",
		StartTime:    day.Add(10 * time.Hour),
		EndTime:      day.Add(10*time.Hour + 30*time.Minute),
	})

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         day,
	})
	require.NoError(t, err)

	starts := slotStarts(slots)

	// ocupado 10:00–10:30: qualquer início cujo serviço invadiria o
	// intervalo sai da grade; encaixe exato nas bordas permanece
	assert.NotContains(t, starts, "09:45")
	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "10:15")
	assert.Contains(t, starts, "09:30")
	assert.Contains(t, starts, "10:30")
}

func TestGetAvailability_CancelledDoesNotBlock(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(newCutService())

	day := dateAt(t, "2026-03-12")
	repo.seed(models.Appointment{
		BarbershopID: 1,
		ClientID:     99,
		Status:       "cancelled",
		StartTime:    day.Add(10 * time.Hour),
		EndTime:      day.Add(10*time.Hour + 30*time.Minute),
	})

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         day,
	})
	require.NoError(t, err)

	assert.Contains(t, slotStarts(slots), "10:00")
}

func TestGetAvailability_LunchBreak(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(newCutService())

	for i := range repo.week {
		repo.week[i].LunchStart = "12:00"
		repo.week[i].LunchEnd = "13:00"
	}

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         dateAt(t, "2026-03-12"),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)

	assert.Contains(t, starts, "11:30")
	assert.NotContains(t, starts, "11:45")
	assert.NotContains(t, starts, "12:00")
	assert.NotContains(t, starts, "12:45")
	assert.Contains(t, starts, "13:00")
}

func TestGetAvailability_SpecialDayClosed(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(newCutService())
	repo.special["2026-03-12"] = &models.SpecialDay{
		BarbershopID: 1,
		Date:         "2026-03-12",
		IsClosed:     true,
		Reason:       "feriado",
	}

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         dateAt(t, "2026-03-12"),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_SpecialDayOverridesHours(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(newCutService())
	repo.special["2026-03-12"] = &models.SpecialDay{
		BarbershopID: 1,
		Date:         "2026-03-12",
		OpenTime:     "14:00",
		CloseTime:    "16:00",
	}

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         dateAt(t, "2026-03-12"),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Equal(t, "14:00", starts[0])
	assert.Equal(t, "15:30", starts[len(starts)-1])
}

func TestGetAvailability_PastDateIsEmpty(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(newCutService())

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         dateAt(t, "2026-03-09"),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_TodaySkipsElapsedTimes(t *testing.T) {
	// 14:05 de hoje: tudo até 14:05 já passou
	freezeClock(t, time.Date(2026, 3, 10, 14, 5, 0, 0, timezone.Location("")))

	repo := newFakeRepo()
	repo.addService(newCutService())

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		Date:         dateAt(t, "2026-03-10"),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, "14:00")
	assert.Equal(t, "14:15", starts[0])
}

func TestGetAvailability_ServiceLongerThanDay(t *testing.T) {
	freezeClock(t, frozenNow())

	repo := newFakeRepo()
	repo.addService(models.Service{
		ID:           7,
		BarbershopID: 1,
		Name:         "Dia de Noivo",
		Category:     models.CategoryOther,
		DurationMin:  12 * 60,
		Price:        500,
		Active:       true,
	})

	uc := NewGetAvailability(repo, 30)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    7,
		Date:         dateAt(t, "2026-03-12"),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
