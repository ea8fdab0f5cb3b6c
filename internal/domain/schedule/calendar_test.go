package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

func fullWeek() []models.WeekSchedule {
	week := make([]models.WeekSchedule, 0, 7)
	for weekday := 0; weekday <= 6; weekday++ {
		week = append(week, models.WeekSchedule{
			Weekday:   weekday,
			IsOpen:    weekday != 0, // domingo fechado
			OpenTime:  "09:00",
			CloseTime: "18:00",
		})
	}
	return week
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestResolveDay_WeekSchedule(t *testing.T) {
	// 12/03/2026 é quinta
	day, err := ResolveDay(mustDate(t, "2026-03-12"), fullWeek(), nil)
	require.NoError(t, err)

	assert.True(t, day.IsOpen)
	assert.Equal(t, "09:00", day.OpenTime)
	assert.Equal(t, "18:00", day.CloseTime)
}

func TestResolveDay_ClosedWeekday(t *testing.T) {
	// 15/03/2026 é domingo
	day, err := ResolveDay(mustDate(t, "2026-03-15"), fullWeek(), nil)
	require.NoError(t, err)
	assert.False(t, day.IsOpen)
}

func TestResolveDay_SpecialDayOverrides(t *testing.T) {
	special := &models.SpecialDay{
		Date:      "2026-03-12",
		OpenTime:  "14:00",
		CloseTime: "20:00",
		Reason:    "evento",
	}

	day, err := ResolveDay(mustDate(t, "2026-03-12"), fullWeek(), special)
	require.NoError(t, err)

	assert.True(t, day.IsOpen)
	assert.Equal(t, "14:00", day.OpenTime)
	assert.Equal(t, "20:00", day.CloseTime)
	assert.Equal(t, "evento", day.Reason)
}

func TestResolveDay_SpecialDayCloses(t *testing.T) {
	special := &models.SpecialDay{
		Date:     "2026-03-12",
		IsClosed: true,
		Reason:   "feriado",
	}

	day, err := ResolveDay(mustDate(t, "2026-03-12"), fullWeek(), special)
	require.NoError(t, err)
	assert.False(t, day.IsOpen)
	assert.Equal(t, "feriado", day.Reason)
}

func TestResolveDay_MissingWeekdayIsConfigError(t *testing.T) {
	week := fullWeek()[:4] // sem quinta..sábado

	_, err := ResolveDay(mustDate(t, "2026-03-12"), week, nil)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "week_schedule_incomplete"))

	kind, ok := httperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindConfig, kind)
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 3, 12, 0, 0, 0, 0, loc)
	got := At(date, "09:30")

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, date.Day(), got.Day())
	assert.Equal(t, loc, got.Location())
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDate(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsPastDate(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsPastDate(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), now))

	// o próprio dia nunca conta como passado
	assert.False(t, IsPastDate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastDate(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), now))
}

func TestValidateSpecialDay(t *testing.T) {
	cases := []struct {
		name string
		sd   models.SpecialDay
		code string
	}{
		{
			name: "fechado dispensa horário",
			sd:   models.SpecialDay{Date: "2026-03-12", IsClosed: true},
		},
		{
			name: "aberto com horário válido",
			sd:   models.SpecialDay{Date: "2026-03-12", OpenTime: "10:00", CloseTime: "16:00"},
		},
		{
			name: "data inválida",
			sd:   models.SpecialDay{Date: "12/03/2026", IsClosed: true},
			code: "invalid_date",
		},
		{
			name: "abertura depois do fechamento",
			sd:   models.SpecialDay{Date: "2026-03-12", OpenTime: "18:00", CloseTime: "09:00"},
			code: "invalid_time_range",
		},
		{
			name: "horário malformado",
			sd:   models.SpecialDay{Date: "2026-03-12", OpenTime: "9h", CloseTime: "18:00"},
			code: "invalid_time_range",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSpecialDay(&tc.sd)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code))
		})
	}
}

func TestValidateWeekSchedule(t *testing.T) {
	t.Run("semana completa passa", func(t *testing.T) {
		assert.NoError(t, ValidateWeekSchedule(fullWeek()))
	})

	t.Run("semana incompleta é erro de entrada", func(t *testing.T) {
		err := ValidateWeekSchedule(fullWeek()[:6])
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "week_schedule_incomplete"))

		// na escrita o chamador montou a semana: 400, não 500
		kind, ok := httperr.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, httperr.KindValidation, kind)
	})

	t.Run("dia duplicado", func(t *testing.T) {
		week := append(fullWeek(), models.WeekSchedule{Weekday: 3, IsOpen: false})
		err := ValidateWeekSchedule(week)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "duplicated_weekday"))
	})

	t.Run("almoço invertido", func(t *testing.T) {
		week := fullWeek()
		week[1].LunchStart = "13:00"
		week[1].LunchEnd = "12:00"
		err := ValidateWeekSchedule(week)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))
	})

	t.Run("dia fechado dispensa horário", func(t *testing.T) {
		week := fullWeek()
		week[0].OpenTime = ""
		week[0].CloseTime = ""
		assert.NoError(t, ValidateWeekSchedule(week))
	})
}
