package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	apptDomain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	"github.com/BruksfildServices01/barber-club/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-club/internal/usecase/appointment"
)

// cobre só o que o usecase de conclusão consulta; o restante da
// interface embutida estoura de propósito se for chamado
type stubCompleteRepo struct {
	apptDomain.Repository
	shop *models.Barbershop
	ap   *models.Appointment
}

func (s *stubCompleteRepo) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {
	return s.shop, nil
}

func (s *stubCompleteRepo) GetAppointment(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return s.ap, nil
}

func (s *stubCompleteRepo) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return nil
}

type recordingInvalidator struct {
	days []string
}

func (r *recordingInvalidator) InvalidateDay(
	ctx context.Context,
	barbershopID uint,
	date string,
) {
	r.days = append(r.days, date)
}

// Conclusão é terminal: libera o intervalo e a grade cacheada do dia
// precisa cair junto, como no cancelamento e no no-show.
func TestCompleteHandler_InvalidatesCachedDay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	start := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	repo := &stubCompleteRepo{
		shop: &models.Barbershop{ID: 1, Timezone: "America/Sao_Paulo"},
		ap: &models.Appointment{
			ID:           1,
			BarbershopID: 1,
			Status:       "confirmed",
			StartTime:    start,
			EndTime:      start.Add(30 * time.Minute),
		},
	}

	inv := &recordingInvalidator{}
	h := NewAppointmentHandler(
		nil,
		nil,
		ucAppointment.NewCompleteAppointment(repo, audit.NewDispatcher(audit.New(nil))),
		nil,
		nil,
		nil,
		nil,
		inv,
	)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(middleware.ContextBarbershopID, uint(1))
	c.Set(middleware.ContextUserID, uint(9))
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.Complete(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, inv.days, 1)
	assert.Equal(t, start.Format(schedule.DateLayout), inv.days[0])
}
