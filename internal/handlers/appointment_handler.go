package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-club/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/httpresp"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	"github.com/BruksfildServices01/barber-club/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-club/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// dayInvalidator é o que o handler precisa do cache de disponibilidade:
// derrubar a grade do dia quando a agenda muda de estado.
type dayInvalidator interface {
	InvalidateDay(ctx context.Context, barbershopID uint, date string)
}

type AppointmentHandler struct {
	db *gorm.DB

	confirmUC     *ucAppointment.ConfirmAppointment
	completeUC    *ucAppointment.CompleteAppointment
	noShowUC      *ucAppointment.MarkNoShow
	adminCancelUC *ucAppointment.CancelByAdmin
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth

	cache dayInvalidator
}

func NewAppointmentHandler(
	db *gorm.DB,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	noShowUC *ucAppointment.MarkNoShow,
	adminCancelUC *ucAppointment.CancelByAdmin,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	availabilityCache dayInvalidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:            db,
		confirmUC:     confirmUC,
		completeUC:    completeUC,
		noShowUC:      noShowUC,
		adminCancelUC: adminCancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		cache:         availabilityCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminCancelRequest struct {
	Reason string `json:"reason"`
}

type NoShowRequest struct {
	Observation string `json:"observation"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), barbershopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), barbershopID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// CONFIRM
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), barbershopID, userID, uint(id))
	if err != nil {
		httperr.FromError(c, err, "Agendamento não pode ser confirmado.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barbershopID, userID, uint(id))
	if err != nil {
		httperr.FromError(c, err, "Agendamento não pode ser concluído.")
		return
	}

	// concluído deixa de ser ativo: a grade cacheada do dia ficou velha
	h.invalidateDay(c, barbershopID, ap)

	c.JSON(200, ap)
}

// ======================================================
// NO-SHOW
// ======================================================

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req NoShowRequest
	_ = c.ShouldBindJSON(&req) // observação é opcional

	ap, err := h.noShowUC.Execute(c.Request.Context(), barbershopID, userID, uint(id), req.Observation)
	if err != nil {
		httperr.FromError(c, err, "Falta não pôde ser registrada.")
		return
	}

	h.invalidateDay(c, barbershopID, ap)

	c.JSON(200, ap)
}

// ======================================================
// ADMIN CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req AdminCancelRequest
	_ = c.ShouldBindJSON(&req) // motivo é opcional

	ap, err := h.adminCancelUC.Execute(c.Request.Context(), barbershopID, userID, uint(id), req.Reason)
	if err != nil {
		httperr.FromError(c, err, "Agendamento não pode ser cancelado.")
		return
	}

	h.invalidateDay(c, barbershopID, ap)

	c.JSON(200, ap)
}

func (h *AppointmentHandler) invalidateDay(c *gin.Context, barbershopID uint, ap *models.Appointment) {
	h.cache.InvalidateDay(
		c.Request.Context(),
		barbershopID,
		ap.StartTime.Format(schedule.DateLayout),
	)
}
