package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-club/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/httpresp"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

// ======================================================
// HANDLER — grade semanal + exceções de calendário
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type WeekDayRequest struct {
	Weekday    int    `json:"weekday"`
	IsOpen     bool   `json:"is_open"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type SpecialDayRequest struct {
	Date      string `json:"date" binding:"required"`
	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Reason    string `json:"reason"`
}

// ======================================================
// WEEK SCHEDULE
// ======================================================

func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var week []models.WeekSchedule
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("weekday ASC").
		Find(&week)

	httpresp.List(c, week)
}

// PutWeek substitui a grade inteira. As 7 linhas são obrigatórias:
// semana incompleta não pode ser salva.
func (h *ScheduleHandler) PutWeek(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req []WeekDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	week := make([]models.WeekSchedule, 0, len(req))
	for _, d := range req {
		week = append(week, models.WeekSchedule{
			BarbershopID: barbershopID,
			Weekday:      d.Weekday,
			IsOpen:       d.IsOpen,
			OpenTime:     d.OpenTime,
			CloseTime:    d.CloseTime,
			LunchStart:   d.LunchStart,
			LunchEnd:     d.LunchEnd,
		})
	}

	if err := schedule.ValidateWeekSchedule(week); err != nil {
		httperr.FromError(c, err, "Grade semanal inválida.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barbershop_id = ?", barbershopID).
			Delete(&models.WeekSchedule{}).Error; err != nil {
			return err
		}
		return tx.Create(&week).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar a grade semanal.")
		return
	}

	httpresp.List(c, week)
}

// ======================================================
// SPECIAL DAYS
// ======================================================

func (h *ScheduleHandler) ListSpecialDays(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var days []models.SpecialDay
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("date ASC").
		Find(&days)

	httpresp.List(c, days)
}

// UpsertSpecialDay grava a exceção da data (uma por data; a segunda
// escrita substitui a primeira). Validação de horário acontece aqui,
// na escrita — a leitura nunca rejeita config já salva.
func (h *ScheduleHandler) UpsertSpecialDay(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req SpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sd := models.SpecialDay{
		BarbershopID: barbershopID,
		Date:         req.Date,
		IsClosed:     req.IsClosed,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		Reason:       req.Reason,
	}

	if err := schedule.ValidateSpecialDay(&sd); err != nil {
		httperr.FromError(c, err, "Exceção de calendário inválida.")
		return
	}

	var existing models.SpecialDay
	err := h.db.
		Where("barbershop_id = ? AND date = ?", barbershopID, req.Date).
		First(&existing).Error

	if err == nil {
		sd.ID = existing.ID
	}

	if err := h.db.Save(&sd).Error; err != nil {
		httperr.Internal(c, "failed_to_save_special_day", "Erro ao salvar exceção de calendário.")
		return
	}

	c.JSON(200, sd)
}

func (h *ScheduleHandler) DeleteSpecialDay(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := c.Param("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	result := h.db.
		Where("barbershop_id = ? AND date = ?", barbershopID, date).
		Delete(&models.SpecialDay{})

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_special_day", "Erro ao remover exceção de calendário.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "special_day_not_found", "Exceção não encontrada.")
		return
	}

	c.JSON(200, gin.H{"deleted": date})
}
