package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/httpresp"
	"github.com/BruksfildServices01/barber-club/internal/infra/cache"
	"github.com/BruksfildServices01/barber-club/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-club/internal/usecase/appointment"
	ucPlan "github.com/BruksfildServices01/barber-club/internal/usecase/plan"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db *gorm.DB

	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
	clientCancelUC *ucAppointment.CancelByClient
	requestPlanUC  *ucPlan.RequestPlan
	usageUC        *ucPlan.GetUsage

	cache *cache.AvailabilityCache
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	clientCancelUC *ucAppointment.CancelByClient,
	requestPlanUC *ucPlan.RequestPlan,
	usageUC *ucPlan.GetUsage,
	availabilityCache *cache.AvailabilityCache,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		clientCancelUC: clientCancelUC,
		requestPlanUC:  requestPlanUC,
		usageUC:        usageUC,
		cache:          availabilityCache,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	UsePlan     bool   `json:"use_plan"`
	Notes       string `json:"notes"`
}

type PublicCancelRequest struct {
	ClientPhone string `json:"client_phone" binding:"required"`
}

type PublicRequestPlanRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	PlanType         string `json:"plan_type" binding:"required"`
	SelectedSchedule string `json:"selected_schedule"`

	// Somente para plan_type=custom
	UnlimitedCuts   bool   `json:"unlimited_cuts"`
	UnlimitedBeard  bool   `json:"unlimited_beard"`
	EyebrowIncluded bool   `json:"eyebrow_included"`
	CutQuota        int    `json:"cut_quota"`
	AllowedDays     []int  `json:"allowed_days"`
	Priority        string `json:"priority"`
	ProductDiscount int    `json:"product_discount"`
	FixedSchedule   bool   `json:"fixed_schedule"`
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Barbershop, bool) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &shop, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	h.db.
		Where("barbershop_id = ? AND active = ?", shop.ID, true).
		Order("name ASC").
		Find(&services)

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceID, err := parseUintQuery(c, "service_id")
	if dateStr == "" || err != nil {
		httperr.BadRequest(c, "invalid_request", "Data e serviço são obrigatórios.")
		return
	}

	date, err := parseDateInShop(shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if slots, hit := h.cache.Get(c.Request.Context(), shop.ID, dateStr, serviceID); hit {
		httpresp.List(c, slots)
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		ServiceID:    serviceID,
		Date:         date,
	})
	if err != nil {
		httperr.FromError(c, err, "Erro ao calcular horários disponíveis.")
		return
	}

	h.cache.Set(c.Request.Context(), shop.ID, dateStr, serviceID, slots)

	httpresp.List(c, slots)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID: shop.ID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		UsePlan:      req.UsePlan,
		Notes:        req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "client_suspended") {
			httperr.Unprocessable(c, "client_suspended",
				"Conta suspensa por falta. Procure a barbearia para liberar novos agendamentos.")
			return
		}
		if httperr.IsBusiness(err, "time_conflict") {
			httperr.Conflict(c, "time_conflict",
				"Horário acabou de ser ocupado. Atualize a lista de horários e escolha outro.")
			return
		}
		httperr.FromError(c, err, "Não foi possível criar o agendamento.")
		return
	}

	h.cache.InvalidateDay(c.Request.Context(), shop.ID, req.Date)

	c.JSON(http.StatusCreated, ap)
}

////////////////////////////////////////////////////////
// CANCEL APPOINTMENT (cliente, via referência pública)
////////////////////////////////////////////////////////

func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Telefone obrigatório.")
		return
	}

	ap, err := h.clientCancelUC.Execute(
		c.Request.Context(),
		shop.ID,
		c.Param("ref"),
		req.ClientPhone,
	)
	if err != nil {
		if httperr.IsBusiness(err, "cancellation_window_expired") {
			httperr.Unprocessable(c, "cancellation_window_expired",
				"Cancelamento permitido até 1 hora antes do horário. Fale com a barbearia.")
			return
		}
		httperr.FromError(c, err, "Não foi possível cancelar o agendamento.")
		return
	}

	h.cache.InvalidateDay(
		c.Request.Context(),
		shop.ID,
		ap.StartTime.Format(schedule.DateLayout),
	)

	c.JSON(200, ap)
}

////////////////////////////////////////////////////////
// PLANS
////////////////////////////////////////////////////////

func (h *PublicHandler) RequestPlan(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicRequestPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.requestPlanUC.Execute(c.Request.Context(), ucPlan.RequestPlanInput{
		BarbershopID:     shop.ID,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ClientEmail:      req.ClientEmail,
		PlanType:         req.PlanType,
		SelectedSchedule: req.SelectedSchedule,
		UnlimitedCuts:    req.UnlimitedCuts,
		UnlimitedBeard:   req.UnlimitedBeard,
		EyebrowIncluded:  req.EyebrowIncluded,
		CutQuota:         req.CutQuota,
		AllowedDays:      req.AllowedDays,
		Priority:         req.Priority,
		ProductDiscount:  req.ProductDiscount,
		FixedSchedule:    req.FixedSchedule,
	})
	if err != nil {
		httperr.FromError(c, err, "Não foi possível registrar o pedido de plano.")
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *PublicHandler) PlanUsage(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Telefone obrigatório.")
		return
	}

	out, err := h.usageUC.Execute(c.Request.Context(), shop.ID, phone)
	if err != nil {
		httperr.FromError(c, err, "Erro ao consultar uso do plano.")
		return
	}

	c.JSON(200, out)
}
