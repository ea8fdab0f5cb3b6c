package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/httpresp"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type SuspendClientRequest struct {
	Reason string `json:"reason"`
}

func (h *ClientHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var clients []models.Client
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&clients)

	httpresp.List(c, clients)
}

// Suspensão manual (além da automática por falta)
func (h *ClientHandler) Suspend(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SuspendClientRequest
	_ = c.ShouldBindJSON(&req)

	var client models.Client
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var shop models.Barbershop
	h.db.First(&shop, barbershopID)
	now := timezone.NowIn(shop.Timezone)

	client.Suspended = true
	client.SuspendedReason = req.Reason
	if client.SuspendedReason == "" {
		client.SuspendedReason = "manual"
	}
	client.SuspendedAt = &now

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_suspend_client", "Erro ao suspender cliente.")
		return
	}

	c.JSON(200, client)
}

// Unsuspend libera o cliente bloqueado por falta para voltar a agendar.
func (h *ClientHandler) Unsuspend(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	client.Suspended = false
	client.SuspendedReason = ""
	client.SuspendedAt = nil

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_unsuspend_client", "Erro ao liberar cliente.")
		return
	}

	c.JSON(200, client)
}
