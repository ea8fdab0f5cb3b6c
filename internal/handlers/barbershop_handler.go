package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopConfigRequest struct {
	SlotGranularityMin *int    `json:"slot_granularity_min"`
	Timezone           *string `json:"timezone"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopIDVal, _ := c.Get(middleware.ContextBarbershopID)
	barbershopID := barbershopIDVal.(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopIDVal, _ := c.Get(middleware.ContextBarbershopID)
	barbershopID := barbershopIDVal.(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	var req UpdateBarbershopConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.SlotGranularityMin != nil {
		// passo da grade precisa dividir a hora em fatias inteiras
		switch *req.SlotGranularityMin {
		case 10, 15, 20, 30, 60:
			shop.SlotGranularityMin = *req.SlotGranularityMin
		default:
			httperr.BadRequest(c, "invalid_slot_granularity", "Passo da grade inválido (use 10, 15, 20, 30 ou 60 minutos).")
			return
		}
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar as configurações da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
