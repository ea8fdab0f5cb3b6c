package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/httpresp"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Price       float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	DurationMin *int     `json:"duration_min"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

func validCategory(category string) bool {
	switch category {
	case models.CategoryCut, models.CategoryBeard, models.CategoryEyebrow, models.CategoryOther:
		return true
	}
	return false
}

// ======================================================
// CRUD
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var services []models.Service
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&services)

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validCategory(req.Category) {
		httperr.BadRequest(c, "invalid_category", "Categoria inválida.")
		return
	}
	if req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser positiva.")
		return
	}

	service := models.Service{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		DurationMin:  req.DurationMin,
		Price:        req.Price,
		Active:       true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(201, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			httperr.BadRequest(c, "invalid_category", "Categoria inválida.")
			return
		}
		service.Category = *req.Category
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duração deve ser positiva.")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(200, service)
}
