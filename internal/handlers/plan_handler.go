package handlers

import (
	"github.com/gin-gonic/gin"

	planDomain "github.com/BruksfildServices01/barber-club/internal/domain/plan"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/httpresp"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	ucPlan "github.com/BruksfildServices01/barber-club/internal/usecase/plan"
)

// ======================================================
// HANDLER
// ======================================================

type PlanHandler struct {
	repo planDomain.Repository

	approveUC    *ucPlan.ApprovePlan
	rejectUC     *ucPlan.RejectPlan
	deactivateUC *ucPlan.DeactivatePlan
}

func NewPlanHandler(
	repo planDomain.Repository,
	approveUC *ucPlan.ApprovePlan,
	rejectUC *ucPlan.RejectPlan,
	deactivateUC *ucPlan.DeactivatePlan,
) *PlanHandler {
	return &PlanHandler{
		repo:         repo,
		approveUC:    approveUC,
		rejectUC:     rejectUC,
		deactivateUC: deactivateUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *PlanHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	plans, err := h.repo.ListPlans(
		c.Request.Context(),
		barbershopID,
		c.Query("status"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_plans", "Erro ao listar planos.")
		return
	}

	httpresp.List(c, plans)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *PlanHandler) Approve(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	p, err := h.approveUC.Execute(c.Request.Context(), barbershopID, userID, id)
	if err != nil {
		if httperr.IsBusiness(err, "client_already_has_plan") {
			httperr.Unprocessable(c, "client_already_has_plan",
				"Cliente já possui um plano aprovado. Desative o atual antes de aprovar outro.")
			return
		}
		httperr.FromError(c, err, "Plano não pode ser aprovado.")
		return
	}

	c.JSON(200, p)
}

func (h *PlanHandler) Reject(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	p, err := h.rejectUC.Execute(c.Request.Context(), barbershopID, userID, id)
	if err != nil {
		httperr.FromError(c, err, "Plano não pode ser rejeitado.")
		return
	}

	c.JSON(200, p)
}

func (h *PlanHandler) Deactivate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	p, err := h.deactivateUC.Execute(c.Request.Context(), barbershopID, userID, id)
	if err != nil {
		httperr.FromError(c, err, "Plano não pode ser desativado.")
		return
	}

	c.JSON(200, p)
}
