package plan

import (
	"context"

	"github.com/BruksfildServices01/barber-club/internal/models"
)

type Repository interface {
	CreatePlan(
		ctx context.Context,
		p *models.Plan,
	) error

	GetPlan(
		ctx context.Context,
		barbershopID uint,
		planID uint,
	) (*models.Plan, error)

	// Retorna nil (sem erro) quando o cliente não tem plano aprovado
	GetApprovedPlanForClient(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Plan, error)

	// Máximo um plano aprovado por cliente — checado na aprovação
	HasApprovedPlan(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
		excludePlanID uint,
	) (bool, error)

	UpdatePlan(
		ctx context.Context,
		p *models.Plan,
	) error

	ListPlans(
		ctx context.Context,
		barbershopID uint,
		status string,
	) ([]models.Plan, error)
}
