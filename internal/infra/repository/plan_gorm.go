package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-club/internal/domain/plan"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

type PlanGormRepository struct {
	db *gorm.DB
}

func NewPlanGormRepository(db *gorm.DB) *PlanGormRepository {
	return &PlanGormRepository{db: db}
}

func (r *PlanGormRepository) CreatePlan(
	ctx context.Context,
	p *models.Plan,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlanGormRepository) GetPlan(
	ctx context.Context,
	barbershopID uint,
	planID uint,
) (*models.Plan, error) {

	var p models.Plan
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND barbershop_id = ?", planID, barbershopID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanGormRepository) GetApprovedPlanForClient(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Plan, error) {

	var p models.Plan
	err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND client_id = ? AND status = ?",
			barbershopID, clientID, domain.StatusApproved,
		).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanGormRepository) HasApprovedPlan(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
	excludePlanID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Plan{}).
		Where(
			"barbershop_id = ? AND client_id = ? AND status = ? AND id <> ?",
			barbershopID, clientID, domain.StatusApproved, excludePlanID,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PlanGormRepository) UpdatePlan(
	ctx context.Context,
	p *models.Plan,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PlanGormRepository) ListPlans(
	ctx context.Context,
	barbershopID uint,
	status string,
) ([]models.Plan, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Where("barbershop_id = ?", barbershopID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var plans []models.Plan
	if err := q.Order("requested_at DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Compile-time check
var _ domain.Repository = (*PlanGormRepository)(nil)
