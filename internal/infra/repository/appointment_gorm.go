package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *AppointmentGormRepository) GetClientByPhone(
	ctx context.Context,
	barbershopID uint,
	phone string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", clientID, barbershopID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// --------------------------------------------------
// Calendário
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWeekSchedule(
	ctx context.Context,
	barbershopID uint,
) ([]models.WeekSchedule, error) {

	var week []models.WeekSchedule
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("weekday ASC").
		Find(&week).Error; err != nil {
		return nil, err
	}
	return week, nil
}

func (r *AppointmentGormRepository) GetSpecialDay(
	ctx context.Context,
	barbershopID uint,
	date string,
) (*models.SpecialDay, error) {

	var sd models.SpecialDay
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND date = ?", barbershopID, date).
		First(&sd).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sd, nil
}

// --------------------------------------------------
// Appointment (commit transacional)
// --------------------------------------------------

// lockShopAgenda serializa os commits da barbearia dentro da
// transação corrente (o lock solta sozinho no commit/rollback).
func lockShopAgenda(tx *gorm.DB, barbershopID uint) *gorm.DB {
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(barbershopID))
}

// overlapScope filtra os agendamentos ativos que cruzam [start, end).
func overlapScope(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	return tx.Model(&models.Appointment{}).Where(
		"barbershop_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
		ap.BarbershopID,
		domain.ActiveStatuses,
		ap.EndTime,
		ap.StartTime,
	)
}

// planUsageScope filtra os cortes de plano que contam na cota do mês.
func planUsageScope(tx *gorm.DB, quota *domain.QuotaCheck) *gorm.DB {
	return tx.Model(&models.Appointment{}).Where(
		"client_id = ? AND service_category = ? AND is_plan_booking = ? AND status IN ? AND start_time >= ? AND start_time < ?",
		quota.ClientID,
		quota.Category,
		true,
		[]string{"pending", "confirmed", "completed"},
		quota.MonthStart,
		quota.MonthEnd,
	)
}

// CommitAppointment fecha a corrida do horário. O advisory lock
// transacional serializa os commits da mesma barbearia: num horário
// vago não existe linha para um FOR UPDATE segurar, então duas
// transações concorrentes contariam zero conflitos e inseririam as
// duas. Com a serialização, conflito e cota são reconferidos com
// SELECTs simples (Postgres rejeita FOR UPDATE em count(*)). A
// exclusion constraint appointments_no_overlap é o anteparo no banco
// para escrita que entre por fora desta transação.
func (r *AppointmentGormRepository) CommitAppointment(
	ctx context.Context,
	ap *models.Appointment,
	quota *domain.QuotaCheck,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := lockShopAgenda(tx, ap.BarbershopID).Error; err != nil {
			return err
		}

		var conflicts int64
		if err := overlapScope(tx, ap).Count(&conflicts).Error; err != nil {
			return err
		}

		if conflicts > 0 {
			return httperr.ErrConflict("time_conflict")
		}

		if quota != nil {
			var used int64
			if err := planUsageScope(tx, quota).Count(&used).Error; err != nil {
				return err
			}

			if int(used) >= quota.Limit {
				return httperr.ErrPolicy("plan_limit_reached")
			}
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrConflict("time_conflict")
			}
			return err
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (leitura)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", appointmentID, barbershopID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByRef(
	ctx context.Context,
	barbershopID uint,
	publicRef string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("public_ref = ? AND barbershop_id = ?", publicRef, barbershopID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListActiveForDay(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"barbershop_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			barbershopID, domain.ActiveStatuses, end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"barbershop_id = ? AND start_time >= ? AND start_time < ?",
			barbershopID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListPlanBookingsForPeriod(
	ctx context.Context,
	clientID uint,
	category string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Where(
			"client_id = ? AND service_category = ? AND is_plan_booking = ? AND start_time >= ? AND start_time < ?",
			clientID,
			category,
			true,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Falta: transição do agendamento + suspensão do cliente juntas
func (r *AppointmentGormRepository) UpdateAppointmentAndClient(
	ctx context.Context,
	ap *models.Appointment,
	client *models.Client,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}
		return tx.Save(client).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
