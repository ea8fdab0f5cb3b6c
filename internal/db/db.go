package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-club/internal/config"
	"github.com/BruksfildServices01/barber-club/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Service{},
		&models.WeekSchedule{},
		&models.SpecialDay{},
		&models.Client{},
		&models.Plan{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE barbershops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone)

	migrateAppointmentExclusion(db)
	validateWeekSchedules(db)

	return db
}

// Anteparo no banco contra double-booking: o intervalo do agendamento
// ativo é exclusivo por barbearia. Violação sai como 23P01 e o
// repositório traduz em time_conflict.
func migrateAppointmentExclusion(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}

	var existing int64
	if err := db.Raw(`
        SELECT count(*)
        FROM pg_constraint
        WHERE conname = 'appointments_no_overlap'
    `).Scan(&existing).Error; err != nil {
		log.Fatalf("failed to inspect constraints: %v", err)
	}
	if existing > 0 {
		return
	}

	if err := db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            barbershop_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('pending', 'confirmed'))
    `).Error; err != nil {
		log.Fatalf("failed to create exclusion constraint: %v", err)
	}
}

// Semana incompleta é defeito de implantação: derruba o processo na
// subida em vez de falhar request a request.
func validateWeekSchedules(db *gorm.DB) {
	var shops []models.Barbershop
	if err := db.Find(&shops).Error; err != nil {
		log.Fatalf("failed to load barbershops: %v", err)
	}

	for _, shop := range shops {
		var week []models.WeekSchedule
		if err := db.
			Where("barbershop_id = ?", shop.ID).
			Find(&week).Error; err != nil {
			log.Fatalf("failed to load week schedule for shop %d: %v", shop.ID, err)
		}

		// barbearia recém-criada ainda sem grade: nada a validar
		if len(week) == 0 {
			continue
		}

		if err := schedule.ValidateWeekSchedule(week); err != nil {
			log.Fatalf("invalid week schedule for shop %d (%s): %v", shop.ID, shop.Slug, err)
		}
	}
}
