package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência pública (uuid) usada pelo cliente para cancelar sem login
	PublicRef string `gorm:"size:36;uniqueIndex;not null" json:"public_ref"`

	BarbershopID uint       `gorm:"index:idx_appointments_shop_start" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Snapshot do serviço no momento do agendamento (catálogo pode mudar depois)
	ServiceName     string  `gorm:"size:100" json:"service_name"`
	ServiceCategory string  `gorm:"size:50" json:"service_category"`
	Price           float64 `json:"price"`
	DurationMin     int     `json:"duration_min"`

	StartTime time.Time `gorm:"index:idx_appointments_shop_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// true quando o horário foi coberto pelo plano (preço zerado)
	IsPlanBooking bool  `gorm:"default:false" json:"is_plan_booking"`
	PlanID        *uint `json:"plan_id"`

	Notes        string `gorm:"size:255" json:"notes"`
	CancelReason string `gorm:"size:255" json:"cancel_reason"`
	NoShowNote   string `gorm:"size:255" json:"no_show_note"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
