package models

import "time"

// Exceção de calendário (feriado, evento, horário estendido).
// Sempre sobrepõe o horário semanal na data correspondente.
type SpecialDay struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex:idx_special_day_shop_date" json:"barbershop_id"`

	// Data no formato 2006-01-02, no timezone da barbearia
	Date string `gorm:"size:10;uniqueIndex:idx_special_day_shop_date" json:"date"`

	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
