package models

import "time"

// Categorias usadas pelo motor de planos (cobertura por tipo de serviço)
const (
	CategoryCut     = "corte"
	CategoryBeard   = "barba"
	CategoryEyebrow = "sobrancelha"
	CategoryOther   = "outro"
)

type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Category    string  `gorm:"size:50;default:'outro'" json:"category"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
