package models

import "time"

type Plan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint `json:"barbershop_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// corte | corte_barba | premium | custom
	PlanType string `gorm:"size:30;not null" json:"plan_type"`

	// pending | approved | rejected | deactivated
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// -------- Benefícios do plano --------
	UnlimitedCuts   bool `json:"unlimited_cuts"`
	UnlimitedBeard  bool `json:"unlimited_beard"`
	EyebrowIncluded bool `json:"eyebrow_included"`

	// Cota mensal de cortes quando UnlimitedCuts=false
	CutQuota int `gorm:"default:4" json:"cut_quota"`

	// Dias da semana permitidos, CSV de 0..6 (ex.: "1,2,3,4")
	AllowedDays string `gorm:"size:20" json:"allowed_days"`

	// normal | medium | max — dica de priorização na vitrine, não afeta a agenda
	Priority string `gorm:"size:10;default:'normal'" json:"priority"`

	// Desconto em produtos da loja: 0, 5 ou 10 (%)
	ProductDiscount int `gorm:"default:0" json:"product_discount"`

	FixedSchedule    bool   `json:"fixed_schedule"`
	SelectedSchedule string `gorm:"size:50" json:"selected_schedule"`

	RequestedAt   time.Time  `json:"requested_at"`
	ApprovedAt    *time.Time `json:"approved_at"`
	RejectedAt    *time.Time `json:"rejected_at"`
	DeactivatedAt *time.Time `json:"deactivated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
