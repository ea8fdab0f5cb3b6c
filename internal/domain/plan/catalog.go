package plan

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

// ===============================
// Tipos de plano
// ===============================

const (
	TypeCut      = "corte"       // cortes com cota mensal, seg–qui
	TypeCutBeard = "corte_barba" // corte + barba ilimitados, seg–sex
	TypePremium  = "premium"     // tudo incluso, seg–sáb
	TypeCustom   = "custom"      // benefícios escolhidos na adesão
)

const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusDeactivated = "deactivated"
)

const (
	PriorityNormal = "normal"
	PriorityMedium = "medium"
	PriorityMax    = "max"
)

// Definition descreve os benefícios de um plano fixo do catálogo.
type Definition struct {
	UnlimitedCuts   bool
	UnlimitedBeard  bool
	EyebrowIncluded bool
	CutQuota        int
	AllowedDays     []int
	Priority        string
	ProductDiscount int
	FixedSchedule   bool
}

// Catalog é carregado na subida do serviço e injetado no motor,
// nunca lido de estado global (facilita fixture nos testes).
type Catalog struct {
	defs map[string]Definition
}

// NewCatalog monta o catálogo fixo. cutQuota é a cota mensal dos
// planos sem corte ilimitado (valor de negócio, vem da config).
func NewCatalog(cutQuota int) *Catalog {
	return &Catalog{
		defs: map[string]Definition{
			TypeCut: {
				CutQuota:    cutQuota,
				AllowedDays: []int{1, 2, 3, 4},
				Priority:    PriorityNormal,
			},
			TypeCutBeard: {
				UnlimitedCuts:   true,
				UnlimitedBeard:  true,
				CutQuota:        0,
				AllowedDays:     []int{1, 2, 3, 4, 5},
				Priority:        PriorityMedium,
				ProductDiscount: 5,
			},
			TypePremium: {
				UnlimitedCuts:   true,
				UnlimitedBeard:  true,
				EyebrowIncluded: true,
				AllowedDays:     []int{1, 2, 3, 4, 5, 6},
				Priority:        PriorityMax,
				ProductDiscount: 10,
				FixedSchedule:   true,
			},
		},
	}
}

// Apply preenche os benefícios de um plano fixo na adesão.
// Plano custom não passa por aqui: os benefícios vêm do pedido.
func (c *Catalog) Apply(p *models.Plan) error {
	def, ok := c.defs[p.PlanType]
	if !ok {
		return httperr.ErrValidation("unknown_plan_type")
	}

	p.UnlimitedCuts = def.UnlimitedCuts
	p.UnlimitedBeard = def.UnlimitedBeard
	p.EyebrowIncluded = def.EyebrowIncluded
	p.CutQuota = def.CutQuota
	p.AllowedDays = FormatDays(def.AllowedDays)
	p.Priority = def.Priority
	p.ProductDiscount = def.ProductDiscount
	p.FixedSchedule = def.FixedSchedule
	return nil
}

func (c *Catalog) IsFixedType(planType string) bool {
	_, ok := c.defs[planType]
	return ok
}

// ===============================
// Dias permitidos (CSV <-> set)
// ===============================

func FormatDays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

func ParseDays(csv string) map[time.Weekday]bool {
	out := make(map[time.Weekday]bool)
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if d, err := strconv.Atoi(part); err == nil && d >= 0 && d <= 6 {
			out[time.Weekday(d)] = true
		}
	}
	return out
}

// ValidateCustom valida os benefícios escolhidos num plano custom.
func ValidateCustom(p *models.Plan) error {
	if len(ParseDays(p.AllowedDays)) == 0 {
		return httperr.ErrValidation("invalid_allowed_days")
	}
	switch p.Priority {
	case PriorityNormal, PriorityMedium, PriorityMax:
	default:
		return httperr.ErrValidation("invalid_priority")
	}
	switch p.ProductDiscount {
	case 0, 5, 10:
	default:
		return httperr.ErrValidation("invalid_product_discount")
	}
	if !p.UnlimitedCuts && p.CutQuota <= 0 {
		return httperr.ErrValidation("invalid_cut_quota")
	}
	return nil
}
