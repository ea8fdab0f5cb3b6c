package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func approvedCutPlan() *models.Plan {
	return &models.Plan{
		ID:          1,
		PlanType:    TypeCut,
		Status:      StatusApproved,
		CutQuota:    4,
		AllowedDays: "1,2,3,4",
		Priority:    PriorityNormal,
	}
}

func planCut(status string, day int) models.Appointment {
	start := time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
	return models.Appointment{
		ServiceCategory: models.CategoryCut,
		IsPlanBooking:   true,
		Status:          status,
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
	}
}

func TestValidPeriod(t *testing.T) {
	start, end := ValidPeriod(testNow)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestIsUsable(t *testing.T) {
	inMonth := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	t.Run("sem plano", func(t *testing.T) {
		ok, reason := IsUsable(nil, inMonth, testNow)
		assert.False(t, ok)
		assert.Equal(t, "no_plan", reason)
	})

	t.Run("plano pendente", func(t *testing.T) {
		p := approvedCutPlan()
		p.Status = StatusPending
		ok, reason := IsUsable(p, inMonth, testNow)
		assert.False(t, ok)
		assert.Equal(t, "plan_not_approved", reason)
	})

	t.Run("plano desativado", func(t *testing.T) {
		p := approvedCutPlan()
		p.Status = StatusDeactivated
		ok, _ := IsUsable(p, inMonth, testNow)
		assert.False(t, ok)
	})

	t.Run("dentro do mês corrente", func(t *testing.T) {
		ok, _ := IsUsable(approvedCutPlan(), inMonth, testNow)
		assert.True(t, ok)
	})

	t.Run("mês seguinte fica fora", func(t *testing.T) {
		nextMonth := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
		ok, reason := IsUsable(approvedCutPlan(), nextMonth, testNow)
		assert.False(t, ok)
		assert.Equal(t, "outside_plan_period", reason)
	})
}

func TestIsDayAllowed(t *testing.T) {
	p := approvedCutPlan() // seg–qui

	monday := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	thursday := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsDayAllowed(p, monday))
	assert.True(t, IsDayAllowed(p, thursday))
	assert.False(t, IsDayAllowed(p, friday))
	assert.False(t, IsDayAllowed(p, sunday))
}

func TestComputeUsage_Quota(t *testing.T) {
	p := approvedCutPlan()

	t.Run("mês vazio", func(t *testing.T) {
		u := ComputeUsage(p, nil)
		assert.Equal(t, 0, u.CutsUsed)
		require.NotNil(t, u.CutsRemaining)
		assert.Equal(t, 4, *u.CutsRemaining)
		assert.True(t, u.CanUsePlan)
	})

	t.Run("pendente, confirmado e concluído contam", func(t *testing.T) {
		u := ComputeUsage(p, []models.Appointment{
			planCut("pending", 2),
			planCut("confirmed", 3),
			planCut("completed", 4),
		})
		assert.Equal(t, 3, u.CutsUsed)
		assert.True(t, u.CanUsePlan)
	})

	t.Run("cancelado e falta devolvem a cota", func(t *testing.T) {
		u := ComputeUsage(p, []models.Appointment{
			planCut("cancelled", 2),
			planCut("no_show", 3),
		})
		assert.Equal(t, 0, u.CutsUsed)
	})

	t.Run("cota esgotada", func(t *testing.T) {
		u := ComputeUsage(p, []models.Appointment{
			planCut("completed", 2),
			planCut("completed", 3),
			planCut("completed", 4),
			planCut("pending", 5),
		})
		assert.Equal(t, 4, u.CutsUsed)
		require.NotNil(t, u.CutsRemaining)
		assert.Equal(t, 0, *u.CutsRemaining)
		assert.False(t, u.CanUsePlan)
		assert.Equal(t, "plan_limit_reached", u.Reason)
	})

	t.Run("corte avulso não consome cota", func(t *testing.T) {
		walkin := planCut("completed", 2)
		walkin.IsPlanBooking = false
		u := ComputeUsage(p, []models.Appointment{walkin})
		assert.Equal(t, 0, u.CutsUsed)
	})

	t.Run("ilimitado não tem limite", func(t *testing.T) {
		unlimited := approvedCutPlan()
		unlimited.UnlimitedCuts = true

		apps := make([]models.Appointment, 0, 10)
		for day := 2; day < 12; day++ {
			apps = append(apps, planCut("completed", day))
		}

		u := ComputeUsage(unlimited, apps)
		assert.Equal(t, 10, u.CutsUsed)
		assert.Nil(t, u.CutsLimit)
		assert.True(t, u.CanUsePlan)
	})
}

func TestCovers(t *testing.T) {
	basic := approvedCutPlan()
	premium := &models.Plan{
		PlanType:        TypePremium,
		Status:          StatusApproved,
		UnlimitedCuts:   true,
		UnlimitedBeard:  true,
		EyebrowIncluded: true,
		AllowedDays:     "1,2,3,4,5,6",
	}

	usageOK := Usage{CanUsePlan: true}
	usageSpent := Usage{CanUsePlan: false}

	t.Run("corte com cota disponível", func(t *testing.T) {
		ok, _ := Covers(basic, models.CategoryCut, usageOK)
		assert.True(t, ok)
	})

	t.Run("corte com cota esgotada", func(t *testing.T) {
		ok, reason := Covers(basic, models.CategoryCut, usageSpent)
		assert.False(t, ok)
		assert.Equal(t, "plan_limit_reached", reason)
	})

	t.Run("barba só nos planos com barba", func(t *testing.T) {
		ok, reason := Covers(basic, models.CategoryBeard, usageOK)
		assert.False(t, ok)
		assert.Equal(t, "service_not_covered", reason)

		ok, _ = Covers(premium, models.CategoryBeard, usageSpent)
		assert.True(t, ok)
	})

	t.Run("sobrancelha só no premium", func(t *testing.T) {
		ok, _ := Covers(basic, models.CategoryEyebrow, usageOK)
		assert.False(t, ok)

		ok, _ = Covers(premium, models.CategoryEyebrow, usageOK)
		assert.True(t, ok)
	})

	t.Run("categoria fora do clube paga sempre", func(t *testing.T) {
		ok, reason := Covers(premium, models.CategoryOther, usageOK)
		assert.False(t, ok)
		assert.Equal(t, "service_not_covered", reason)
	})
}

func TestPriceFor(t *testing.T) {
	service := &models.Service{Price: 35}

	assert.Equal(t, 0.0, PriceFor(service, true))
	assert.Equal(t, 35.0, PriceFor(service, false))
}

func TestLifecycle(t *testing.T) {
	t.Run("aprova pendente", func(t *testing.T) {
		p := &models.Plan{Status: StatusPending}
		require.NoError(t, Approve(p, testNow))
		assert.Equal(t, StatusApproved, p.Status)
		assert.NotNil(t, p.ApprovedAt)
	})

	t.Run("não aprova duas vezes", func(t *testing.T) {
		p := &models.Plan{Status: StatusApproved}
		err := Approve(p, testNow)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("rejeita pendente", func(t *testing.T) {
		p := &models.Plan{Status: StatusPending}
		require.NoError(t, Reject(p, testNow))
		assert.Equal(t, StatusRejected, p.Status)
	})

	t.Run("rejeitado não desativa", func(t *testing.T) {
		p := &models.Plan{Status: StatusRejected}
		err := Deactivate(p, testNow)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("desativa aprovado", func(t *testing.T) {
		p := &models.Plan{Status: StatusApproved}
		require.NoError(t, Deactivate(p, testNow))
		assert.Equal(t, StatusDeactivated, p.Status)
		assert.NotNil(t, p.DeactivatedAt)
	})
}

func TestCatalog(t *testing.T) {
	catalog := NewCatalog(4)

	t.Run("corte básico", func(t *testing.T) {
		p := &models.Plan{PlanType: TypeCut}
		require.NoError(t, catalog.Apply(p))
		assert.False(t, p.UnlimitedCuts)
		assert.Equal(t, 4, p.CutQuota)
		assert.Equal(t, "1,2,3,4", p.AllowedDays)
		assert.Equal(t, PriorityNormal, p.Priority)
		assert.Equal(t, 0, p.ProductDiscount)
	})

	t.Run("corte e barba", func(t *testing.T) {
		p := &models.Plan{PlanType: TypeCutBeard}
		require.NoError(t, catalog.Apply(p))
		assert.True(t, p.UnlimitedCuts)
		assert.True(t, p.UnlimitedBeard)
		assert.False(t, p.EyebrowIncluded)
		assert.Equal(t, "1,2,3,4,5", p.AllowedDays)
		assert.Equal(t, 5, p.ProductDiscount)
	})

	t.Run("premium", func(t *testing.T) {
		p := &models.Plan{PlanType: TypePremium}
		require.NoError(t, catalog.Apply(p))
		assert.True(t, p.EyebrowIncluded)
		assert.True(t, p.FixedSchedule)
		assert.Equal(t, PriorityMax, p.Priority)
		assert.Equal(t, 10, p.ProductDiscount)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		p := &models.Plan{PlanType: "anual"}
		err := catalog.Apply(p)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "unknown_plan_type"))
	})

	t.Run("custom não é tipo fixo", func(t *testing.T) {
		assert.True(t, catalog.IsFixedType(TypeCut))
		assert.False(t, catalog.IsFixedType(TypeCustom))
	})
}

func TestParseFormatDays(t *testing.T) {
	days := ParseDays("1,2,3,4")
	assert.True(t, days[time.Monday])
	assert.True(t, days[time.Thursday])
	assert.False(t, days[time.Friday])
	assert.False(t, days[time.Sunday])

	assert.Equal(t, "1,2,3", FormatDays([]int{1, 2, 3}))
	assert.Empty(t, ParseDays(""))
	assert.Empty(t, ParseDays("9,abc"))
}

func TestValidateCustom(t *testing.T) {
	valid := func() *models.Plan {
		return &models.Plan{
			PlanType:    TypeCustom,
			CutQuota:    6,
			AllowedDays: "1,3,5",
			Priority:    PriorityNormal,
		}
	}

	t.Run("custom válido", func(t *testing.T) {
		assert.NoError(t, ValidateCustom(valid()))
	})

	t.Run("sem dias permitidos", func(t *testing.T) {
		p := valid()
		p.AllowedDays = ""
		err := ValidateCustom(p)
		assert.True(t, httperr.IsBusiness(err, "invalid_allowed_days"))
	})

	t.Run("prioridade inválida", func(t *testing.T) {
		p := valid()
		p.Priority = "vip"
		err := ValidateCustom(p)
		assert.True(t, httperr.IsBusiness(err, "invalid_priority"))
	})

	t.Run("desconto fora da tabela", func(t *testing.T) {
		p := valid()
		p.ProductDiscount = 7
		err := ValidateCustom(p)
		assert.True(t, httperr.IsBusiness(err, "invalid_product_discount"))
	})

	t.Run("cota zerada sem ilimitado", func(t *testing.T) {
		p := valid()
		p.CutQuota = 0
		err := ValidateCustom(p)
		assert.True(t, httperr.IsBusiness(err, "invalid_cut_quota"))
	})
}
