package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-club/internal/httperr"
	"github.com/BruksfildServices01/barber-club/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes.
// CommitAppointment reproduz o contrato transacional do Postgres:
// conferência de conflito + cota + insert sob o mesmo lock.
type fakeRepo struct {
	mu sync.Mutex

	shop    models.Barbershop
	week    []models.WeekSchedule
	special map[string]*models.SpecialDay

	services map[uint]models.Service
	clients  map[uint]*models.Client

	appointments []*models.Appointment
	nextClientID uint
	nextApptID   uint
}

func newFakeRepo() *fakeRepo {
	week := make([]models.WeekSchedule, 0, 7)
	for weekday := 0; weekday <= 6; weekday++ {
		week = append(week, models.WeekSchedule{
			BarbershopID: 1,
			Weekday:      weekday,
			IsOpen:       true,
			OpenTime:     "09:00",
			CloseTime:    "18:00",
		})
	}

	return &fakeRepo{
		shop: models.Barbershop{
			ID:                 1,
			Slug:               "clube-do-corte",
			SlotGranularityMin: 15,
		},
		week:         week,
		special:      map[string]*models.SpecialDay{},
		services:     map[uint]models.Service{},
		clients:      map[uint]*models.Client{},
		nextClientID: 1,
		nextApptID:   1,
	}
}

func (r *fakeRepo) addService(s models.Service) {
	r.services[s.ID] = s
}

// seed injeta um agendamento direto na agenda, sem passar pelo commit.
func (r *fakeRepo) seed(ap models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap.ID = r.nextApptID
	r.nextApptID++
	r.appointments = append(r.appointments, &ap)
}

func (r *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != r.shop.ID {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}
	shop := r.shop
	return &shop, nil
}

func (r *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if slug != r.shop.Slug {
		return nil, httperr.ErrNotFoundCode("barbershop_not_found")
	}
	shop := r.shop
	return &shop, nil
}

func (r *fakeRepo) GetService(_ context.Context, _ uint, serviceID uint) (*models.Service, error) {
	s, ok := r.services[serviceID]
	if !ok {
		return nil, httperr.ErrNotFoundCode("service_not_found")
	}
	return &s, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if c.Phone == phone {
			return c, nil
		}
	}

	c := &models.Client{
		ID:           r.nextClientID,
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}
	r.nextClientID++
	r.clients[c.ID] = c
	return c, nil
}

func (r *fakeRepo) GetClientByPhone(_ context.Context, _ uint, phone string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, httperr.ErrNotFoundCode("client_not_found")
}

func (r *fakeRepo) GetClientByID(_ context.Context, _ uint, clientID uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[clientID]
	if !ok {
		return nil, httperr.ErrNotFoundCode("client_not_found")
	}
	return c, nil
}

func (r *fakeRepo) UpdateClient(_ context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.ID] = client
	return nil
}

func (r *fakeRepo) GetWeekSchedule(_ context.Context, _ uint) ([]models.WeekSchedule, error) {
	return r.week, nil
}

func (r *fakeRepo) GetSpecialDay(_ context.Context, _ uint, date string) (*models.SpecialDay, error) {
	return r.special[date], nil
}

func (r *fakeRepo) CommitAppointment(_ context.Context, ap *models.Appointment, quota *domain.QuotaCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if !domain.Status(existing.Status).IsActive() {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, existing.StartTime, existing.EndTime) {
			return httperr.ErrConflict("time_conflict")
		}
	}

	if quota != nil {
		used := 0
		for _, existing := range r.appointments {
			if existing.ClientID != quota.ClientID ||
				!existing.IsPlanBooking ||
				existing.ServiceCategory != quota.Category {
				continue
			}
			switch domain.Status(existing.Status) {
			case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted:
			default:
				continue
			}
			if existing.StartTime.Before(quota.MonthStart) || !existing.StartTime.Before(quota.MonthEnd) {
				continue
			}
			used++
		}
		if used >= quota.Limit {
			return httperr.ErrPolicy("plan_limit_reached")
		}
	}

	ap.ID = r.nextApptID
	r.nextApptID++
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, _ uint, appointmentID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID == appointmentID {
			return ap, nil
		}
	}
	return nil, httperr.ErrNotFoundCode("appointment_not_found")
}

func (r *fakeRepo) GetAppointmentByRef(_ context.Context, _ uint, publicRef string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.PublicRef == publicRef {
			return ap, nil
		}
	}
	return nil, httperr.ErrNotFoundCode("appointment_not_found")
}

func (r *fakeRepo) ListActiveForDay(_ context.Context, _ uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if !domain.Status(ap.Status).IsActive() {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListForPeriod(_ context.Context, _ uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListPlanBookingsForPeriod(_ context.Context, clientID uint, category string, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID != clientID || !ap.IsPlanBooking || ap.ServiceCategory != category {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return httperr.ErrNotFoundCode("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointmentAndClient(ctx context.Context, ap *models.Appointment, client *models.Client) error {
	if err := r.UpdateAppointment(ctx, ap); err != nil {
		return err
	}
	return r.UpdateClient(ctx, client)
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakePlanRepo guarda no máximo um plano aprovado por cliente.
type fakePlanRepo struct {
	mu    sync.Mutex
	plans []*models.Plan
}

func (r *fakePlanRepo) CreatePlan(_ context.Context, p *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uint(len(r.plans) + 1)
	r.plans = append(r.plans, p)
	return nil
}

func (r *fakePlanRepo) GetPlan(_ context.Context, _ uint, planID uint) (*models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ID == planID {
			return p, nil
		}
	}
	return nil, httperr.ErrNotFoundCode("plan_not_found")
}

func (r *fakePlanRepo) GetApprovedPlanForClient(_ context.Context, _ uint, clientID uint) (*models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ClientID == clientID && p.Status == "approved" {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) HasApprovedPlan(_ context.Context, _ uint, clientID uint, excludePlanID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ClientID == clientID && p.Status == "approved" && p.ID != excludePlanID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlanRepo) UpdatePlan(_ context.Context, p *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.plans {
		if existing.ID == p.ID {
			r.plans[i] = p
			return nil
		}
	}
	return httperr.ErrNotFoundCode("plan_not_found")
}

func (r *fakePlanRepo) ListPlans(_ context.Context, _ uint, status string) ([]models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Plan
	for _, p := range r.plans {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}
