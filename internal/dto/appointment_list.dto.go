package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-club/internal/models"
)

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	PublicRef     string    `json:"public_ref"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	ClientName    string    `json:"client_name"`
	ServiceName   string    `json:"service_name"`
	Price         float64   `json:"price"`
	IsPlanBooking bool      `json:"is_plan_booking"`
}

func FromModel(ap *models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		PublicRef:     ap.PublicRef,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Status:        ap.Status,
		ClientName:    ap.Client.Name,
		ServiceName:   ap.ServiceName,
		Price:         ap.Price,
		IsPlanBooking: ap.IsPlanBooking,
	}
}
