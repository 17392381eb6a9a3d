package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// AppointmentListDTO is the compact row used by listings.
type AppointmentListDTO struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientID    string    `json:"client_id"`
	BarberID    string    `json:"barber_id"`
	TotalAmount int64     `json:"total_amount"`
}

func NewAppointmentList(aps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime.In(loc),
			EndTime:     ap.EndTime.In(loc),
			Status:      ap.Status,
			ClientID:    ap.ClientID,
			BarberID:    ap.BarberID,
			TotalAmount: ap.TotalAmount,
		})
	}
	return out
}
