package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

type AppointmentServiceDTO struct {
	ServiceID   string `json:"service_id"`
	UnitPrice   int64  `json:"unit_price"`
	DurationMin int    `json:"duration_min"`
}

// AppointmentDTO is the full view of an appointment. Times are rendered in
// the scheduling timezone.
type AppointmentDTO struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	BarberID string `json:"barber_id"`

	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `json:"status"`

	Services []AppointmentServiceDTO `json:"services"`

	ClientNotes   string `json:"client_notes,omitempty"`
	InternalNotes string `json:"internal_notes,omitempty"`

	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	NoShowAt           *time.Time `json:"no_show_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAppointmentDTO(ap *models.Appointment, loc *time.Location) AppointmentDTO {
	out := AppointmentDTO{
		ID:                 ap.ID,
		ClientID:           ap.ClientID,
		BarberID:           ap.BarberID,
		StartTime:          ap.StartTime.In(loc),
		EndTime:            ap.EndTime.In(loc),
		DurationMin:        int(ap.Duration().Minutes()),
		TotalAmount:        ap.TotalAmount,
		Status:             ap.Status,
		Services:           make([]AppointmentServiceDTO, 0, len(ap.Services)),
		ClientNotes:        ap.ClientNotes,
		InternalNotes:      ap.InternalNotes,
		ConfirmedAt:        inLoc(ap.ConfirmedAt, loc),
		StartedAt:          inLoc(ap.StartedAt, loc),
		CompletedAt:        inLoc(ap.CompletedAt, loc),
		NoShowAt:           inLoc(ap.NoShowAt, loc),
		CancelledAt:        inLoc(ap.CancelledAt, loc),
		CancelledBy:        ap.CancelledBy,
		CancellationReason: ap.CancellationReason,
		CreatedAt:          ap.CreatedAt.In(loc),
		UpdatedAt:          ap.UpdatedAt.In(loc),
	}

	for _, s := range ap.Services {
		out.Services = append(out.Services, AppointmentServiceDTO{
			ServiceID:   s.ServiceID,
			UnitPrice:   s.UnitPrice,
			DurationMin: s.DurationMin,
		})
	}

	return out
}

func inLoc(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}
