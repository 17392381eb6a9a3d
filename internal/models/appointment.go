package models

import "time"

type Appointment struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	ClientID     string `gorm:"size:64;not null;index" json:"client_id"`
	ClientUserID string `gorm:"size:64;not null" json:"client_user_id"`

	BarberID     string `gorm:"size:64;not null;index:idx_appointments_barber_start,priority:1" json:"barber_id"`
	BarberUserID string `gorm:"size:64;not null" json:"barber_user_id"`

	StartTime time.Time `gorm:"not null;index:idx_appointments_barber_start,priority:2" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	TotalAmount int64 `gorm:"not null" json:"total_amount"`

	Status string `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"services"`

	ClientNotes   string `gorm:"size:500" json:"client_notes"`
	InternalNotes string `gorm:"size:500" json:"internal_notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CancelledAt        *time.Time `json:"cancelled_at"`
	CancelledBy        string     `gorm:"size:64" json:"cancelled_by"`
	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ap *Appointment) Duration() time.Duration {
	return ap.EndTime.Sub(ap.StartTime)
}
