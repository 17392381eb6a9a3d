package models

// AppointmentService is the price and duration of one requested service as
// they were when the appointment was booked. Rows are never updated.
type AppointmentService struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	AppointmentID string `gorm:"size:36;not null;index" json:"-"`
	Position      int    `gorm:"not null" json:"position"`

	ServiceID   string `gorm:"size:64;not null" json:"service_id"`
	UnitPrice   int64  `gorm:"not null" json:"unit_price"`
	DurationMin int    `gorm:"not null" json:"duration_min"`
}
