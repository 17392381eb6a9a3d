package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// ErrRecordNotFound is returned by every lookup below when the id is absent.
var ErrRecordNotFound = errors.New("record not found")

// Catalog resolves service ids to their current price and duration.
type Catalog interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
}

// Directory resolves the parties of a booking.
type Directory interface {
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetClientByUserID(ctx context.Context, userID string) (*models.Client, error)
}

// IntervalIndex returns every appointment of a barber whose interval
// intersects [from, to), whatever its status, ordered by start.
type IntervalIndex interface {
	ReservationsBetween(
		ctx context.Context,
		barberID string,
		from time.Time,
		to time.Time,
	) ([]Reservation, error)
}

// Tx is the unit of work used for every state change. Reads made through it
// see the transaction's own writes.
type Tx interface {
	IntervalIndex

	// LockBarber serialises writers on one barber's schedule until the
	// transaction ends.
	LockBarber(ctx context.Context, barberID string) error

	GetAppointmentForUpdate(ctx context.Context, id string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
}

type Repository interface {
	IntervalIndex

	// -------- Appointment (read) --------
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	ListByBarber(ctx context.Context, barberID string) ([]models.Appointment, error)
	ListAll(ctx context.Context, offset, limit int) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	// InTx runs fn in one transaction; any error from fn rolls it back.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
