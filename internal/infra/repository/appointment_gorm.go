package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func withServices(db *gorm.DB) *gorm.DB {
	return db.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := withServices(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, translate(err, "get appointment")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ReservationsBetween(
	ctx context.Context,
	barberID string,
	from time.Time,
	to time.Time,
) ([]domain.Reservation, error) {
	return reservationsBetween(r.db.WithContext(ctx), barberID, from, to)
}

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("client_id = ?", clientID), 0, 0)
}

func (r *AppointmentGormRepository) ListByBarber(
	ctx context.Context,
	barberID string,
) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("barber_id = ?", barberID), 0, 0)
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Appointment, error) {
	return r.list(ctx, r.db, offset, limit)
}

func (r *AppointmentGormRepository) list(
	ctx context.Context,
	scope *gorm.DB,
	offset int,
	limit int,
) ([]models.Appointment, error) {

	q := withServices(scope.WithContext(ctx)).Order("start_time DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	apps := []models.Appointment{}
	if err := q.Find(&apps).Error; err != nil {
		return nil, translate(err, "list appointments")
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) InTx(
	ctx context.Context,
	fn func(tx domain.Tx) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
	if err != nil && isExclusionViolation(err) {
		return domain.ErrSlotConflict
	}
	return err
}

type gormTx struct {
	db *gorm.DB
}

// LockBarber takes a transaction-scoped advisory lock keyed on the barber id.
// Concurrent bookings for the same barber queue here, so the conflict read
// and the insert behave as one unit.
func (tx *gormTx) LockBarber(ctx context.Context, barberID string) error {
	err := tx.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", "barber:"+barberID).
		Error
	return translate(err, "lock barber schedule")
}

func (tx *gormTx) ReservationsBetween(
	ctx context.Context,
	barberID string,
	from time.Time,
	to time.Time,
) ([]domain.Reservation, error) {
	return reservationsBetween(tx.db.WithContext(ctx), barberID, from, to)
}

func (tx *gormTx) GetAppointmentForUpdate(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := withServices(tx.db.WithContext(ctx)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, translate(err, "get appointment for update")
	}
	return &ap, nil
}

func (tx *gormTx) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(tx.db.WithContext(ctx).Create(ap).Error, "create appointment")
}

// UpdateAppointment saves the appointment row only. Line items are immutable.
func (tx *gormTx) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(
		tx.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error,
		"update appointment",
	)
}

func (tx *gormTx) DeleteAppointment(
	ctx context.Context,
	id string,
) error {

	db := tx.db.WithContext(ctx)
	if err := db.Where("appointment_id = ?", id).Delete(&models.AppointmentService{}).Error; err != nil {
		return translate(err, "delete appointment services")
	}

	res := db.Where("id = ?", id).Delete(&models.Appointment{})
	if res.Error != nil {
		return translate(res.Error, "delete appointment")
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Interval index
// --------------------------------------------------

// reservationsBetween selects every appointment of the barber intersecting
// [from, to). Bounds are bound as timestamptz, so the comparison is between
// instants whatever location from and to carry.
func reservationsBetween(
	db *gorm.DB,
	barberID string,
	from time.Time,
	to time.Time,
) ([]domain.Reservation, error) {

	var rows []models.Appointment
	if err := db.
		Model(&models.Appointment{}).
		Select("id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND start_time < ? AND end_time > ?",
			barberID,
			to.UTC(),
			from.UTC(),
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, translate(err, "list reservations")
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, ap := range rows {
		out = append(out, domain.Reservation{
			AppointmentID: ap.ID,
			Interval:      domain.Interval{Start: ap.StartTime, End: ap.EndTime},
			Status:        domain.Status(ap.Status),
		})
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
