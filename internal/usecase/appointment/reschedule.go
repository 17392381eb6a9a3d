package appointment

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

type RescheduleAppointment struct {
	repo   domain.Repository
	cache  domain.SlotCache
	audit  Auditor
	loc    *time.Location
	logger *slog.Logger
}

func NewRescheduleAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit Auditor,
	loc *time.Location,
	logger *slog.Logger,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		cache:  cache,
		audit:  audit,
		loc:    loc,
		logger: logger,
	}
}

// Execute moves an active appointment to newStart, keeping its duration.
// The appointment's own current slot is ignored by the conflict check.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	caller domain.Caller,
	id string,
	newStart time.Time,
) (*models.Appointment, error) {

	var (
		out              *models.Appointment
		oldStart, oldEnd time.Time
	)

	err := uc.repo.InTx(ctx, func(tx domain.Tx) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, id)
		if err != nil {
			return notFound(err)
		}

		if err := domain.Authorize(caller, ap, true); err != nil {
			return err
		}

		if err := tx.LockBarber(ctx, ap.BarberID); err != nil {
			return err
		}

		oldStart, oldEnd = ap.StartTime, ap.EndTime

		slot, err := domain.Reschedule(ap, newStart)
		if err != nil {
			return err
		}

		if err := domain.CheckConflict(ctx, tx, ap.BarberID, slot, ap.ID); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		out = ap
		return nil
	})
	if err != nil {
		if domain.IsSlotConflict(err) {
			uc.logger.Info("reschedule slot conflict",
				slog.String("appointment_id", id),
				slog.Time("start", newStart),
			)
		}
		return nil, err
	}

	days := append(
		touchedDays(oldStart, oldEnd, uc.loc),
		touchedDays(out.StartTime, out.EndTime, uc.loc)...,
	)
	uc.cache.Invalidate(ctx, out.BarberID, days...)

	uc.audit.Dispatch(auditEvent(caller, "appointment_rescheduled", out, map[string]any{
		"from": oldStart,
		"to":   out.StartTime,
	}))

	return out, nil
}
