package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

type DeleteAppointment struct {
	repo  domain.Repository
	cache domain.SlotCache
	audit Auditor
	loc   *time.Location
}

func NewDeleteAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit Auditor,
	loc *time.Location,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		loc:   loc,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	caller domain.Caller,
	id string,
) error {

	var removed *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Tx) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, id)
		if err != nil {
			return notFound(err)
		}

		if err := domain.Authorize(caller, ap, true); err != nil {
			return err
		}

		if err := tx.DeleteAppointment(ctx, ap.ID); err != nil {
			return notFound(err)
		}

		removed = ap
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, removed.BarberID, touchedDays(removed.StartTime, removed.EndTime, uc.loc)...)
	uc.audit.Dispatch(auditEvent(caller, "appointment_deleted", removed, map[string]any{
		"status": removed.Status,
	}))

	return nil
}
