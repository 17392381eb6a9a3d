package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/clock"
	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

type TransitionAppointment struct {
	repo  domain.Repository
	cache domain.SlotCache
	audit Auditor
	clock clock.Clock
	loc   *time.Location
}

func NewTransitionAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit Auditor,
	clk clock.Clock,
	loc *time.Location,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		clock: clk,
		loc:   loc,
	}
}

// Execute moves the appointment to target. Nothing is written unless the
// caller may mutate it and the edge is allowed.
func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	caller domain.Caller,
	id string,
	target domain.Status,
	reason string,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Tx) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, id)
		if err != nil {
			return notFound(err)
		}

		if err := domain.Authorize(caller, ap, true); err != nil {
			return err
		}

		if err := domain.Transition(ap, target, caller.UserID, reason, uc.clock.Now()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		out = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if target.IsTerminal() {
		uc.cache.Invalidate(ctx, out.BarberID, touchedDays(out.StartTime, out.EndTime, uc.loc)...)
	}

	var meta map[string]any
	if target == domain.StatusCancelled {
		meta = map[string]any{"reason": out.CancellationReason}
	}
	uc.audit.Dispatch(auditEvent(caller, "appointment_"+strings.ToLower(string(target)), out, meta))

	return out, nil
}
