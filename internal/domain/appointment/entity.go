package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to target and stamps the matching timestamp. ap is left
// untouched when the edge is not allowed. Cancelling requires an actor and a
// reason, recorded together with the status.
func Transition(ap *models.Appointment, target Status, actorID, reason string, now time.Time) error {
	if err := CanTransition(Status(ap.Status), target); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if target == StatusCancelled && (reason == "" || actorID == "") {
		return ErrReasonRequired
	}

	ts := now.UTC()
	switch target {
	case StatusConfirmed:
		ap.ConfirmedAt = &ts
	case StatusInProgress:
		ap.StartedAt = &ts
	case StatusCompleted:
		ap.CompletedAt = &ts
	case StatusNoShow:
		ap.NoShowAt = &ts
	case StatusCancelled:
		ap.CancelledAt = &ts
		ap.CancelledBy = actorID
		ap.CancellationReason = reason
	}

	ap.Status = string(target)
	return nil
}

func Cancel(ap *models.Appointment, actorID, reason string, now time.Time) error {
	return Transition(ap, StatusCancelled, actorID, reason, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCompleted, "", "", now)
}

// Reschedule moves a pending or confirmed appointment to start at newStart,
// keeping its duration. The caller is responsible for the conflict check.
func Reschedule(ap *models.Appointment, newStart time.Time) (Interval, error) {
	if s := Status(ap.Status); s != StatusPending && s != StatusConfirmed {
		return Interval{}, ErrNotReschedulable
	}

	slot, err := NewInterval(newStart, newStart.Add(ap.Duration()))
	if err != nil {
		return Interval{}, err
	}

	ap.StartTime = slot.Start.UTC()
	ap.EndTime = slot.End.UTC()
	return slot, nil
}
