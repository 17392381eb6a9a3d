package appointment

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/audit"
	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
	"github.com/BruksfildServices01/barber-appointments/internal/timezone"
)

const entityAppointment = "appointment"

// Auditor is satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

func auditEvent(caller domain.Caller, action string, ap *models.Appointment, meta any) audit.Event {
	return audit.Event{
		ActorUserID: caller.UserID,
		Action:      action,
		Entity:      entityAppointment,
		EntityID:    ap.ID,
		Metadata:    meta,
	}
}

// notFound maps a missing appointment onto the domain error and leaves other
// failures untouched.
func notFound(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// touchedDays lists the calendar days an interval falls on, in loc. It walks
// local midnights so 23h and 25h days are visited exactly once.
func touchedDays(start, end time.Time, loc *time.Location) []string {
	dayStart, next := timezone.DayBounds(start, loc)
	days := []string{timezone.DayKey(dayStart, loc)}

	for next.Before(end) {
		dayStart = next
		next = dayStart.AddDate(0, 0, 1)
		days = append(days, timezone.DayKey(dayStart, loc))
	}
	return days
}
