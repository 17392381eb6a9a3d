package appointment

import (
	"context"
	"time"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps is true iff i.Start < o.End && o.Start < i.End. Back-to-back
// intervals do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Reservation is one entry of the interval index.
type Reservation struct {
	AppointmentID string
	Interval
	Status Status
}

// FindConflict returns the first active reservation overlapping candidate,
// skipping excludeID. Terminal reservations never conflict.
func FindConflict(existing []Reservation, candidate Interval, excludeID string) (Reservation, bool) {
	for _, r := range existing {
		if excludeID != "" && r.AppointmentID == excludeID {
			continue
		}
		if !r.Status.IsActive() {
			continue
		}
		if candidate.Overlaps(r.Interval) {
			return r, true
		}
	}
	return Reservation{}, false
}

// CheckConflict reads the barber's reservations around candidate from the
// index and fails with ErrSlotConflict on any active overlap.
func CheckConflict(
	ctx context.Context,
	index IntervalIndex,
	barberID string,
	candidate Interval,
	excludeID string,
) error {
	existing, err := index.ReservationsBetween(ctx, barberID, candidate.Start, candidate.End)
	if err != nil {
		return err
	}

	if r, ok := FindConflict(existing, candidate, excludeID); ok {
		return conflictWith(r)
	}
	return nil
}

// HasConflict is CheckConflict reduced to a bool.
func HasConflict(
	ctx context.Context,
	index IntervalIndex,
	barberID string,
	candidate Interval,
	excludeID string,
) (bool, error) {
	err := CheckConflict(ctx, index, barberID, candidate, excludeID)
	switch {
	case err == nil:
		return false, nil
	case IsSlotConflict(err):
		return true, nil
	default:
		return false, err
	}
}

// ActiveOnly filters out terminal reservations, keeping order.
func ActiveOnly(all []Reservation) []Reservation {
	out := make([]Reservation, 0, len(all))
	for _, r := range all {
		if r.Status.IsActive() {
			out = append(out, r)
		}
	}
	return out
}
