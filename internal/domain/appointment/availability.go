package appointment

import (
	"context"
	"time"
)

type AvailabilityInput struct {
	BarberID   string
	ServiceIDs []string
	Date       time.Time
}

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotCache memoises occupied slots per barber and calendar day (YYYY-MM-DD
// in the scheduling timezone).
//
// Every Invalidate bumps the day's generation. A miss from Get reports the
// generation current before the caller reads the store; Set with that
// generation is dropped if the day was invalidated in between, so a read that
// raced a commit never repopulates the cache.
type SlotCache interface {
	Get(ctx context.Context, barberID, day string) (slots []TimeSlot, gen int64, ok bool)
	Set(ctx context.Context, barberID, day string, gen int64, slots []TimeSlot)
	Invalidate(ctx context.Context, barberID string, days ...string)
}

func SlotsFrom(reservations []Reservation) []TimeSlot {
	out := make([]TimeSlot, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, TimeSlot{Start: r.Start, End: r.End})
	}
	return out
}

// FreeSlots walks [open, close) in steps and returns every slot of length d
// that overlaps none of the occupied slots and does not start before notBefore.
func FreeSlots(open, close time.Time, d, step time.Duration, occupied []TimeSlot, notBefore time.Time) []TimeSlot {
	if d <= 0 || step <= 0 || !close.After(open) {
		return []TimeSlot{}
	}

	busy := make([]Interval, 0, len(occupied))
	for _, o := range occupied {
		busy = append(busy, Interval{Start: o.Start, End: o.End})
	}

	slots := []TimeSlot{}
	for cur := open; !cur.Add(d).After(close); cur = cur.Add(step) {
		if cur.Before(notBefore) {
			continue
		}

		candidate := Interval{Start: cur, End: cur.Add(d)}
		free := true
		for _, b := range busy {
			if candidate.Overlaps(b) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, TimeSlot{Start: candidate.Start, End: candidate.End})
		}
	}

	return slots
}
