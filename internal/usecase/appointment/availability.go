package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/clock"
	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

// BusinessHours is the daily bookable window, as "15:04" wall-clock times in
// the scheduling timezone.
type BusinessHours struct {
	Open  string
	Close string
	Step  time.Duration
}

type GetAvailability struct {
	catalog  domain.Catalog
	occupied *GetOccupiedSlots
	clock    clock.Clock
	hours    BusinessHours
	loc      *time.Location
}

func NewGetAvailability(
	catalog domain.Catalog,
	occupied *GetOccupiedSlots,
	clk clock.Clock,
	hours BusinessHours,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		catalog:  catalog,
		occupied: occupied,
		clock:    clk,
		hours:    hours,
		loc:      loc,
	}
}

// Execute lists the start times at which the requested services fit on the
// barber's day without overlapping an active booking. Past slots are left out.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	quote, err := domain.Price(ctx, uc.catalog, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	busy, err := uc.occupied.Execute(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	open, err := uc.wallClock(in.Date, uc.hours.Open)
	if err != nil {
		return nil, err
	}
	closeAt, err := uc.wallClock(in.Date, uc.hours.Close)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(open, closeAt, quote.Duration(), uc.hours.Step, busy, uc.clock.Now()), nil
}

func (uc *GetAvailability) wallClock(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	d := date.In(uc.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, uc.loc), nil
}
