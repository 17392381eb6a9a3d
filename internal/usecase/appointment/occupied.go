package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/timezone"
)

// GetOccupiedSlots returns the active bookings of a barber on one calendar
// day of the scheduling timezone.
type GetOccupiedSlots struct {
	repo      domain.Repository
	directory domain.Directory
	cache     domain.SlotCache
	loc       *time.Location
}

func NewGetOccupiedSlots(
	repo domain.Repository,
	directory domain.Directory,
	cache domain.SlotCache,
	loc *time.Location,
) *GetOccupiedSlots {
	return &GetOccupiedSlots{
		repo:      repo,
		directory: directory,
		cache:     cache,
		loc:       loc,
	}
}

func (uc *GetOccupiedSlots) Execute(
	ctx context.Context,
	barberID string,
	date time.Time,
) ([]domain.TimeSlot, error) {

	if _, err := uc.directory.GetBarber(ctx, barberID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrBarberNotFound
		}
		return nil, err
	}

	day := timezone.DayKey(date, uc.loc)
	slots, gen, ok := uc.cache.Get(ctx, barberID, day)
	if ok {
		return slots, nil
	}

	start, end := timezone.DayBounds(date, uc.loc)
	all, err := uc.repo.ReservationsBetween(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	slots = domain.SlotsFrom(domain.ActiveOnly(all))
	uc.cache.Set(ctx, barberID, day, gen, slots)

	return slots, nil
}
