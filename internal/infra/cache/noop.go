package cache

import (
	"context"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

// Noop is used when no redis address is configured.
type Noop struct{}

var _ domain.SlotCache = Noop{}

func (Noop) Get(context.Context, string, string) ([]domain.TimeSlot, int64, bool) {
	return nil, 0, false
}

func (Noop) Set(context.Context, string, string, int64, []domain.TimeSlot) {}

func (Noop) Invalidate(context.Context, string, ...string) {}
