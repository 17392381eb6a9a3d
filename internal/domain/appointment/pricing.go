package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/httperr"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// Quote is the priced form of a booking request. Items keep the order the
// services were requested in.
type Quote struct {
	Items       []models.AppointmentService
	TotalAmount int64
	DurationMin int
}

func (q Quote) Duration() time.Duration {
	return time.Duration(q.DurationMin) * time.Minute
}

// Price resolves every requested service through the catalog and sums price
// and duration. Services run back to back, so durations add up. One
// unresolvable id rejects the whole request.
func Price(ctx context.Context, catalog Catalog, serviceIDs []string) (Quote, error) {
	ids := dedupe(serviceIDs)
	if len(ids) == 0 {
		return Quote{}, ErrNoServices
	}

	q := Quote{Items: make([]models.AppointmentService, 0, len(ids))}
	for i, id := range ids {
		svc, err := catalog.GetService(ctx, id)
		if errors.Is(err, ErrRecordNotFound) || (err == nil && !svc.Active) {
			return Quote{}, httperr.ErrBusinessMsg(CodeUnknownService, "service "+id+" not found")
		}
		if err != nil {
			return Quote{}, err
		}

		q.Items = append(q.Items, models.AppointmentService{
			Position:    i,
			ServiceID:   svc.ID,
			UnitPrice:   svc.Price,
			DurationMin: svc.DurationMin,
		})
		q.TotalAmount += svc.Price
		q.DurationMin += svc.DurationMin
	}

	return q, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
