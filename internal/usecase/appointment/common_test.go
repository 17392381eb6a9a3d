package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
	"github.com/BruksfildServices01/barber-appointments/internal/timezone"
)

// Europe/Berlin springs forward on 2026-03-29 (23h) and falls back on
// 2026-10-25 (25h).
var berlin = timezone.Location("Europe/Berlin")

func TestTouchedDays(t *testing.T) {
	b := func(month time.Month, day, h, m int) time.Time {
		return time.Date(2026, month, day, h, m, 0, 0, berlin)
	}

	tests := []struct {
		name       string
		start, end time.Time
		loc        *time.Location
		want       []string
	}{
		{
			name:  "same day",
			start: b(3, 28, 10, 0), end: b(3, 28, 10, 30), loc: berlin,
			want: []string{"2026-03-28"},
		},
		{
			name:  "into a 23h day",
			start: time.Date(2026, 3, 28, 22, 30, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 28, 23, 30, 0, 0, time.UTC),
			loc:   berlin,
			want:  []string{"2026-03-28", "2026-03-29"},
		},
		{
			name:  "inside a 23h day",
			start: b(3, 29, 10, 0), end: b(3, 29, 11, 0), loc: berlin,
			want: []string{"2026-03-29"},
		},
		{
			name:  "across a whole 23h day",
			start: b(3, 28, 23, 0), end: b(3, 30, 1, 0), loc: berlin,
			want: []string{"2026-03-28", "2026-03-29", "2026-03-30"},
		},
		{
			name:  "out of a 25h day",
			start: b(10, 25, 23, 30), end: b(10, 26, 0, 30), loc: berlin,
			want: []string{"2026-10-25", "2026-10-26"},
		},
		{
			name:  "into a 25h day",
			start: b(10, 24, 23, 45), end: b(10, 25, 0, 15), loc: berlin,
			want: []string{"2026-10-24", "2026-10-25"},
		},
		{
			name:  "ends at midnight",
			start: b(3, 28, 23, 0), end: b(3, 29, 0, 0), loc: berlin,
			want: []string{"2026-03-28"},
		},
		{
			name:  "crosses midnight without DST",
			start: time.Date(2026, 3, 2, 23, 45, 0, 0, saoPaulo),
			end:   time.Date(2026, 3, 3, 0, 15, 0, 0, saoPaulo),
			loc:   saoPaulo,
			want:  []string{"2026-03-02", "2026-03-03"},
		},
		{
			name:  "empty interval",
			start: b(3, 28, 10, 0), end: b(3, 28, 10, 0), loc: berlin,
			want: []string{"2026-03-28"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, touchedDays(tt.start, tt.end, tt.loc))
		})
	}
}

// within fails the test when fn has not returned after d.
func within(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return within %s", d)
	}
}

func TestLifecycle_AcrossDSTChanges(t *testing.T) {
	f := newFixtureIn(t, berlin)
	ctx := context.Background()

	var (
		id  string
		err error
	)

	// 23:45 on the night before spring-forward, 30 minutes long.
	within(t, 2*time.Second, func() {
		var created *models.Appointment
		created, err = f.create.Execute(ctx, ana, CreateAppointmentInput{
			BarberID:   "b-caio",
			ServiceIDs: []string{"cut", "beard"},
			StartTime:  time.Date(2026, 3, 28, 23, 45, 0, 0, berlin),
		})
		if created != nil {
			id = created.ID
		}
	})
	require.NoError(t, err)
	assert.Contains(t, f.cache.invalidated, "b-caio|2026-03-28")
	assert.Contains(t, f.cache.invalidated, "b-caio|2026-03-29")

	for _, day := range []string{"2026-03-28", "2026-03-29"} {
		date, perr := timezone.ParseDate(day, berlin)
		require.NoError(t, perr)
		slots, serr := f.occupied.Execute(ctx, "b-caio", date)
		require.NoError(t, serr)
		assert.Len(t, slots, 1, day)
	}

	within(t, 2*time.Second, func() {
		_, err = f.reschedule.Execute(ctx, ana, id, time.Date(2026, 10, 25, 23, 50, 0, 0, berlin))
	})
	require.NoError(t, err)
	assert.Contains(t, f.cache.invalidated, "b-caio|2026-10-25")
	assert.Contains(t, f.cache.invalidated, "b-caio|2026-10-26")

	within(t, 2*time.Second, func() {
		_, err = f.transition.Execute(ctx, ana, id, domain.StatusCancelled, "travelling")
	})
	require.NoError(t, err)

	within(t, 2*time.Second, func() {
		err = f.remove.Execute(ctx, admin, id)
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.store.Count())
}
