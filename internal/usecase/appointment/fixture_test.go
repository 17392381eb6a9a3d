package appointment

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-appointments/internal/audit"
	"github.com/BruksfildServices01/barber-appointments/internal/clock"
	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/infra/memory"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
	"github.com/BruksfildServices01/barber-appointments/internal/timezone"
)

var (
	saoPaulo = timezone.Location("America/Sao_Paulo")

	admin       = domain.Caller{UserID: "u-admin", Role: domain.RoleAdmin}
	ana         = domain.Caller{UserID: "u-ana", Role: domain.RoleClient}
	bruno       = domain.Caller{UserID: "u-bruno", Role: domain.RoleClient}
	barberCaio  = domain.Caller{UserID: "u-caio", Role: domain.RoleBarber}
	barberDiego = domain.Caller{UserID: "u-diego", Role: domain.RoleBarber}
)

// at is a wall-clock time on Monday 2026-03-02 in the scheduling timezone.
func at(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, saoPaulo)
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

type mapCache struct {
	mu          sync.Mutex
	entries     map[string][]domain.TimeSlot
	gens        map[string]int64
	invalidated []string
}

func newMapCache() *mapCache {
	return &mapCache{
		entries: map[string][]domain.TimeSlot{},
		gens:    map[string]int64{},
	}
}

func (c *mapCache) Get(_ context.Context, barberID, day string) ([]domain.TimeSlot, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := barberID + "|" + day
	s, ok := c.entries[key]
	return s, c.gens[key], ok
}

func (c *mapCache) Set(_ context.Context, barberID, day string, gen int64, slots []domain.TimeSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := barberID + "|" + day
	if c.gens[key] != gen {
		return
	}
	c.entries[key] = slots
}

func (c *mapCache) Invalidate(_ context.Context, barberID string, days ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range days {
		key := barberID + "|" + d
		delete(c.entries, key)
		c.gens[key]++
		c.invalidated = append(c.invalidated, key)
	}
}

type fixture struct {
	store   *memory.Store
	auditor *recordingAuditor
	cache   *mapCache
	clock   *clock.MockClock

	create     *CreateAppointment
	transition *TransitionAppointment
	get        *GetAppointment
	list       *ListAppointments
	notes      *UpdateAppointmentNotes
	reschedule *RescheduleAppointment
	remove     *DeleteAppointment
	occupied   *GetOccupiedSlots
	available  *GetAvailability
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureIn(t, saoPaulo)
}

// newFixtureIn builds the fixture with loc as the scheduling timezone.
func newFixtureIn(t *testing.T, loc *time.Location) *fixture {
	t.Helper()

	store := memory.NewStore()
	store.PutService(models.Service{ID: "cut", Name: "Haircut", Price: 1000, DurationMin: 20, Active: true})
	store.PutService(models.Service{ID: "beard", Name: "Beard", Price: 500, DurationMin: 10, Active: true})
	store.PutService(models.Service{ID: "dye", Name: "Dye", Price: 3000, DurationMin: 60, Active: false})
	store.PutBarber(models.Barber{ID: "b-caio", UserID: "u-caio", Name: "Caio", Available: true})
	store.PutBarber(models.Barber{ID: "b-diego", UserID: "u-diego", Name: "Diego", Available: true})
	store.PutBarber(models.Barber{ID: "b-off", UserID: "u-off", Name: "Off", Available: false})
	store.PutClient(models.Client{ID: "c-ana", UserID: "u-ana", Name: "Ana"})
	store.PutClient(models.Client{ID: "c-bruno", UserID: "u-bruno", Name: "Bruno"})

	f := &fixture{
		store:   store,
		auditor: &recordingAuditor{},
		cache:   newMapCache(),
		clock:   clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.create = NewCreateAppointment(store, store, store, f.cache, f.auditor, loc, logger)
	f.transition = NewTransitionAppointment(store, f.cache, f.auditor, f.clock, loc)
	f.get = NewGetAppointment(store)
	f.list = NewListAppointments(store, store)
	f.notes = NewUpdateAppointmentNotes(store, f.auditor)
	f.reschedule = NewRescheduleAppointment(store, f.cache, f.auditor, loc, logger)
	f.remove = NewDeleteAppointment(store, f.cache, f.auditor, loc)
	f.occupied = NewGetOccupiedSlots(store, store, f.cache, loc)
	f.available = NewGetAvailability(store, f.occupied, f.clock, BusinessHours{
		Open:  "09:00",
		Close: "12:00",
		Step:  30 * time.Minute,
	}, loc)

	return f
}

// book creates an appointment for ana with Caio and fails the test on error.
func (f *fixture) book(t *testing.T, start time.Time, services ...string) *models.Appointment {
	t.Helper()
	ap, err := f.create.Execute(context.Background(), ana, CreateAppointmentInput{
		BarberID:   "b-caio",
		ServiceIDs: services,
		StartTime:  start,
	})
	require.NoError(t, err)
	return ap
}
