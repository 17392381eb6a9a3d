// Package memory is an in-process implementation of the appointment store,
// catalog and directory. Transactions are serialised by a store-wide lock, so
// it satisfies the same check-then-write guarantee as the Postgres store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

type Store struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment

	services map[string]models.Service
	barbers  map[string]models.Barber
	clients  map[string]models.Client

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		appointments: map[string]models.Appointment{},
		services:     map[string]models.Service{},
		barbers:      map[string]models.Barber{},
		clients:      map[string]models.Client{},
		now:          time.Now,
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *Store) PutService(svc models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID] = svc
}

func (s *Store) PutBarber(b models.Barber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.barbers[b.ID] = b
}

func (s *Store) PutClient(c models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ID] = c
}

// Count returns the number of persisted appointments.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

// --------------------------------------------------
// Catalog / Directory
// --------------------------------------------------

func (s *Store) GetService(_ context.Context, id string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &svc, nil
}

func (s *Store) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.barbers[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &b, nil
}

func (s *Store) GetClient(_ context.Context, id string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &c, nil
}

func (s *Store) GetClientByUserID(_ context.Context, userID string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if c.UserID == userID {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (s *Store) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return cloneAppointment(ap), nil
}

func (s *Store) ReservationsBetween(_ context.Context, barberID string, from, to time.Time) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reservationsBetween(s.appointments, barberID, from, to), nil
}

func (s *Store) ListByClient(_ context.Context, clientID string) ([]models.Appointment, error) {
	return s.list(func(ap models.Appointment) bool { return ap.ClientID == clientID }, 0, 0), nil
}

func (s *Store) ListByBarber(_ context.Context, barberID string) ([]models.Appointment, error) {
	return s.list(func(ap models.Appointment) bool { return ap.BarberID == barberID }, 0, 0), nil
}

func (s *Store) ListAll(_ context.Context, offset, limit int) ([]models.Appointment, error) {
	return s.list(func(models.Appointment) bool { return true }, offset, limit), nil
}

// list returns matching appointments by start time, newest first.
func (s *Store) list(match func(models.Appointment) bool, offset, limit int) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if match(ap) {
			out = append(out, *cloneAppointment(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(out) {
		return []models.Appointment{}
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// InTx holds the store lock for the whole of fn and applies its writes only
// when fn succeeds. fn must use tx only; calling back into the Store from
// inside fn deadlocks.
func (s *Store) InTx(ctx context.Context, fn func(tx domain.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, writes: map[string]*models.Appointment{}}
	if err := fn(tx); err != nil {
		return err
	}

	for id, ap := range tx.writes {
		if ap == nil {
			delete(s.appointments, id)
			continue
		}
		s.appointments[id] = *ap
	}
	return nil
}

type memTx struct {
	store *Store
	// writes buffers pending changes; a nil value marks a delete.
	writes map[string]*models.Appointment
}

func (tx *memTx) LockBarber(context.Context, string) error {
	return nil
}

func (tx *memTx) view() map[string]models.Appointment {
	merged := make(map[string]models.Appointment, len(tx.store.appointments)+len(tx.writes))
	for id, ap := range tx.store.appointments {
		merged[id] = ap
	}
	for id, ap := range tx.writes {
		if ap == nil {
			delete(merged, id)
			continue
		}
		merged[id] = *ap
	}
	return merged
}

func (tx *memTx) ReservationsBetween(_ context.Context, barberID string, from, to time.Time) ([]domain.Reservation, error) {
	return reservationsBetween(tx.view(), barberID, from, to), nil
}

func (tx *memTx) GetAppointmentForUpdate(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := tx.view()[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return cloneAppointment(ap), nil
}

func (tx *memTx) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	now := tx.store.now().UTC()
	ap.CreatedAt = now
	ap.UpdatedAt = now
	tx.writes[ap.ID] = cloneAppointment(*ap)
	return nil
}

func (tx *memTx) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := tx.view()[ap.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	ap.UpdatedAt = tx.store.now().UTC()
	tx.writes[ap.ID] = cloneAppointment(*ap)
	return nil
}

func (tx *memTx) DeleteAppointment(_ context.Context, id string) error {
	if _, ok := tx.view()[id]; !ok {
		return domain.ErrRecordNotFound
	}
	tx.writes[id] = nil
	return nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func reservationsBetween(all map[string]models.Appointment, barberID string, from, to time.Time) []domain.Reservation {
	window := domain.Interval{Start: from, End: to}

	out := []domain.Reservation{}
	for _, ap := range all {
		if ap.BarberID != barberID {
			continue
		}
		iv := domain.Interval{Start: ap.StartTime, End: ap.EndTime}
		if !iv.Overlaps(window) {
			continue
		}
		out = append(out, domain.Reservation{
			AppointmentID: ap.ID,
			Interval:      iv,
			Status:        domain.Status(ap.Status),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func cloneAppointment(ap models.Appointment) *models.Appointment {
	cp := ap
	if ap.Services != nil {
		cp.Services = append([]models.AppointmentService(nil), ap.Services...)
	}
	for _, p := range []**time.Time{&cp.ConfirmedAt, &cp.StartedAt, &cp.CompletedAt, &cp.NoShowAt, &cp.CancelledAt} {
		if *p != nil {
			t := **p
			*p = &t
		}
	}
	return &cp
}

var (
	_ domain.Repository = (*Store)(nil)
	_ domain.Catalog    = (*Store)(nil)
	_ domain.Directory  = (*Store)(nil)
)
