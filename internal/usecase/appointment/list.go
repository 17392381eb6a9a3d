package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = 100_000
)

// Paging applies the listing defaults and bounds; MaxPage keeps the derived
// offset far from integer overflow.
func Paging(page, limit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

type ListAppointments struct {
	repo      domain.Repository
	directory domain.Directory
}

func NewListAppointments(
	repo domain.Repository,
	directory domain.Directory,
) *ListAppointments {
	return &ListAppointments{
		repo:      repo,
		directory: directory,
	}
}

// ByClient lists a client's appointments, newest first. Only admins and the
// client themselves may list them.
func (uc *ListAppointments) ByClient(
	ctx context.Context,
	caller domain.Caller,
	clientID string,
) ([]models.Appointment, error) {

	client, err := uc.directory.GetClient(ctx, clientID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && client.UserID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	return uc.repo.ListByClient(ctx, client.ID)
}

// ByBarber lists a barber's appointments, newest first. Only admins and the
// barber themselves may list them.
func (uc *ListAppointments) ByBarber(
	ctx context.Context,
	caller domain.Caller,
	barberID string,
) ([]models.Appointment, error) {

	barber, err := uc.directory.GetBarber(ctx, barberID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrBarberNotFound
	}
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && barber.UserID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	return uc.repo.ListByBarber(ctx, barber.ID)
}

// All is the admin listing. page starts at 1; zero or negative values fall
// back to the defaults.
func (uc *ListAppointments) All(
	ctx context.Context,
	caller domain.Caller,
	page int,
	limit int,
) ([]models.Appointment, error) {

	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	page, limit = Paging(page, limit)
	return uc.repo.ListAll(ctx, (page-1)*limit, limit)
}
