package appointment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-appointments/internal/audit"
	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID string
	// ClientID is required for admin and barber callers. A client caller
	// always books for their own profile.
	ClientID string

	ServiceIDs []string
	StartTime  time.Time

	ClientNotes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	catalog   domain.Catalog
	directory domain.Directory
	cache     domain.SlotCache
	audit     Auditor
	loc       *time.Location
	logger    *slog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	catalog domain.Catalog,
	directory domain.Directory,
	cache domain.SlotCache,
	audit Auditor,
	loc *time.Location,
	logger *slog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		catalog:   catalog,
		directory: directory,
		cache:     cache,
		audit:     audit,
		loc:       loc,
		logger:    logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	caller domain.Caller,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Resource
	// --------------------------------------------------
	barber, err := uc.directory.GetBarber(ctx, in.BarberID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrResourceUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !barber.Available {
		return nil, domain.ErrResourceUnavailable
	}
	if caller.Role == domain.RoleBarber && barber.UserID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	// --------------------------------------------------
	// 2. Client
	// --------------------------------------------------
	client, err := uc.resolveClient(ctx, caller, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Pricing + interval
	// --------------------------------------------------
	quote, err := domain.Price(ctx, uc.catalog, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	slot, err := domain.NewInterval(in.StartTime, in.StartTime.Add(quote.Duration()))
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:           uuid.NewString(),
		ClientID:     client.ID,
		ClientUserID: client.UserID,
		BarberID:     barber.ID,
		BarberUserID: barber.UserID,
		StartTime:    slot.Start.UTC(),
		EndTime:      slot.End.UTC(),
		TotalAmount:  quote.TotalAmount,
		Status:       string(domain.InitialStatus()),
		ClientNotes:  in.ClientNotes,
	}
	for _, item := range quote.Items {
		item.AppointmentID = ap.ID
		ap.Services = append(ap.Services, item)
	}

	// --------------------------------------------------
	// 4. Conflict check + write, atomically
	// --------------------------------------------------
	err = uc.repo.InTx(ctx, func(tx domain.Tx) error {
		if err := tx.LockBarber(ctx, barber.ID); err != nil {
			return err
		}
		if err := domain.CheckConflict(ctx, tx, barber.ID, slot, ""); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if domain.IsSlotConflict(err) {
		uc.logger.Info("appointment slot conflict",
			slog.String("barber_id", barber.ID),
			slog.Time("start", slot.Start),
			slog.Time("end", slot.End),
		)
		uc.audit.Dispatch(audit.Event{
			ActorUserID: caller.UserID,
			Action:      "appointment_conflict",
			Entity:      "barber",
			EntityID:    barber.ID,
			Metadata: map[string]any{
				"client_id": client.ID,
				"start":     slot.Start.UTC(),
				"end":       slot.End.UTC(),
			},
		})
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Cache + audit
	// --------------------------------------------------
	uc.cache.Invalidate(ctx, barber.ID, touchedDays(ap.StartTime, ap.EndTime, uc.loc)...)

	uc.audit.Dispatch(auditEvent(caller, "appointment_created", ap, map[string]any{
		"barber_id":    ap.BarberID,
		"client_id":    ap.ClientID,
		"total_amount": ap.TotalAmount,
	}))

	return ap, nil
}

func (uc *CreateAppointment) resolveClient(
	ctx context.Context,
	caller domain.Caller,
	clientID string,
) (*models.Client, error) {

	if caller.Role == domain.RoleClient {
		client, err := uc.directory.GetClientByUserID(ctx, caller.UserID)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		if err != nil {
			return nil, err
		}
		if clientID != "" && clientID != client.ID {
			return nil, domain.ErrForbidden
		}
		return client, nil
	}

	if clientID == "" {
		return nil, domain.ErrClientNotFound
	}

	client, err := uc.directory.GetClient(ctx, clientID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrClientNotFound
	}
	return client, err
}
