package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// UpdateNotesInput carries the notes to replace. A nil field is left as is.
type UpdateNotesInput struct {
	ClientNotes   *string
	InternalNotes *string
}

type UpdateAppointmentNotes struct {
	repo  domain.Repository
	audit Auditor
}

func NewUpdateAppointmentNotes(
	repo domain.Repository,
	audit Auditor,
) *UpdateAppointmentNotes {
	return &UpdateAppointmentNotes{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentNotes) Execute(
	ctx context.Context,
	caller domain.Caller,
	id string,
	in UpdateNotesInput,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Tx) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, id)
		if err != nil {
			return notFound(err)
		}

		if err := domain.Authorize(caller, ap, true); err != nil {
			return err
		}
		if in.InternalNotes != nil && !domain.CanEditInternalNotes(caller, ap) {
			return domain.ErrForbidden
		}

		if in.ClientNotes != nil {
			ap.ClientNotes = *in.ClientNotes
		}
		if in.InternalNotes != nil {
			ap.InternalNotes = *in.InternalNotes
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		out = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(caller, "appointment_notes_updated", out, nil))

	return out, nil
}
