package appointment

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/httperr"
)

const (
	CodeInvalidInterval     = "invalid_interval"
	CodeUnknownService      = "unknown_service"
	CodeNoServices          = "no_services"
	CodeResourceUnavailable = "resource_unavailable"
	CodeSlotConflict        = "slot_conflict"
	CodeInvalidTransition   = "invalid_transition"
	CodeInvalidStatus       = "invalid_status"
	CodeNotFound            = "appointment_not_found"
	CodeClientNotFound      = "client_not_found"
	CodeBarberNotFound      = "barber_not_found"
	CodeForbidden           = "forbidden"
	CodeReasonRequired      = "cancellation_reason_required"
	CodeNotReschedulable    = "appointment_not_reschedulable"
)

var (
	ErrInvalidInterval     = httperr.ErrBusiness(CodeInvalidInterval)
	ErrUnknownService      = httperr.ErrBusiness(CodeUnknownService)
	ErrNoServices          = httperr.ErrBusiness(CodeNoServices)
	ErrResourceUnavailable = httperr.ErrBusiness(CodeResourceUnavailable)
	ErrSlotConflict        = httperr.ErrBusiness(CodeSlotConflict)
	ErrInvalidTransition   = httperr.ErrBusiness(CodeInvalidTransition)
	ErrInvalidStatus       = httperr.ErrBusiness(CodeInvalidStatus)
	ErrNotFound            = httperr.ErrBusiness(CodeNotFound)
	ErrClientNotFound      = httperr.ErrBusiness(CodeClientNotFound)
	ErrBarberNotFound      = httperr.ErrBusiness(CodeBarberNotFound)
	ErrForbidden           = httperr.ErrBusiness(CodeForbidden)
	ErrReasonRequired      = httperr.ErrBusiness(CodeReasonRequired)
	ErrNotReschedulable    = httperr.ErrBusiness(CodeNotReschedulable)
)

func conflictWith(r Reservation) error {
	return httperr.ErrBusinessMsg(
		CodeSlotConflict,
		"slot overlaps an active appointment from "+r.Start.UTC().Format(time.RFC3339)+
			" to "+r.End.UTC().Format(time.RFC3339),
	)
}

func IsSlotConflict(err error) bool {
	return errors.Is(err, ErrSlotConflict)
}
