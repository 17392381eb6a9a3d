package appointment

import "github.com/BruksfildServices01/barber-appointments/internal/models"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleBarber Role = "BARBERO"
	RoleClient Role = "CLIENTE"
)

// Caller is the resolved identity behind a request.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

func isClientOf(c Caller, ap *models.Appointment) bool {
	return c.UserID != "" && c.UserID == ap.ClientUserID
}

func isBarberOf(c Caller, ap *models.Appointment) bool {
	return c.UserID != "" && c.UserID == ap.BarberUserID
}

// CanAccess: admins see everything; the client and the barber linked to the
// appointment see that appointment.
func CanAccess(c Caller, ap *models.Appointment) bool {
	return c.IsAdmin() || isClientOf(c, ap) || isBarberOf(c, ap)
}

func CanMutate(c Caller, ap *models.Appointment) bool {
	return CanAccess(c, ap)
}

// CanEditInternalNotes restricts staff notes to admins and the assigned barber.
func CanEditInternalNotes(c Caller, ap *models.Appointment) bool {
	return c.IsAdmin() || isBarberOf(c, ap)
}

// Authorize turns a policy decision into ErrForbidden. Denial is never
// reported as not-found.
func Authorize(c Caller, ap *models.Appointment, mutate bool) error {
	allowed := CanAccess(c, ap)
	if mutate {
		allowed = CanMutate(c, ap)
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}
