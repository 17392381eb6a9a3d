package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

// transitions is the complete set of permitted edges. A status absent from
// an inner map cannot be reached from the outer key; terminal statuses map
// to an empty set.
var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusConfirmed: {},
		StatusCancelled: {},
		StatusNoShow:    {},
	},
	StatusConfirmed: {
		StatusInProgress: {},
		StatusCancelled:  {},
		StatusNoShow:     {},
	},
	StatusInProgress: {
		StatusCompleted: {},
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// IsActive reports whether an appointment in this status still holds its slot.
func (s Status) IsActive() bool {
	return s.IsValid() && !s.IsTerminal()
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ===============================
// Validations
// ===============================

// CanTransition fails with ErrInvalidTransition for any edge outside the table.
func CanTransition(from, to Status) error {
	next, ok := transitions[from]
	if !ok {
		return ErrInvalidTransition
	}
	if _, ok := next[to]; !ok {
		return ErrInvalidTransition
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusInProgress}
}
