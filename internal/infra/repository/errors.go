package repository

import (
	"errors"

	cr "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

const (
	pgExclusionViolation = "23P01"
	pgSerializationFail  = "40001"
)

// translate maps driver errors onto domain errors and wraps everything else
// with a stack trace.
func translate(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}
	if isExclusionViolation(err) {
		return domain.ErrSlotConflict
	}
	return cr.Wrap(err, msg)
}

// isExclusionViolation detects the appointments_no_overlap constraint (or a
// serialisation failure on the same rows) rejecting a second writer.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgSerializationFail
	}
	return false
}
