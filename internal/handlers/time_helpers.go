package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-appointments/internal/timezone"
)

func parseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return timezone.ParseDate(dateStr, loc)
}

// parseDateTime reads a wall-clock date and time in the scheduling timezone.
func parseDateTime(
	loc *time.Location,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		loc,
	)
}
