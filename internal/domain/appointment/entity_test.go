package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

func newPending() *models.Appointment {
	return &models.Appointment{
		ID:        "ap-1",
		Status:    string(StatusPending),
		StartTime: at(10, 0),
		EndTime:   at(10, 30),
	}
}

func TestTransition_HappyPathStampsTimestamps(t *testing.T) {
	ap := newPending()
	now := at(9, 0)

	require.NoError(t, Transition(ap, StatusConfirmed, "u", "", now))
	require.NoError(t, Transition(ap, StatusInProgress, "u", "", now.Add(time.Hour)))
	require.NoError(t, Complete(ap, now.Add(2*time.Hour)))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	require.NotNil(t, ap.StartedAt)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)
	assert.Equal(t, now.Add(2*time.Hour), *ap.CompletedAt)
}

func TestTransition_RejectedLeavesRecordUntouched(t *testing.T) {
	ap := newPending()
	before := *ap

	err := Transition(ap, StatusInProgress, "u", "", at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, before, *ap)
}

func TestCancel_RecordsActorReasonAndTime(t *testing.T) {
	ap := newPending()
	now := at(8, 0)

	require.NoError(t, Cancel(ap, "user-client", "  running late  ", now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, "user-client", ap.CancelledBy)
	assert.Equal(t, "running late", ap.CancellationReason)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCancel_RequiresReasonAndActor(t *testing.T) {
	ap := newPending()

	assert.ErrorIs(t, Cancel(ap, "user-client", " ", at(8, 0)), ErrReasonRequired)
	assert.ErrorIs(t, Cancel(ap, "", "sick", at(8, 0)), ErrReasonRequired)
	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Nil(t, ap.CancelledAt)
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		for _, target := range allStatuses {
			ap := newPending()
			ap.Status = string(terminal)
			assert.ErrorIs(t, Transition(ap, target, "u", "reason", at(9, 0)), ErrInvalidTransition)
			assert.Equal(t, string(terminal), ap.Status)
		}
	}
}

func TestReschedule(t *testing.T) {
	ap := newPending()

	slot, err := Reschedule(ap, at(14, 0))
	require.NoError(t, err)
	assert.Equal(t, at(14, 0), ap.StartTime)
	assert.Equal(t, at(14, 30), ap.EndTime)
	assert.Equal(t, 30*time.Minute, slot.Duration())

	ap.Status = string(StatusInProgress)
	_, err = Reschedule(ap, at(15, 0))
	assert.ErrorIs(t, err, ErrNotReschedulable)
	assert.Equal(t, at(14, 0), ap.StartTime)
}
