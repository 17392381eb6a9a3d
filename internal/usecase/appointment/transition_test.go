package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

func TestTransitionAppointment_FullLifecycle(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, at(10, 0), "cut")
	ctx := context.Background()

	confirmed, err := f.transition.Execute(ctx, barberCaio, ap.ID, domain.StatusConfirmed, "")
	require.NoError(t, err)
	require.NotNil(t, confirmed.ConfirmedAt)
	assert.True(t, confirmed.ConfirmedAt.Equal(f.clock.Now()))

	_, err = f.transition.Execute(ctx, barberCaio, ap.ID, domain.StatusInProgress, "")
	require.NoError(t, err)

	done, err := f.transition.Execute(ctx, barberCaio, ap.ID, domain.StatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)

	assert.Equal(t, []string{
		"appointment_created",
		"appointment_confirmed",
		"appointment_in_progress",
		"appointment_completed",
	}, f.auditor.actions())
}

func TestTransitionAppointment_IllegalEdgeLeavesRecordUntouched(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, at(10, 0), "cut")

	_, err := f.transition.Execute(context.Background(), admin, ap.ID, domain.StatusCompleted, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := f.store.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
	assert.Nil(t, stored.CompletedAt)
}

func TestTransitionAppointment_CancelRecordsActorAndReason(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, at(10, 0), "cut")

	_, err := f.transition.Execute(context.Background(), ana, ap.ID, domain.StatusCancelled, "  ")
	assert.ErrorIs(t, err, domain.ErrReasonRequired)

	cancelled, err := f.transition.Execute(context.Background(), ana, ap.ID, domain.StatusCancelled, "travelling")
	require.NoError(t, err)
	assert.Equal(t, "u-ana", cancelled.CancelledBy)
	assert.Equal(t, "travelling", cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)

	_, err = f.transition.Execute(context.Background(), ana, ap.ID, domain.StatusConfirmed, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransitionAppointment_NotFoundAndForbidden(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, at(10, 0), "cut")

	_, err := f.transition.Execute(context.Background(), admin, "missing", domain.StatusConfirmed, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, outsider := range []domain.Caller{bruno, barberDiego} {
		_, err := f.transition.Execute(context.Background(), outsider, ap.ID, domain.StatusConfirmed, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}

	stored, err := f.store.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}
