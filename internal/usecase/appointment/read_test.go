package appointment

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

func TestGetAppointment_Access(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, at(10, 0), "cut")
	ctx := context.Background()

	for _, c := range []domain.Caller{admin, ana, barberCaio} {
		got, err := f.get.Execute(ctx, c, ap.ID)
		require.NoError(t, err, c.UserID)
		assert.Equal(t, ap.ID, got.ID)
	}

	for _, c := range []domain.Caller{bruno, barberDiego, {UserID: "", Role: domain.RoleClient}} {
		_, err := f.get.Execute(ctx, c, ap.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden, c.UserID)
	}

	_, err := f.get.Execute(ctx, admin, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAppointments_ByClient(t *testing.T) {
	f := newFixture(t)
	early := f.book(t, at(9, 0), "cut")
	late := f.book(t, at(11, 0), "cut")
	ctx := context.Background()

	got, err := f.list.ByClient(ctx, ana, "c-ana")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, late.ID, got[0].ID)
	assert.Equal(t, early.ID, got[1].ID)

	_, err = f.list.ByClient(ctx, bruno, "c-ana")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.list.ByClient(ctx, admin, "c-ghost")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	got, err = f.list.ByClient(ctx, admin, "c-bruno")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListAppointments_ByBarber(t *testing.T) {
	f := newFixture(t)
	f.book(t, at(9, 0), "cut")
	ctx := context.Background()

	got, err := f.list.ByBarber(ctx, barberCaio, "b-caio")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.list.ByBarber(ctx, barberDiego, "b-caio")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.list.ByBarber(ctx, ana, "b-caio")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.list.ByBarber(ctx, admin, "b-ghost")
	assert.ErrorIs(t, err, domain.ErrBarberNotFound)
}

func TestListAppointments_AllIsAdminOnlyAndPaged(t *testing.T) {
	f := newFixture(t)
	for h := 9; h < 12; h++ {
		f.book(t, at(h, 0), "cut")
	}
	ctx := context.Background()

	_, err := f.list.All(ctx, barberCaio, 1, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	page1, err := f.list.All(ctx, admin, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.True(t, page1[0].StartTime.Equal(at(11, 0)))

	page2, err := f.list.All(ctx, admin, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.True(t, page2[0].StartTime.Equal(at(9, 0)))

	defaults, err := f.list.All(ctx, admin, 0, 0)
	require.NoError(t, err)
	assert.Len(t, defaults, 3)

	huge, err := f.list.All(ctx, admin, math.MaxInt, 10)
	require.NoError(t, err)
	assert.Empty(t, huge)
}

func TestPaging(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults", 0, 0, DefaultPage, DefaultLimit},
		{"negative", -3, -1, DefaultPage, DefaultLimit},
		{"within bounds", 4, 25, 4, 25},
		{"limit capped", 2, 1000, 2, MaxLimit},
		{"page capped", math.MaxInt, 10, MaxPage, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := Paging(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.GreaterOrEqual(t, (page-1)*limit, 0)
		})
	}
}
