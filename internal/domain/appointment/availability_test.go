package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeSlots_SkipsOccupiedAndPast(t *testing.T) {
	occupied := []TimeSlot{
		{Start: at(9, 30), End: at(10, 0)},
	}

	slots := FreeSlots(at(9, 0), at(11, 0), 30*time.Minute, 30*time.Minute, occupied, at(8, 0))
	require.Len(t, slots, 3)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(10, 0), slots[1].Start, "slot right after a booking is free")
	assert.Equal(t, at(10, 30), slots[2].Start)
	assert.Equal(t, at(11, 0), slots[2].End)

	slots = FreeSlots(at(9, 0), at(11, 0), 30*time.Minute, 30*time.Minute, occupied, at(10, 15))
	require.Len(t, slots, 1)
	assert.Equal(t, at(10, 30), slots[0].Start)
}

func TestFreeSlots_DegenerateInput(t *testing.T) {
	assert.Empty(t, FreeSlots(at(9, 0), at(9, 0), time.Minute, time.Minute, nil, at(0, 0)))
	assert.Empty(t, FreeSlots(at(9, 0), at(10, 0), 0, time.Minute, nil, at(0, 0)))
	assert.Empty(t, FreeSlots(at(9, 0), at(9, 20), 30*time.Minute, 15*time.Minute, nil, at(0, 0)))
}

func TestSlotsFrom(t *testing.T) {
	slots := SlotsFrom([]Reservation{
		{AppointmentID: "a", Interval: Interval{Start: at(9, 0), End: at(9, 30)}, Status: StatusPending},
	})
	require.Len(t, slots, 1)
	assert.Equal(t, TimeSlot{Start: at(9, 0), End: at(9, 30)}, slots[0])
}
