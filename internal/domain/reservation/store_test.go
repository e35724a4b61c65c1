package reservation

import (
	"testing"

	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservations(pairs ...interface{}) []entity.BreakReservation {
	var out []entity.BreakReservation
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, entity.BreakReservation{
			StartTime:       entity.MustTimeOfDay(pairs[i].(string)),
			DurationMinutes: pairs[i+1].(int),
		})
	}
	return out
}

func TestStore_ListByShift(t *testing.T) {
	s := NewStore()
	s.Add(&entity.Employee{ID: "1", Name: "Late", ShiftID: "morning", Breaks: reservations("11:00", 15, "12:00", 30)})
	s.Add(&entity.Employee{ID: "2", Name: "Other shift", ShiftID: "night", Breaks: reservations("23:00", 15)})
	s.Add(&entity.Employee{ID: "3", Name: "Early", ShiftID: "morning", Breaks: reservations("09:15", 15)})
	s.Add(&entity.Employee{ID: "4", Name: "No breaks", ShiftID: "morning"})

	got := s.ListByShift("morning")
	require.Len(t, got, 3)
	assert.Equal(t, "No breaks", got[0].Name)
	assert.Equal(t, "Early", got[1].Name)
	assert.Equal(t, "Late", got[2].Name)

	assert.Empty(t, s.ListByShift("afternoon"))
}

func TestStore_IsSlotTaken(t *testing.T) {
	s := NewStore()
	s.Add(&entity.Employee{ID: "1", Name: "A", ShiftID: "morning", Breaks: reservations("10:00", 15)})

	slot := entity.BreakSlot{StartTime: entity.MustTimeOfDay("10:00"), DurationMinutes: 15}
	assert.True(t, s.IsSlotTaken("morning", slot))
	assert.False(t, s.IsSlotTaken("afternoon", slot))

	slot.DurationMinutes = 30
	assert.False(t, s.IsSlotTaken("morning", slot), "same start, other duration is a different slot")
}

func TestStore_RemoveByName(t *testing.T) {
	s := NewStore()
	s.Add(&entity.Employee{ID: "1", Name: "Sara", ShiftID: "morning"})
	s.Add(&entity.Employee{ID: "2", Name: "Omar", ShiftID: "morning"})
	s.Add(&entity.Employee{ID: "3", Name: "Sara", ShiftID: "night"})

	assert.Equal(t, 2, s.RemoveByName("Sara"))
	assert.Equal(t, 0, s.RemoveByName("Sara"))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "Omar", s.All()[0].Name)
}

func TestStore_ClearAndFindByDevice(t *testing.T) {
	s := NewStore()
	s.Add(&entity.Employee{ID: "1", Name: "A", DeviceID: "U1"})
	s.Add(&entity.Employee{ID: "2", Name: "B", DeviceID: "U1"})

	e, ok := s.FindByDevice("U1")
	require.True(t, ok)
	assert.Equal(t, "2", e.ID)

	_, ok = s.FindByDevice("U2")
	assert.False(t, ok)

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.All())
}
