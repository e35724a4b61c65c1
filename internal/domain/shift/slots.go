package shift

import (
	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
)

const minutesPerDay = 24 * 60

// GenerateSlots returns the candidate break slots of a shift in chronological
// order. Every eligible position yields one slot per break duration, shortest
// first. Positions start one hour after the shift starts, advance in 15 minute
// steps and stop so that no break ends inside the shift's last hour.
func GenerateSlots(s entity.ShiftDefinition) []entity.BreakSlot {
	start := s.StartTime.Minutes()
	end := s.EndTime.Minutes()
	if end < start {
		end += minutesPerDay
	}

	longest := 0
	for _, d := range domain.BreakDurations {
		if d > longest {
			longest = d
		}
	}

	first := start + domain.ShiftLeadInMinutes
	last := end - domain.ShiftWindDownMins - longest

	var slots []entity.BreakSlot
	for cursor := first; cursor <= last; cursor += domain.SlotStepMinutes {
		at := entity.NewTimeOfDay(cursor)
		for _, d := range domain.BreakDurations {
			slots = append(slots, entity.BreakSlot{StartTime: at, DurationMinutes: d})
		}
		if len(slots) > domain.MaxGeneratedSlots {
			break
		}
	}
	return slots
}

// Offers reports whether slot is one of the shift's generated slots
func Offers(s entity.ShiftDefinition, slot entity.BreakSlot) bool {
	for _, candidate := range GenerateSlots(s) {
		if candidate == slot {
			return true
		}
	}
	return false
}
