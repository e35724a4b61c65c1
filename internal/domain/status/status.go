// Package status classifies break slots and booked breaks relative to the
// current time. Everything here is pure; callers inject now.
package status

import (
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
)

type SlotStatus int

const (
	Available SlotStatus = iota
	WrongDuration
	Selected
	Taken
	Expired
)

func (s SlotStatus) String() string {
	switch s {
	case Expired:
		return "expired"
	case Taken:
		return "taken"
	case Selected:
		return "selected"
	case WrongDuration:
		return "wrong-duration"
	default:
		return "available"
	}
}

// Selectable reports whether a slot in this state may be appended to a selection
func (s SlotStatus) Selectable() bool {
	return s == Available
}

// Classify computes a slot's state. Precedence is
// Expired > Taken > Selected > WrongDuration > Available. requiredDuration is
// nil once the selection is complete.
func Classify(slot entity.BreakSlot, now time.Time, isTaken, isSelected bool, requiredDuration *int) SlotStatus {
	if IsExpired(slot, now) {
		return Expired
	}
	if isTaken {
		return Taken
	}
	if isSelected {
		return Selected
	}
	if requiredDuration != nil && slot.DurationMinutes != *requiredDuration {
		return WrongDuration
	}
	return Available
}

// IsExpired reports whether the slot ended at or before now, using same-day arithmetic
func IsExpired(slot entity.BreakSlot, now time.Time) bool {
	_, end := slot.Window(now)
	return !end.After(now)
}

type Phase int

const (
	Upcoming Phase = iota
	Active
	Finished
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Finished:
		return "finished"
	default:
		return "upcoming"
	}
}

// Live is the time-relative state of a booked break. Remaining is the time
// until start for Upcoming and until end for Active; zero when Finished.
type Live struct {
	Phase     Phase
	Remaining time.Duration
}

// LiveStatus is inclusive at the break start and exclusive at its end
func LiveStatus(r entity.BreakReservation, now time.Time) Live {
	start, end := r.Slot().Window(now)
	switch {
	case now.Before(start):
		return Live{Phase: Upcoming, Remaining: start.Sub(now)}
	case now.Before(end):
		return Live{Phase: Active, Remaining: end.Sub(now)}
	default:
		return Live{Phase: Finished}
	}
}
