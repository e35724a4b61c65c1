package entity

import (
	"fmt"
	"time"
)

// BreakSlot is a candidate break opportunity. Identity is the (start, duration) pair.
type BreakSlot struct {
	StartTime       TimeOfDay
	DurationMinutes int
}

func (s BreakSlot) EndTime() TimeOfDay {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

// Key is a stable textual identity, e.g. "09:00-15"
func (s BreakSlot) Key() string {
	return fmt.Sprintf("%s-%d", s.StartTime, s.DurationMinutes)
}

// Window returns start and end anchored on the day of now
func (s BreakSlot) Window(now time.Time) (time.Time, time.Time) {
	start := s.StartTime.On(now)
	return start, start.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// BreakReservation is a confirmed break owned by exactly one employee
type BreakReservation struct {
	StartTime       TimeOfDay
	DurationMinutes int
}

func (r BreakReservation) Slot() BreakSlot {
	return BreakSlot{StartTime: r.StartTime, DurationMinutes: r.DurationMinutes}
}

func (r BreakReservation) Matches(slot BreakSlot) bool {
	return r.StartTime == slot.StartTime && r.DurationMinutes == slot.DurationMinutes
}
