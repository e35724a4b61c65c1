package entity

import "time"

type Employee struct {
	ID        string
	Name      string
	ShiftID   string
	DeviceID  string
	Breaks    []BreakReservation
	CreatedAt time.Time
}

// FirstBreak returns the earliest booked break, if any
func (e *Employee) FirstBreak() (BreakReservation, bool) {
	if len(e.Breaks) == 0 {
		return BreakReservation{}, false
	}
	return e.Breaks[0], true
}

// BreakAt returns the break at position i; ok is false for an empty cell
func (e *Employee) BreakAt(i int) (BreakReservation, bool) {
	if i < 0 || i >= len(e.Breaks) {
		return BreakReservation{}, false
	}
	return e.Breaks[i], true
}
