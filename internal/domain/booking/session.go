// Package booking enforces the break selection order and turns a complete
// selection into a reservation.
package booking

import (
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
)

type State int

const (
	Empty State = iota
	Picking
	ReadyToConfirm
	Confirmed
)

func (s State) String() string {
	switch s {
	case Picking:
		return "picking"
	case ReadyToConfirm:
		return "ready"
	case Confirmed:
		return "confirmed"
	default:
		return "empty"
	}
}

// Session is the transient selection of one device
type Session struct {
	ShiftID   string
	Selected  []entity.BreakSlot
	confirmed bool
}

func NewSession(shiftID string) *Session {
	return &Session{ShiftID: shiftID}
}

func (s *Session) State(p entity.Policy) State {
	switch {
	case len(s.Selected) == 0 && s.confirmed:
		return Confirmed
	case len(s.Selected) == 0:
		return Empty
	case len(s.Selected) >= p.MaxBreaks:
		return ReadyToConfirm
	default:
		return Picking
	}
}

// IndexOf returns the slot's position in the selection or -1
func (s *Session) IndexOf(slot entity.BreakSlot) int {
	for i, sel := range s.Selected {
		if sel == slot {
			return i
		}
	}
	return -1
}

func (s *Session) IsSelected(slot entity.BreakSlot) bool {
	return s.IndexOf(slot) >= 0
}

// RequiredDuration is the duration the next pick must have, nil when the
// selection is complete
func (s *Session) RequiredDuration(p entity.Policy) *int {
	d, ok := p.RequiredDuration(len(s.Selected))
	if !ok {
		return nil
	}
	return &d
}

func (s *Session) reset() {
	s.Selected = nil
	s.confirmed = true
}
