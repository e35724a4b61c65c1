// Package reservation keeps the employees and their booked breaks in memory.
// A Store is not safe for concurrent use; its owner serialises access.
package reservation

import (
	"sort"

	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
)

type Store struct {
	employees []*entity.Employee
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(e *entity.Employee) {
	s.employees = append(s.employees, e)
}

// RemoveByName deletes every employee with the given name, across all shifts,
// and returns how many were removed.
func (s *Store) RemoveByName(name string) int {
	kept := s.employees[:0]
	removed := 0
	for _, e := range s.employees {
		if e.Name == name {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.employees); i++ {
		s.employees[i] = nil
	}
	s.employees = kept
	return removed
}

func (s *Store) Clear() {
	s.employees = nil
}

// All returns every employee in insertion order
func (s *Store) All() []*entity.Employee {
	out := make([]*entity.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// ListByShift returns the shift's employees ordered by their first break start
// time; employees without breaks come first.
func (s *Store) ListByShift(shiftID string) []*entity.Employee {
	var out []*entity.Employee
	for _, e := range s.employees {
		if e.ShiftID == shiftID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return firstBreakMinutes(out[i]) < firstBreakMinutes(out[j])
	})
	return out
}

func firstBreakMinutes(e *entity.Employee) int {
	b, ok := e.FirstBreak()
	if !ok {
		return -1
	}
	return b.StartTime.Minutes()
}

// IsSlotTaken reports whether any employee of the shift holds a reservation
// with the slot's exact start and duration.
func (s *Store) IsSlotTaken(shiftID string, slot entity.BreakSlot) bool {
	for _, e := range s.employees {
		if e.ShiftID != shiftID {
			continue
		}
		for _, b := range e.Breaks {
			if b.Matches(slot) {
				return true
			}
		}
	}
	return false
}

// FindByDevice returns the most recent employee booked from deviceID
func (s *Store) FindByDevice(deviceID string) (*entity.Employee, bool) {
	for i := len(s.employees) - 1; i >= 0; i-- {
		if s.employees[i].DeviceID == deviceID {
			return s.employees[i], true
		}
	}
	return nil, false
}

func (s *Store) Len() int {
	return len(s.employees)
}
