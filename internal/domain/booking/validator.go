package booking

import (
	"strings"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/diegoclair/slack-break-bot/internal/domain/reservation"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
	"github.com/diegoclair/slack-break-bot/internal/domain/status"
	"github.com/google/uuid"
)

// Locker persists the employee name a device booked under
type Locker interface {
	LockedName(deviceID string) (string, error)
	LockName(deviceID, name string) error
}

type Validator struct {
	catalog *shift.Catalog
	store   *reservation.Store
	locker  Locker
	newID   func() string
}

func NewValidator(catalog *shift.Catalog, store *reservation.Store, locker Locker) *Validator {
	return &Validator{
		catalog: catalog,
		store:   store,
		locker:  locker,
		newID:   uuid.NewString,
	}
}

// Classify computes the slot's status for this session
func (v *Validator) Classify(s *Session, p entity.Policy, slot entity.BreakSlot, now time.Time) status.SlotStatus {
	return status.Classify(
		slot,
		now,
		v.store.IsSlotTaken(s.ShiftID, slot),
		s.IsSelected(slot),
		s.RequiredDuration(p),
	)
}

// Toggle selects or deselects a slot. Only the last selected slot can be
// removed; a new slot must match the duration required at its position.
func (v *Validator) Toggle(s *Session, p entity.Policy, slot entity.BreakSlot, now time.Time) error {
	if s.ShiftID == "" {
		return domain.ErrNoShiftSelected
	}

	if i := s.IndexOf(slot); i >= 0 {
		if i != len(s.Selected)-1 {
			return domain.ErrOutOfOrderRemoval
		}
		s.Selected = s.Selected[:i]
		s.confirmed = false
		return nil
	}

	if len(s.Selected) >= p.MaxBreaks {
		return domain.ErrLimitReached
	}

	sh, err := v.catalog.Find(s.ShiftID)
	if err != nil {
		return err
	}
	if !shift.Offers(sh, slot) {
		return domain.ErrSlotUnavailable
	}

	switch v.Classify(s, p, slot, now) {
	case status.Expired, status.Taken:
		return domain.ErrSlotUnavailable
	case status.WrongDuration:
		return domain.ErrWrongDuration
	}

	s.Selected = append(s.Selected, slot)
	s.confirmed = false
	return nil
}

// Confirm books the session's selection for the employee. When the device is
// locked, name may be empty and the locked name is used.
func (v *Validator) Confirm(s *Session, p entity.Policy, name, deviceID string, now time.Time) (*entity.Employee, error) {
	if s.ShiftID == "" {
		return nil, domain.ErrNoShiftSelected
	}

	locked, err := v.locker.LockedName(deviceID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	switch {
	case locked != "" && name == "":
		name = locked
	case locked != "" && name != locked:
		return nil, domain.ErrNameLocked
	case name == "":
		return nil, domain.ErrMissingName
	}

	if len(s.Selected) != p.MaxBreaks {
		return nil, domain.ErrIncompleteSelection
	}

	for _, slot := range s.Selected {
		if v.store.IsSlotTaken(s.ShiftID, slot) {
			return nil, domain.ErrSlotTaken
		}
	}

	if locked == "" {
		if err := v.locker.LockName(deviceID, name); err != nil {
			return nil, err
		}
	}

	breaks := make([]entity.BreakReservation, 0, len(s.Selected))
	for _, slot := range s.Selected {
		breaks = append(breaks, entity.BreakReservation{StartTime: slot.StartTime, DurationMinutes: slot.DurationMinutes})
	}

	employee := &entity.Employee{
		ID:        v.newID(),
		Name:      name,
		ShiftID:   s.ShiftID,
		DeviceID:  deviceID,
		Breaks:    breaks,
		CreatedAt: now,
	}
	v.store.Add(employee)
	s.reset()

	return employee, nil
}
