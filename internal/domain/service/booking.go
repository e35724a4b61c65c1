package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/booking"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
	"github.com/diegoclair/slack-break-bot/internal/domain/status"
)

type bookingService struct {
	eng *engine
}

func newBooking(eng *engine) *bookingService {
	return &bookingService{eng: eng}
}

func (s *bookingService) ListShifts() []entity.ShiftDefinition {
	return s.eng.catalog.List()
}

// SelectShift starts a fresh selection for the device
func (s *bookingService) SelectShift(deviceID, shiftID string) (entity.ShiftDefinition, error) {
	sh, err := s.eng.catalog.Find(strings.TrimSpace(shiftID))
	if err != nil {
		return entity.ShiftDefinition{}, err
	}

	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	s.eng.sessions[deviceID] = booking.NewSession(sh.ID)
	return sh, nil
}

func (s *bookingService) Slots(deviceID string, now time.Time) (*contract.SlotBoard, error) {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	session, ok := s.eng.sessions[deviceID]
	if !ok {
		return nil, domain.ErrNoShiftSelected
	}
	return s.board(deviceID, session, now)
}

func (s *bookingService) Toggle(deviceID string, slot entity.BreakSlot, now time.Time) (*contract.SlotBoard, error) {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	session, ok := s.eng.sessions[deviceID]
	if !ok {
		return nil, domain.ErrNoShiftSelected
	}

	if err := s.eng.validator.Toggle(session, s.eng.state.Policy(), slot, now); err != nil {
		return nil, err
	}
	return s.board(deviceID, session, now)
}

func (s *bookingService) Confirm(ctx context.Context, deviceID, name string, now time.Time) (*entity.Employee, error) {
	s.eng.mu.Lock()
	session, ok := s.eng.sessions[deviceID]
	if !ok {
		s.eng.mu.Unlock()
		return nil, domain.ErrNoShiftSelected
	}
	employee, err := s.eng.validator.Confirm(session, s.eng.state.Policy(), name, deviceID, now)
	s.eng.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log.Printf("Booked %d breaks for %s in shift %s", len(employee.Breaks), employee.Name, employee.ShiftID)

	times := make([]string, 0, len(employee.Breaks))
	for _, b := range employee.Breaks {
		times = append(times, fmt.Sprintf("%s (%d min)", b.StartTime, b.DurationMinutes))
	}
	s.eng.notify(ctx, contract.Notification{
		Kind:    contract.NotifySuccess,
		Title:   "Breaks booked",
		Message: fmt.Sprintf("%s booked %s in %s", employee.Name, strings.Join(times, ", "), s.eng.shiftName(employee.ShiftID)),
	})

	return employee, nil
}

// Schedule lists the shift's bookings sorted by first break, padded to the
// policy's break count.
func (s *bookingService) Schedule(shiftID string, now time.Time) (*contract.Schedule, error) {
	sh, err := s.eng.catalog.Find(shiftID)
	if err != nil {
		return nil, err
	}

	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	maxBreaks := s.eng.state.Policy().MaxBreaks
	employees := s.eng.store.ListByShift(sh.ID)

	rows := make([]contract.ScheduleRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, scheduleRow(e, maxBreaks, now))
	}

	return &contract.Schedule{Shift: sh, Rows: rows, Now: now}, nil
}

// MyBooking returns the device's latest booking, or nil when it has none
func (s *bookingService) MyBooking(deviceID string, now time.Time) (*contract.ScheduleRow, error) {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	e, ok := s.eng.store.FindByDevice(deviceID)
	if !ok {
		return nil, nil
	}
	row := scheduleRow(e, len(e.Breaks), now)
	return &row, nil
}

func (s *bookingService) SetTheme(deviceID, theme string) error {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	return s.eng.state.SetTheme(deviceID, strings.ToLower(strings.TrimSpace(theme)))
}

func (s *bookingService) Theme(deviceID string) string {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	return s.eng.state.Theme(deviceID)
}

// board must be called with the engine lock held
func (s *bookingService) board(deviceID string, session *booking.Session, now time.Time) (*contract.SlotBoard, error) {
	sh, err := s.eng.catalog.Find(session.ShiftID)
	if err != nil {
		return nil, err
	}

	policy := s.eng.state.Policy()
	slots := shift.GenerateSlots(sh)
	views := make([]contract.SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, contract.SlotView{
			Slot:   slot,
			Status: s.eng.validator.Classify(session, policy, slot, now),
		})
	}

	locked, err := s.eng.state.LockedName(deviceID)
	if err != nil {
		log.Printf("Error reading device lock for %s: %v", deviceID, err)
	}

	return &contract.SlotBoard{
		Shift:            sh,
		Slots:            views,
		Selected:         append([]entity.BreakSlot(nil), session.Selected...),
		MaxBreaks:        policy.MaxBreaks,
		RequiredOrder:    policy.RequiredOrder(),
		RequiredDuration: session.RequiredDuration(policy),
		LockedName:       locked,
	}, nil
}

func scheduleRow(e *entity.Employee, columns int, now time.Time) contract.ScheduleRow {
	if len(e.Breaks) > columns {
		columns = len(e.Breaks)
	}

	cells := make([]contract.BreakCell, columns)
	for i := range cells {
		b, ok := e.BreakAt(i)
		if !ok {
			continue
		}
		cells[i] = contract.BreakCell{Reservation: &b, Live: status.LiveStatus(b, now)}
	}

	return contract.ScheduleRow{Employee: *e, Cells: cells}
}
