package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/diegoclair/slack-break-bot/internal/export"
)

type adminService struct {
	eng      *engine
	passcode PasscodeChecker
}

func newAdmin(eng *engine, passcode PasscodeChecker) *adminService {
	return &adminService{eng: eng, passcode: passcode}
}

func (s *adminService) Authenticate(passcode string) error {
	return s.passcode.Check(passcode)
}

func (s *adminService) MaxBreaks() int {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	return s.eng.state.Policy().MaxBreaks
}

// SetMaxBreaks changes the policy; selections already in progress are kept
// and are completed against the new count.
func (s *adminService) SetMaxBreaks(ctx context.Context, n int) error {
	s.eng.mu.Lock()
	err := s.eng.state.SetMaxBreaks(n)
	s.eng.mu.Unlock()
	if err != nil {
		return err
	}

	log.Printf("Max breaks per shift set to %d", n)
	s.eng.notify(ctx, contract.Notification{
		Kind:    contract.NotifyWarning,
		Title:   "Break policy changed",
		Message: fmt.Sprintf("Each employee now books %d breaks per shift", n),
	})
	return nil
}

func (s *adminService) DeleteAll(ctx context.Context) int {
	s.eng.mu.Lock()
	n := s.eng.store.Len()
	s.eng.store.Clear()
	s.eng.mu.Unlock()

	log.Printf("Deleted all %d bookings", n)
	s.eng.notify(ctx, contract.Notification{
		Kind:    contract.NotifyWarning,
		Title:   "Bookings cleared",
		Message: fmt.Sprintf("An administrator removed all %d bookings", n),
	})
	return n
}

// DeleteByName removes every booking under the name, across all shifts
func (s *adminService) DeleteByName(ctx context.Context, name string) int {
	name = strings.TrimSpace(name)

	s.eng.mu.Lock()
	n := s.eng.store.RemoveByName(name)
	s.eng.mu.Unlock()

	log.Printf("Deleted %d bookings for %s", n, name)
	if n > 0 {
		s.eng.notify(ctx, contract.Notification{
			Kind:    contract.NotifyWarning,
			Title:   "Booking removed",
			Message: fmt.Sprintf("An administrator removed the bookings of %s", name),
		})
	}
	return n
}

func (s *adminService) ClearDeviceLock(ctx context.Context, deviceID string) error {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	if err := s.eng.state.ClearLock(deviceID); err != nil {
		return err
	}
	log.Printf("Cleared name lock for device %s", deviceID)
	return nil
}

func (s *adminService) ClearAllLocks(ctx context.Context) (int, error) {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	n, err := s.eng.state.ClearAllLocks()
	if err != nil {
		return 0, err
	}
	log.Printf("Cleared %d name locks", n)
	return int(n), nil
}

func (s *adminService) Employees() []entity.Employee {
	s.eng.mu.Lock()
	defer s.eng.mu.Unlock()

	all := s.eng.store.All()
	out := make([]entity.Employee, 0, len(all))
	for _, e := range all {
		out = append(out, *e)
	}
	return out
}

func (s *adminService) Export(format string, now time.Time) (*contract.ExportFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	s.eng.mu.Lock()
	all := s.eng.store.All()
	employees := make([]entity.Employee, 0, len(all))
	for _, e := range all {
		employees = append(employees, *e)
	}
	maxBreaks := s.eng.state.Policy().MaxBreaks
	s.eng.mu.Unlock()

	table := export.BuildTable(employees, s.eng.shiftName, maxBreaks)

	file, err := export.Render(f, table, now)
	if err != nil {
		return nil, fmt.Errorf("failed to export bookings: %w", err)
	}
	return file, nil
}
