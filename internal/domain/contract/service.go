package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/diegoclair/slack-break-bot/internal/domain/status"
)

// SlotView is a slot with its status for one session
type SlotView struct {
	Slot   entity.BreakSlot
	Status status.SlotStatus
}

// SlotBoard is what a session sees while picking breaks
type SlotBoard struct {
	Shift            entity.ShiftDefinition
	Slots            []SlotView
	Selected         []entity.BreakSlot
	MaxBreaks        int
	RequiredOrder    []int
	RequiredDuration *int
	LockedName       string
}

// BreakCell is one cell of the schedule table; Reservation is nil for an empty cell
type BreakCell struct {
	Reservation *entity.BreakReservation
	Live        status.Live
}

type ScheduleRow struct {
	Employee entity.Employee
	Cells    []BreakCell
}

type Schedule struct {
	Shift entity.ShiftDefinition
	Rows  []ScheduleRow
	Now   time.Time
}

type BookingService interface {
	ListShifts() []entity.ShiftDefinition
	SelectShift(deviceID, shiftID string) (entity.ShiftDefinition, error)
	Slots(deviceID string, now time.Time) (*SlotBoard, error)
	Toggle(deviceID string, slot entity.BreakSlot, now time.Time) (*SlotBoard, error)
	Confirm(ctx context.Context, deviceID, name string, now time.Time) (*entity.Employee, error)
	Schedule(shiftID string, now time.Time) (*Schedule, error)
	MyBooking(deviceID string, now time.Time) (*ScheduleRow, error)
	SetTheme(deviceID, theme string) error
	Theme(deviceID string) string
}

type AdminService interface {
	Authenticate(passcode string) error
	MaxBreaks() int
	SetMaxBreaks(ctx context.Context, n int) error
	DeleteAll(ctx context.Context) int
	DeleteByName(ctx context.Context, name string) int
	ClearDeviceLock(ctx context.Context, deviceID string) error
	ClearAllLocks(ctx context.Context) (int, error)
	Employees() []entity.Employee
	Export(format string, now time.Time) (*ExportFile, error)
}

// ExportFile is a rendered bookings table ready for download
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
