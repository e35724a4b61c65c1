package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/settings"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
)

// PasscodeChecker verifies the administrator passcode
type PasscodeChecker interface {
	Check(passcode string) error
}

type Instance struct {
	Booking *bookingService
	Admin   *adminService
	Ticker  *ticker
}

func NewInstance(dm contract.DataManager, catalog *shift.Catalog, notifier contract.Notifier, passcode PasscodeChecker, tickInterval time.Duration, loc *time.Location) (*Instance, error) {
	state, err := settings.Load(dm.Settings())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	eng := newEngine(catalog, state, notifier)

	return &Instance{
		Booking: newBooking(eng),
		Admin:   newAdmin(eng, passcode),
		Ticker: newTicker(eng, func() contract.TickSource {
			return NewTickSource(tickInterval)
		}, loc),
	}, nil
}
