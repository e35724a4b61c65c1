package service

import (
	"context"
	"sync"

	"github.com/diegoclair/slack-break-bot/internal/domain/booking"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/reservation"
	"github.com/diegoclair/slack-break-bot/internal/domain/settings"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
)

// engine is the state shared by every service. mu serializes all operations,
// including ticks, so no read observes a half-applied mutation.
type engine struct {
	mu        sync.Mutex
	catalog   *shift.Catalog
	store     *reservation.Store
	state     *settings.State
	validator *booking.Validator
	sessions  map[string]*booking.Session
	notifier  contract.Notifier
}

func newEngine(catalog *shift.Catalog, state *settings.State, notifier contract.Notifier) *engine {
	store := reservation.NewStore()
	return &engine{
		catalog:   catalog,
		store:     store,
		state:     state,
		validator: booking.NewValidator(catalog, store, state),
		sessions:  make(map[string]*booking.Session),
		notifier:  notifier,
	}
}

func (e *engine) notify(ctx context.Context, n contract.Notification) {
	if e.notifier == nil {
		return
	}
	e.notifier.Notify(ctx, n)
}

func (e *engine) shiftName(id string) string {
	s, err := e.catalog.Find(id)
	if err != nil {
		return id
	}
	return s.DisplayName
}
