package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/status"
)

type timeTicker struct {
	t *time.Ticker
}

// NewTickSource returns a TickSource backed by time.Ticker
func NewTickSource(interval time.Duration) contract.TickSource {
	return &timeTicker{t: time.NewTicker(interval)}
}

func (t *timeTicker) C() <-chan time.Time {
	return t.t.C
}

func (t *timeTicker) Stop() {
	t.t.Stop()
}

// ticker refreshes "now" on every tick and announces breaks that start or
// finish. Ticks run on one goroutine and never overlap.
type ticker struct {
	eng       *engine
	newSource func() contract.TickSource
	loc       *time.Location
	phases    map[string]status.Phase

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
	running  bool
}

// newTicker reads tick instants in loc, the zone booked break times belong to
func newTicker(eng *engine, newSource func() contract.TickSource, loc *time.Location) *ticker {
	if loc == nil {
		loc = time.Local
	}
	return &ticker{
		eng:       eng,
		newSource: newSource,
		loc:       loc,
		phases:    make(map[string]status.Phase),
	}
}

func (t *ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.running = true
	t.stopChan = make(chan struct{})
	t.done = make(chan struct{})

	log.Println("Ticker starting...")
	go t.mainLoop(t.newSource(), t.stopChan, t.done)
}

// Stop blocks until the loop has exited; no tick is processed after it
// returns. Calling it more than once is a no-op.
func (t *ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	log.Println("Ticker stopping...")
	close(t.stopChan)
	<-t.done
	t.running = false
}

func (t *ticker) mainLoop(src contract.TickSource, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer src.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-stop:
			return
		case now := <-src.C():
			// Stop wins over a tick that raced with it
			select {
			case <-stop:
				return
			default:
			}
			t.tick(ctx, now.In(t.loc))
		}
	}
}

type phaseChange struct {
	name   string
	device string
	start  string
	mins   int
	live   status.Live
}

// tick recomputes the live status of every booked break and notifies on
// phase transitions. The first observation of a break only records it.
func (t *ticker) tick(ctx context.Context, now time.Time) {
	t.eng.mu.Lock()
	var changes []phaseChange
	seen := make(map[string]bool, len(t.phases))
	for _, e := range t.eng.store.All() {
		for i, b := range e.Breaks {
			key := fmt.Sprintf("%s#%d", e.ID, i)
			seen[key] = true

			live := status.LiveStatus(b, now)
			prev, known := t.phases[key]
			t.phases[key] = live.Phase
			// Finished to Upcoming is the day rolling over, not an event
			if known && prev != live.Phase && live.Phase != status.Upcoming {
				changes = append(changes, phaseChange{
					name:   e.Name,
					device: e.DeviceID,
					start:  b.StartTime.String(),
					mins:   b.DurationMinutes,
					live:   live,
				})
			}
		}
	}
	for key := range t.phases {
		if !seen[key] {
			delete(t.phases, key)
		}
	}
	t.eng.mu.Unlock()

	for _, c := range changes {
		t.eng.notify(ctx, phaseNotification(c))
	}
}

func phaseNotification(c phaseChange) contract.Notification {
	if c.live.Phase == status.Active {
		return contract.Notification{
			Kind:      contract.NotifyWarning,
			Title:     "Break started",
			Message:   fmt.Sprintf("%s, your %d min break at %s has started. Back in %d min.", c.name, c.mins, c.start, int(c.live.Remaining.Round(time.Minute)/time.Minute)),
			Recipient: c.device,
		}
	}
	return contract.Notification{
		Kind:      contract.NotifySuccess,
		Title:   "Break finished",
		Message: fmt.Sprintf("%s is back from the %d min break at %s.", c.name, c.mins, c.start),
	}
}
