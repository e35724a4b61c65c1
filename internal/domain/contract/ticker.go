package contract

import "time"

// TickSource delivers the periodic refresh tick
type TickSource interface {
	C() <-chan time.Time
	Stop()
}
