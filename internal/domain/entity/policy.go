package entity

import "github.com/diegoclair/slack-break-bot/internal/domain"

// Policy governs how many breaks are booked per shift and in what duration order
type Policy struct {
	MaxBreaks int
}

func DefaultPolicy() Policy {
	return Policy{MaxBreaks: domain.DefaultBreaksPerShift}
}

func (p Policy) Validate() error {
	if p.MaxBreaks < domain.MinBreaksPerShift || p.MaxBreaks > domain.MaxBreaksPerShift {
		return domain.ErrInvalidPolicy
	}
	return nil
}

// RequiredOrder returns the duration sequence for this policy
func (p Policy) RequiredOrder() []int {
	n := p.MaxBreaks
	if n > len(domain.ReferenceOrder) {
		n = len(domain.ReferenceOrder)
	}
	if n < 0 {
		n = 0
	}
	order := make([]int, n)
	copy(order, domain.ReferenceOrder[:n])
	return order
}

// RequiredDuration returns the duration required at position index, or false
// once the policy's breaks are all picked
func (p Policy) RequiredDuration(index int) (int, bool) {
	order := p.RequiredOrder()
	if index < 0 || index >= len(order) {
		return 0, false
	}
	return order[index], true
}
