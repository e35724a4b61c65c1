package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is an hour (0-23) and minute (0-59) pair
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay builds a TimeOfDay from minutes since midnight, wrapping at 24h
func NewTimeOfDay(minutes int) TimeOfDay {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

// ParseTimeOfDay parses "HH:MM" or "H:MM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time format: %s", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %s: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %s: %w", s, err)
	}
	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("invalid time: %s", s)
	}
	return t, nil
}

// MustTimeOfDay is ParseTimeOfDay for static tables; it panics on bad input
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Minutes returns minutes since midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// AddMinutes returns t moved by m minutes, wrapping at 24h boundaries
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return NewTimeOfDay(t.Minutes() + m)
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

// On anchors t on the calendar day of day, in day's location
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
