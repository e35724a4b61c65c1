// Package timemath converts times of day between 24h and the 12h display form
// and renders countdowns.
package timemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
)

// Locale holds the display markers for the single configured language
type Locale struct {
	Morning       string
	Evening       string
	SecondsSuffix string
}

var (
	Arabic  = Locale{Morning: "ص", Evening: "م", SecondsSuffix: "ث"}
	English = Locale{Morning: "AM", Evening: "PM", SecondsSuffix: "s"}
)

// LocaleByName maps a config value to a Locale, defaulting to Arabic
func LocaleByName(name string) Locale {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "en", "english":
		return English
	default:
		return Arabic
	}
}

// ParseError reports a display time that could not be read back
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse display time %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return domain.ErrParse
}

// To12Hour renders t like "9:05 ص"; hour 0 is "12" with the morning marker and
// hour 12 is "12" with the evening marker.
func (l Locale) To12Hour(t entity.TimeOfDay) string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	marker := l.Morning
	if t.Hour >= 12 {
		marker = l.Evening
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, marker)
}

// ParseDisplayTime is the inverse of To12Hour
func (l Locale) ParseDisplayTime(s string) (entity.TimeOfDay, error) {
	raw := strings.TrimSpace(s)
	var evening bool
	switch {
	case strings.HasSuffix(raw, l.Evening):
		evening = true
		raw = strings.TrimSuffix(raw, l.Evening)
	case strings.HasSuffix(raw, l.Morning):
		raw = strings.TrimSuffix(raw, l.Morning)
	default:
		return entity.TimeOfDay{}, &ParseError{Input: s, Reason: "missing morning/evening marker"}
	}

	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return entity.TimeOfDay{}, &ParseError{Input: s, Reason: "expected H:MM"}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return entity.TimeOfDay{}, &ParseError{Input: s, Reason: "non-numeric hour"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return entity.TimeOfDay{}, &ParseError{Input: s, Reason: "non-numeric minute"}
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return entity.TimeOfDay{}, &ParseError{Input: s, Reason: "out of range"}
	}

	switch {
	case evening && hour != 12:
		hour += 12
	case !evening && hour == 12:
		hour = 0
	}
	return entity.TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseAny accepts either a 24h "HH:MM" or the 12h display form
func (l Locale) ParseAny(s string) (entity.TimeOfDay, error) {
	if t, err := entity.ParseTimeOfDay(s); err == nil {
		return t, nil
	}
	return l.ParseDisplayTime(s)
}

// AddMinutes wraps at 24h boundaries; no calendar rollover is tracked
func AddMinutes(t entity.TimeOfDay, m int) entity.TimeOfDay {
	return t.AddMinutes(m)
}

// FormatDuration renders d as HH:MM:SS, MM:SS or "SS <suffix>". Negative
// durations are clamped to zero.
func (l Locale) FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%02d:%02d", minutes, seconds)
	}
	return fmt.Sprintf("%02d %s", seconds, l.SecondsSuffix)
}
