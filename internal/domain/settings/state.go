// Package settings holds the process-wide mutable configuration: the break
// policy, device name locks and theme preferences. All of it is backed by the
// key-value settings store.
package settings

import (
	"fmt"
	"log"
	"strconv"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
)

type State struct {
	kv     contract.SettingsRepo
	policy entity.Policy
}

// Load reads the persisted policy; a missing or malformed value falls back to
// the default policy.
func Load(kv contract.SettingsRepo) (*State, error) {
	s := &State{kv: kv, policy: entity.DefaultPolicy()}

	raw, found, err := kv.Get(domain.KeyMaxBreaks)
	if err != nil {
		return nil, fmt.Errorf("failed to load max breaks: %w", err)
	}
	if !found {
		return s, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || (entity.Policy{MaxBreaks: n}).Validate() != nil {
		log.Printf("Ignoring invalid stored max breaks %q, using %d", raw, s.policy.MaxBreaks)
		return s, nil
	}
	s.policy.MaxBreaks = n
	return s, nil
}

func (s *State) Policy() entity.Policy {
	return s.policy
}

func (s *State) SetMaxBreaks(n int) error {
	p := entity.Policy{MaxBreaks: n}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.kv.Set(domain.KeyMaxBreaks, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("failed to save max breaks: %w", err)
	}
	s.policy = p
	return nil
}

// LockedName returns the employee name locked to a device, or "" if none
func (s *State) LockedName(deviceID string) (string, error) {
	name, _, err := s.kv.Get(domain.LockedNameKey(deviceID))
	if err != nil {
		return "", fmt.Errorf("failed to read device lock: %w", err)
	}
	return name, nil
}

func (s *State) LockName(deviceID, name string) error {
	if err := s.kv.Set(domain.LockedNameKey(deviceID), name); err != nil {
		return fmt.Errorf("failed to lock device name: %w", err)
	}
	return nil
}

func (s *State) ClearLock(deviceID string) error {
	if err := s.kv.Remove(domain.LockedNameKey(deviceID)); err != nil {
		return fmt.Errorf("failed to clear device lock: %w", err)
	}
	return nil
}

// ClearAllLocks removes every device lock and returns how many were removed
func (s *State) ClearAllLocks() (int64, error) {
	n, err := s.kv.RemovePrefix(domain.KeyLockedNamePref)
	if err != nil {
		return 0, fmt.Errorf("failed to clear device locks: %w", err)
	}
	return n, nil
}

func themeKey(deviceID string) string {
	return domain.KeyTheme + ":" + deviceID
}

// Theme returns the stored preference, light when unset
func (s *State) Theme(deviceID string) string {
	theme, found, err := s.kv.Get(themeKey(deviceID))
	if err != nil || !found {
		return domain.ThemeLight
	}
	return theme
}

func (s *State) SetTheme(deviceID, theme string) error {
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return fmt.Errorf("unknown theme %q, use %s or %s", theme, domain.ThemeLight, domain.ThemeDark)
	}
	if err := s.kv.Set(themeKey(deviceID), theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
