package booking

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/diegoclair/slack-break-bot/internal/domain/reservation"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
	"github.com/diegoclair/slack-break-bot/internal/domain/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLocker struct {
	names   map[string]string
	lockErr error
}

func (m *memLocker) LockedName(deviceID string) (string, error) {
	return m.names[deviceID], nil
}

func (m *memLocker) LockName(deviceID, name string) error {
	if m.lockErr != nil {
		return m.lockErr
	}
	m.names[deviceID] = name
	return nil
}

type fixture struct {
	validator *Validator
	store     *reservation.Store
	locker    *memLocker
	policy    entity.Policy
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := reservation.NewStore()
	locker := &memLocker{names: map[string]string{}}
	v := NewValidator(shift.DefaultCatalog(), store, locker)
	ids := 0
	v.newID = func() string {
		ids++
		return fmt.Sprintf("emp-%d", ids)
	}

	return &fixture{
		validator: v,
		store:     store,
		locker:    locker,
		policy:    entity.Policy{MaxBreaks: 3},
		now:       time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
	}
}

func slot(hhmm string, d int) entity.BreakSlot {
	return entity.BreakSlot{StartTime: entity.MustTimeOfDay(hhmm), DurationMinutes: d}
}

func (f *fixture) pickAll(t *testing.T, s *Session, slots ...entity.BreakSlot) {
	t.Helper()
	for _, sl := range slots {
		require.NoError(t, f.validator.Toggle(s, f.policy, sl, f.now), sl.Key())
	}
}

func TestValidator_Toggle_RequiredOrder(t *testing.T) {
	f := newFixture(t)
	s := NewSession("morning")

	err := f.validator.Toggle(s, f.policy, slot("09:00", 30), f.now)
	assert.True(t, errors.Is(err, domain.ErrWrongDuration), "first break must be 15 minutes")

	require.NoError(t, f.validator.Toggle(s, f.policy, slot("09:00", 15), f.now))
	assert.Equal(t, Picking, s.State(f.policy))

	err = f.validator.Toggle(s, f.policy, slot("10:00", 15), f.now)
	assert.True(t, errors.Is(err, domain.ErrWrongDuration), "second break must be 30 minutes")

	require.NoError(t, f.validator.Toggle(s, f.policy, slot("11:00", 30), f.now))
	require.NoError(t, f.validator.Toggle(s, f.policy, slot("13:00", 15), f.now))
	assert.Equal(t, ReadyToConfirm, s.State(f.policy))

	err = f.validator.Toggle(s, f.policy, slot("14:00", 15), f.now)
	assert.True(t, errors.Is(err, domain.ErrLimitReached))
}

func TestValidator_Toggle_LIFORemoval(t *testing.T) {
	f := newFixture(t)
	s := NewSession("morning")
	s1, s2, s3 := slot("09:00", 15), slot("11:00", 30), slot("13:00", 15)
	f.pickAll(t, s, s1, s2, s3)

	err := f.validator.Toggle(s, f.policy, s2, f.now)
	assert.True(t, errors.Is(err, domain.ErrOutOfOrderRemoval))
	err = f.validator.Toggle(s, f.policy, s1, f.now)
	assert.True(t, errors.Is(err, domain.ErrOutOfOrderRemoval))
	assert.Len(t, s.Selected, 3)

	require.NoError(t, f.validator.Toggle(s, f.policy, s3, f.now))
	require.NoError(t, f.validator.Toggle(s, f.policy, s2, f.now))
	require.NoError(t, f.validator.Toggle(s, f.policy, s1, f.now))
	assert.Equal(t, Empty, s.State(f.policy))
}

func TestValidator_Toggle_Unavailable(t *testing.T) {
	f := newFixture(t)
	f.store.Add(&entity.Employee{ID: "x", Name: "Someone", ShiftID: "morning", Breaks: []entity.BreakReservation{
		{StartTime: entity.MustTimeOfDay("10:00"), DurationMinutes: 15},
	}})

	tests := []struct {
		name string
		slot entity.BreakSlot
		now  time.Time
		want error
	}{
		{name: "taken by another employee", slot: slot("10:00", 15), now: f.now, want: domain.ErrSlotUnavailable},
		{name: "already over", slot: slot("09:00", 15), now: f.now.Add(2 * time.Hour), want: domain.ErrSlotUnavailable},
		{name: "not generated for shift", slot: slot("08:15", 15), now: f.now, want: domain.ErrSlotUnavailable},
		{name: "off grid", slot: slot("10:05", 15), now: f.now, want: domain.ErrSlotUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("morning")
			err := f.validator.Toggle(s, f.policy, tt.slot, tt.now)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, s.Selected)
		})
	}

	assert.True(t, errors.Is(f.validator.Toggle(&Session{}, f.policy, slot("10:00", 15), f.now), domain.ErrNoShiftSelected))
}

func TestValidator_Classify(t *testing.T) {
	f := newFixture(t)
	f.store.Add(&entity.Employee{ID: "x", ShiftID: "morning", Breaks: []entity.BreakReservation{
		{StartTime: entity.MustTimeOfDay("10:00"), DurationMinutes: 15},
	}})
	s := NewSession("morning")
	f.pickAll(t, s, slot("09:00", 15))

	assert.Equal(t, status.Taken, f.validator.Classify(s, f.policy, slot("10:00", 15), f.now))
	assert.Equal(t, status.Selected, f.validator.Classify(s, f.policy, slot("09:00", 15), f.now))
	assert.Equal(t, status.WrongDuration, f.validator.Classify(s, f.policy, slot("11:00", 15), f.now))
	assert.Equal(t, status.Available, f.validator.Classify(s, f.policy, slot("11:00", 30), f.now))
}

func TestValidator_Confirm(t *testing.T) {
	t.Run("Should book and lock the device", func(t *testing.T) {
		f := newFixture(t)
		s := NewSession("morning")
		f.pickAll(t, s, slot("09:00", 15), slot("11:00", 30), slot("13:00", 15))

		e, err := f.validator.Confirm(s, f.policy, "  Sara Ali  ", "U1", f.now)
		require.NoError(t, err)
		assert.Equal(t, "Sara Ali", e.Name)
		assert.Equal(t, "morning", e.ShiftID)
		assert.Equal(t, "U1", e.DeviceID)
		assert.Len(t, e.Breaks, 3)
		assert.NotEmpty(t, e.ID)

		assert.Equal(t, "Sara Ali", f.locker.names["U1"])
		assert.Equal(t, 1, f.store.Len())
		assert.Empty(t, s.Selected)
		assert.Equal(t, Confirmed, s.State(f.policy))
	})

	t.Run("Should reject missing name", func(t *testing.T) {
		f := newFixture(t)
		s := NewSession("morning")
		f.pickAll(t, s, slot("09:00", 15), slot("11:00", 30), slot("13:00", 15))

		_, err := f.validator.Confirm(s, f.policy, "   ", "U1", f.now)
		assert.True(t, errors.Is(err, domain.ErrMissingName))
		assert.Zero(t, f.store.Len())
		assert.Len(t, s.Selected, 3)
	})

	t.Run("Should reject incomplete selection", func(t *testing.T) {
		f := newFixture(t)
		s := NewSession("morning")
		f.pickAll(t, s, slot("09:00", 15))

		_, err := f.validator.Confirm(s, f.policy, "Sara", "U1", f.now)
		assert.True(t, errors.Is(err, domain.ErrIncompleteSelection))
		assert.Empty(t, f.locker.names)
	})

	t.Run("Should use the locked name and refuse another", func(t *testing.T) {
		f := newFixture(t)
		f.locker.names["U1"] = "Sara"
		s := NewSession("morning")
		f.pickAll(t, s, slot("09:00", 15), slot("11:00", 30), slot("13:00", 15))

		_, err := f.validator.Confirm(s, f.policy, "Omar", "U1", f.now)
		assert.True(t, errors.Is(err, domain.ErrNameLocked))

		e, err := f.validator.Confirm(s, f.policy, "", "U1", f.now)
		require.NoError(t, err)
		assert.Equal(t, "Sara", e.Name)
	})

	t.Run("Should refuse a slot confirmed by someone else meanwhile", func(t *testing.T) {
		f := newFixture(t)
		first := NewSession("morning")
		second := NewSession("morning")
		picks := []entity.BreakSlot{slot("09:00", 15), slot("11:00", 30), slot("13:00", 15)}
		f.pickAll(t, first, picks...)
		f.pickAll(t, second, picks...)

		_, err := f.validator.Confirm(first, f.policy, "Sara", "U1", f.now)
		require.NoError(t, err)

		assert.Equal(t, status.Taken, f.validator.Classify(second, f.policy, picks[0], f.now))
		_, err = f.validator.Confirm(second, f.policy, "Omar", "U2", f.now)
		assert.True(t, errors.Is(err, domain.ErrSlotTaken))
		assert.Equal(t, 1, f.store.Len())
		assert.NotContains(t, f.locker.names, "U2")

		third := NewSession("morning")
		err = f.validator.Toggle(third, f.policy, picks[0], f.now)
		assert.True(t, errors.Is(err, domain.ErrSlotUnavailable))
	})

	t.Run("Should leave state untouched when the lock cannot be written", func(t *testing.T) {
		f := newFixture(t)
		f.locker.lockErr = errors.New("disk full")
		s := NewSession("morning")
		f.pickAll(t, s, slot("09:00", 15), slot("11:00", 30), slot("13:00", 15))

		_, err := f.validator.Confirm(s, f.policy, "Sara", "U1", f.now)
		require.Error(t, err)
		assert.Zero(t, f.store.Len())
		assert.Len(t, s.Selected, 3)
	})
}

func TestSession_RequiredDuration(t *testing.T) {
	p := entity.Policy{MaxBreaks: 2}
	s := NewSession("morning")

	require.NotNil(t, s.RequiredDuration(p))
	assert.Equal(t, 15, *s.RequiredDuration(p))

	s.Selected = []entity.BreakSlot{slot("09:00", 15), slot("10:00", 30)}
	assert.Nil(t, s.RequiredDuration(p))
	assert.Equal(t, ReadyToConfirm, s.State(p))
}
