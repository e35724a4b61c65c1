package shift

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	shifts := c.List()
	require.Len(t, shifts, 5)

	ids := make([]string, 0, len(shifts))
	for _, s := range shifts {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"early-morning", "morning", "afternoon", "evening", "night"}, ids)

	night, err := c.Find("night")
	require.NoError(t, err)
	assert.True(t, night.IsOvernight())

	evening, err := c.Find("evening")
	require.NoError(t, err)
	assert.True(t, evening.IsOvernight())
}

func TestCatalog_FindUnknown(t *testing.T) {
	_, err := DefaultCatalog().Find("graveyard")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrShiftNotFound))
}

func TestCatalog_ListIsACopy(t *testing.T) {
	c := DefaultCatalog()
	shifts := c.List()
	shifts[0].DisplayName = "changed"

	first, err := c.Find(shifts[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", first.DisplayName)
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	s := entity.ShiftDefinition{ID: "a", StartTime: entity.MustTimeOfDay("08:00"), EndTime: entity.MustTimeOfDay("16:00")}
	_, err := NewCatalog(s, s)
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path falls back to defaults", func(t *testing.T) {
		c, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Len(t, c.List(), 5)
	})

	t.Run("reads yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shifts.yaml")
		content := `shifts:
  - id: day
    name: Day Shift
    start: "09:00"
    end: "18:00"
    icon: "🌞"
  - id: late
    start: "20:00"
    end: "04:00"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		c, err := LoadCatalog(path)
		require.NoError(t, err)
		require.Len(t, c.List(), 2)

		late, err := c.Find("late")
		require.NoError(t, err)
		assert.Equal(t, "late", late.DisplayName)
		assert.True(t, late.IsOvernight())
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := ParseCatalog([]byte("shifts:\n  - id: x\n    start: \"25:00\"\n    end: \"10:00\"\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
