package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "padded", input: "08:05", want: TimeOfDay{Hour: 8, Minute: 5}},
		{name: "unpadded hour", input: "7:30", want: TimeOfDay{Hour: 7, Minute: 30}},
		{name: "midnight", input: "00:00", want: TimeOfDay{}},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "1000", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	assert.Equal(t, "09:15", MustTimeOfDay("09:00").AddMinutes(15).String())
	assert.Equal(t, "00:15", MustTimeOfDay("23:45").AddMinutes(30).String())
	assert.Equal(t, "23:00", MustTimeOfDay("00:30").AddMinutes(-90).String())
	assert.Equal(t, "08:00", MustTimeOfDay("08:00").AddMinutes(24*60).String())
}

func TestTimeOfDay_On(t *testing.T) {
	day := time.Date(2026, 10, 15, 17, 42, 13, 0, time.UTC)
	got := MustTimeOfDay("09:30").On(day)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), got)
}

func TestPolicy_RequiredOrder(t *testing.T) {
	assert.Equal(t, []int{15, 30, 15}, Policy{MaxBreaks: 3}.RequiredOrder())
	assert.Equal(t, []int{15}, Policy{MaxBreaks: 1}.RequiredOrder())
	assert.Equal(t, []int{15, 30, 15, 30, 15}, Policy{MaxBreaks: 5}.RequiredOrder())

	d, ok := Policy{MaxBreaks: 3}.RequiredDuration(1)
	assert.True(t, ok)
	assert.Equal(t, 30, d)

	_, ok = Policy{MaxBreaks: 3}.RequiredDuration(3)
	assert.False(t, ok)

	assert.Error(t, Policy{MaxBreaks: 0}.Validate())
	assert.Error(t, Policy{MaxBreaks: 6}.Validate())
	assert.NoError(t, Policy{MaxBreaks: 5}.Validate())
}
