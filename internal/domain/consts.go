package domain

// Break durations in minutes
const (
	ShortBreak = 15
	LongBreak  = 30
)

// ReferenceOrder is the duration sequence breaks must be picked in. A policy
// with N breaks uses the first N entries.
var ReferenceOrder = []int{ShortBreak, LongBreak, ShortBreak, LongBreak, ShortBreak}

// BreakDurations are the variants offered at every slot position, shortest first
var BreakDurations = []int{ShortBreak, LongBreak}

// Policy bounds for the max breaks per shift setting
const (
	MinBreaksPerShift     = 1
	MaxBreaksPerShift     = 5
	DefaultBreaksPerShift = 3
)

// Slot generation window
const (
	SlotStepMinutes    = 15
	ShiftLeadInMinutes = 60
	ShiftWindDownMins  = 60
	MaxGeneratedSlots  = 100
)

// Keys of the key-value settings store
const (
	KeyTheme          = "theme"
	KeyMaxBreaks      = "maxBreaksCount"
	KeyLockedNamePref = "lockedEmployeeName:"
)

// LockedNameKey returns the settings key holding the employee name locked to a device
func LockedNameKey(deviceID string) string {
	return KeyLockedNamePref + deviceID
}

// Theme values
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
