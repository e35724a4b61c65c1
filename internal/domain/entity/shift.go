package entity

// ShiftDefinition is a named work period, immutable once the catalog is loaded
type ShiftDefinition struct {
	ID          string
	DisplayName string
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	Icon        string
}

// IsOvernight reports whether the shift wraps past midnight
func (s ShiftDefinition) IsOvernight() bool {
	return s.EndTime.Before(s.StartTime)
}

// Label is the display name followed by the icon
func (s ShiftDefinition) Label() string {
	if s.Icon == "" {
		return s.DisplayName
	}
	return s.DisplayName + " " + s.Icon
}
