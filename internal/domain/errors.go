package domain

import "errors"

var (
	ErrParse               = errors.New("unrecognized time format")
	ErrShiftNotFound       = errors.New("shift not found")
	ErrOutOfOrderRemoval   = errors.New("breaks must be removed starting from the last one selected")
	ErrLimitReached        = errors.New("maximum number of breaks already selected")
	ErrWrongDuration       = errors.New("break duration does not match the required order")
	ErrIncompleteSelection = errors.New("not all required breaks are selected")
	ErrMissingName         = errors.New("employee name is required")
	ErrSlotUnavailable     = errors.New("break slot is not available")
	ErrSlotTaken           = errors.New("break slot was already reserved")
	ErrNameLocked          = errors.New("this device is locked to another employee name")
	ErrNoShiftSelected     = errors.New("no shift selected")
	ErrInvalidPolicy       = errors.New("max breaks must be between 1 and 5")
	ErrUnauthorized        = errors.New("invalid admin passcode")
)
