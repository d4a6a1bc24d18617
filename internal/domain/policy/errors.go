package policy

import "errors"

var (
	ErrAttendancePolicyNotFound = errors.New("attendance policy not found")
	ErrOvertimePolicyNotFound   = errors.New("overtime policy not found")
	ErrLeavePolicyNotFound      = errors.New("leave policy not found")
	ErrWorkLocationNotFound     = errors.New("work location not found")
)
