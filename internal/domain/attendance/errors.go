package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrNoAttendancePolicy          = errors.New("no attendance policy assigned, punching is blocked")
	ErrNoExternalTaskAuthorization = errors.New("outside all work locations and no approved external task for today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
