package attendance

import "time"

type EventType string

const (
	EventCheckIn  EventType = "CheckIn"
	EventCheckOut EventType = "CheckOut"
)

// AttendanceEvent is an immutable fact recorded once per accepted punch. It is
// never mutated or deleted.
type AttendanceEvent struct {
	ID               string
	EmployeeID       string
	Timestamp        time.Time
	Type             EventType
	IsWithinGeofence bool
	Latitude         float64
	Longitude        float64
	// TaskID is set when the punch was validated through an external task
	// instead of a geofence.
	TaskID *string
}

type RecordStatus string

const (
	RecordStatusPresent RecordStatus = "Present"
	RecordStatusAbsent  RecordStatus = "Absent"
	RecordStatusLeave   RecordStatus = "Leave"
	RecordStatusHoliday RecordStatus = "Holiday"
	RecordStatusWeekend RecordStatus = "Weekend"
)

// AttendanceRecord is the derived per-employee per-date rolling summary. It is
// upserted as events arrive during the day and never independently authored.
type AttendanceRecord struct {
	ID           string
	EmployeeID   string
	Date         string // "2006-01-02", working day in local time
	Day          string // weekday name of Date
	Status       RecordStatus
	FirstCheckIn *time.Time
	LastCheckOut *time.Time
	WorkedHours  float64
	Overtime     float64
}
