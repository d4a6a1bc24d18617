package attendance

import "context"

// AttendanceEventRepository is append-only: events are permanent history.
type AttendanceEventRepository interface {
	Append(ctx context.Context, event AttendanceEvent) (AttendanceEvent, error)
	ListByEmployee(ctx context.Context, employeeID string, filter RecordFilter) ([]AttendanceEvent, error)
}

type AttendanceRecordRepository interface {
	// GetByEmployeeAndDate returns nil without error when no record exists
	// yet for that working day.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*AttendanceRecord, error)
	Upsert(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, filter RecordFilter) ([]AttendanceRecord, error)
}
