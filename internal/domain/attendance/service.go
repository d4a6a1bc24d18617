package attendance

import "context"

// AttendanceService is the punch-facing surface of the rule engine.
type AttendanceService interface {
	// Punch processes a single clock-in/out event: policy resolution,
	// geofence evaluation, external-task fallback, event emission and daily
	// record aggregation.
	Punch(ctx context.Context, req PunchRequest) (EventResponse, error)

	// ListEvents returns the employee's immutable punch history.
	ListEvents(ctx context.Context, employeeID string, filter RecordFilter) ([]EventResponse, error)

	// ListRecords returns the employee's daily summaries with derived
	// lateness flags.
	ListRecords(ctx context.Context, employeeID string, filter RecordFilter) ([]RecordResponse, error)
}
