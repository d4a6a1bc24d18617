package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceEventRepository
	attendance.AttendanceRecordRepository
	task.ExternalTaskRepository
	locationRepo policy.WorkLocationRepository
	resolver     PolicyResolver

	now func() time.Time
}

// PolicyResolver is the subset of the policy resolver the punch processor
// needs.
type PolicyResolver interface {
	ResolveAttendancePolicy(ctx context.Context, emp employee.Employee) (*policy.AttendancePolicy, error)
	ResolveOvertimePolicy(ctx context.Context, emp employee.Employee) (*policy.OvertimePolicy, error)
}

func NewAttendanceService(
	employeeRepo employee.EmployeeRepository,
	eventRepo attendance.AttendanceEventRepository,
	recordRepo attendance.AttendanceRecordRepository,
	taskRepo task.ExternalTaskRepository,
	locationRepo policy.WorkLocationRepository,
	resolver PolicyResolver,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EmployeeRepository:         employeeRepo,
		AttendanceEventRepository:  eventRepo,
		AttendanceRecordRepository: recordRepo,
		ExternalTaskRepository:     taskRepo,
		locationRepo:               locationRepo,
		resolver:                   resolver,
		now:                        time.Now,
	}
}

// WithinAnyGeofence reports whether the coordinate pair lies inside any of the
// permitted work-location circles. A point at exactly the radius is inside.
func WithinAnyGeofence(lat, lon float64, locations []policy.WorkLocation) bool {
	for _, loc := range locations {
		distanceMeters := utils.CalculateHaversineDistance(lat, lon, loc.Latitude, loc.Longitude)
		if distanceMeters <= loc.RadiusMeters {
			return true
		}
	}
	return false
}

// Punch implements attendance.AttendanceService.
//
// The steps mutate in order: external task (when used), event append, record
// upsert, employee status flip. There is deliberately no rollback across them;
// once the policy resolves the remaining steps cannot fail in the in-memory
// store and the source system behaved the same way.
func (a *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	attendancePolicy, err := a.resolver.ResolveAttendancePolicy(ctx, emp)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	if attendancePolicy == nil {
		return attendance.EventResponse{}, attendance.ErrNoAttendancePolicy
	}

	overtimePolicy, err := a.resolver.ResolveOvertimePolicy(ctx, emp)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	punchTime := a.now()
	dateLocal := punchTime.Format("2006-01-02")

	eventType := attendance.EventCheckIn
	if emp.IsCheckedIn {
		eventType = attendance.EventCheckOut
	}

	locations, err := a.locationRepo.GetByIDs(ctx, attendancePolicy.WorkLocationIDs)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to get work locations: %w", err)
	}
	withinGeofence := WithinAnyGeofence(req.Latitude, req.Longitude, locations)

	var taskID *string
	if !withinGeofence {
		punchableTask, err := a.ExternalTaskRepository.FindPunchableForDate(ctx, emp.ID, dateLocal)
		if err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to look up external tasks: %w", err)
		}
		if punchableTask == nil {
			return attendance.EventResponse{}, attendance.ErrNoExternalTaskAuthorization
		}

		switch eventType {
		case attendance.EventCheckIn:
			punchableTask.Status = task.TaskStatusInProgress
			punchableTask.CheckInTime = &punchTime
			punchableTask.CheckInLatitude = &req.Latitude
			punchableTask.CheckInLongitude = &req.Longitude
		case attendance.EventCheckOut:
			punchableTask.Status = task.TaskStatusCompleted
			punchableTask.CheckOutTime = &punchTime
			punchableTask.CheckOutLatitude = &req.Latitude
			punchableTask.CheckOutLongitude = &req.Longitude
		}

		if err := a.ExternalTaskRepository.Update(ctx, *punchableTask); err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to update external task: %w", err)
		}
		taskID = &punchableTask.ID
	}

	event := attendance.AttendanceEvent{
		EmployeeID:       emp.ID,
		Timestamp:        punchTime,
		Type:             eventType,
		IsWithinGeofence: withinGeofence,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		TaskID:           taskID,
	}

	created, err := a.AttendanceEventRepository.Append(ctx, event)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to append attendance event: %w", err)
	}

	existing, err := a.AttendanceRecordRepository.GetByEmployeeAndDate(ctx, emp.ID, dateLocal)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	record := ApplyEvent(existing, created, attendancePolicy, overtimePolicy)
	if _, err := a.AttendanceRecordRepository.Upsert(ctx, record); err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	emp.IsCheckedIn = eventType == attendance.EventCheckIn
	if err := a.EmployeeRepository.Update(ctx, emp); err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to update employee punch state: %w", err)
	}

	return created.ToResponse(), nil
}

// ListEvents implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEvents(ctx context.Context, employeeID string, filter attendance.RecordFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := a.AttendanceEventRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, e.ToResponse())
	}
	return responses, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, employeeID string, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	attendancePolicy, err := a.resolver.ResolveAttendancePolicy(ctx, emp)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRecordRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec, attendancePolicy))
	}
	return responses, nil
}

func mapRecordToResponse(rec attendance.AttendanceRecord, attendancePolicy *policy.AttendancePolicy) attendance.RecordResponse {
	lateness := ResolveLateness(rec, attendancePolicy)

	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Date:         rec.Date,
		Day:          rec.Day,
		Status:       string(rec.Status),
		FirstCheckIn: timePtrToString(rec.FirstCheckIn),
		LastCheckOut: timePtrToString(rec.LastCheckOut),
		WorkedHours:  rec.WorkedHours,
		Overtime:     rec.Overtime,
		IsLate:       lateness.IsLate,
		MinutesLate:  lateness.MinutesLate,
	}
}

// timePtrToString safely converts a *time.Time to a wall-clock string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("15:04:05")
	return &format
}
