package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/utils"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/memory"
	policyService "github.com/cmlabs-hris/attendance-engine-go/internal/service/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceFixture struct {
	svc          *AttendanceServiceImpl
	employeeRepo employee.EmployeeRepository
	eventRepo    attendance.AttendanceEventRepository
	recordRepo   attendance.AttendanceRecordRepository
	taskRepo     task.ExternalTaskRepository
}

func newAttendanceFixture(t *testing.T, now time.Time) *attendanceFixture {
	t.Helper()

	locations := []policy.WorkLocation{
		{ID: "loc-hq", Name: "HQ", Latitude: 0, Longitude: 0, RadiusMeters: 100},
	}
	attendancePolicies := []policy.AttendancePolicy{
		{
			ID:                   "pol-1",
			Name:                 "Standard",
			Status:               policy.PolicyStatusActive,
			GracePeriodInMinutes: 15,
			BreakDurationHours:   1,
			WorkLocationIDs:      []string{"loc-hq"},
		},
	}
	overtimePolicies := []policy.OvertimePolicy{
		{ID: "ot-1", AllowOvertime: true, MinOvertimeInMinutes: 30},
	}

	employeeRepo := memory.NewEmployeeRepository()
	eventRepo := memory.NewAttendanceEventRepository()
	recordRepo := memory.NewAttendanceRecordRepository()
	taskRepo := memory.NewExternalTaskRepository()
	locationRepo := memory.NewWorkLocationRepository(locations)
	resolver := policyService.NewResolver(
		memory.NewAttendancePolicyRepository(attendancePolicies),
		memory.NewOvertimePolicyRepository(overtimePolicies),
		memory.NewLeavePolicyRepository(nil),
	)

	svc := &AttendanceServiceImpl{
		EmployeeRepository:         employeeRepo,
		AttendanceEventRepository:  eventRepo,
		AttendanceRecordRepository: recordRepo,
		ExternalTaskRepository:     taskRepo,
		locationRepo:               locationRepo,
		resolver:                   resolver,
		now:                        func() time.Time { return now },
	}

	return &attendanceFixture{
		svc:          svc,
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		recordRepo:   recordRepo,
		taskRepo:     taskRepo,
	}
}

func (f *attendanceFixture) createEmployee(t *testing.T, policyID, overtimePolicyID *string) employee.Employee {
	t.Helper()
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		Name:               "Test Employee",
		AttendancePolicyID: policyID,
		OvertimePolicyID:   overtimePolicyID,
	})
	require.NoError(t, err)
	return emp
}

func strPtr(s string) *string { return &s }

func TestPunchWithoutPolicyIsBlocked(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	emp := f.createEmployee(t, nil, nil)

	_, err := f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 0, Longitude: 0})
	require.ErrorIs(t, err, attendance.ErrNoAttendancePolicy)

	events, err := f.eventRepo.ListByEmployee(ctx, emp.ID, attendance.RecordFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPunchOutsideGeofenceWithoutTaskIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	emp := f.createEmployee(t, strPtr("pol-1"), strPtr("ot-1"))

	// ~111 km from the geofence.
	_, err := f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 1, Longitude: 0})
	require.ErrorIs(t, err, attendance.ErrNoExternalTaskAuthorization)

	// The rejection leaves no trace: no event, no record, state unchanged.
	events, err := f.eventRepo.ListByEmployee(ctx, emp.ID, attendance.RecordFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)

	rec, err := f.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, "2025-06-02")
	require.NoError(t, err)
	assert.Nil(t, rec)

	after, err := f.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, after.IsCheckedIn)
}

func TestPunchInsideGeofenceTogglesState(t *testing.T) {
	ctx := context.Background()
	checkInAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newAttendanceFixture(t, checkInAt)
	emp := f.createEmployee(t, strPtr("pol-1"), strPtr("ot-1"))

	resp, err := f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 0, Longitude: 0})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.EventCheckIn), resp.Type)
	assert.True(t, resp.IsWithinGeofence)
	assert.Nil(t, resp.TaskID)

	after, err := f.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, after.IsCheckedIn)

	// The second punch of the day is a check-out.
	f.svc.now = func() time.Time { return time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC) }
	resp, err = f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 0, Longitude: 0})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.EventCheckOut), resp.Type)

	after, err = f.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, after.IsCheckedIn)

	rec, err := f.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, "2025-06-02")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.FirstCheckIn)
	require.NotNil(t, rec.LastCheckOut)
	assert.Equal(t, 8.0, rec.WorkedHours)
	assert.Zero(t, rec.Overtime)
}

func TestPunchOutsideGeofenceWithApprovedTask(t *testing.T) {
	ctx := context.Background()
	checkInAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newAttendanceFixture(t, checkInAt)
	emp := f.createEmployee(t, strPtr("pol-1"), strPtr("ot-1"))

	created, err := f.taskRepo.Create(ctx, task.ExternalTask{
		EmployeeID: emp.ID,
		Title:      "Client visit",
		Date:       "2025-06-02",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Status:     task.TaskStatusApproved,
	})
	require.NoError(t, err)

	resp, err := f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 1, Longitude: 0})
	require.NoError(t, err)
	assert.False(t, resp.IsWithinGeofence)
	require.NotNil(t, resp.TaskID)
	assert.Equal(t, created.ID, *resp.TaskID)

	inProgress, err := f.taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskStatusInProgress, inProgress.Status)
	require.NotNil(t, inProgress.CheckInTime)
	assert.Equal(t, checkInAt, *inProgress.CheckInTime)
	require.NotNil(t, inProgress.CheckInLatitude)
	assert.Equal(t, 1.0, *inProgress.CheckInLatitude)

	// Checking out against the same task completes it.
	checkOutAt := time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return checkOutAt }
	resp, err = f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 1, Longitude: 0})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.EventCheckOut), resp.Type)

	completed, err := f.taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskStatusCompleted, completed.Status)
	require.NotNil(t, completed.CheckOutTime)
	assert.Equal(t, checkOutAt, *completed.CheckOutTime)
}

func TestPunchAssignedTaskDoesNotAuthorize(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	emp := f.createEmployee(t, strPtr("pol-1"), strPtr("ot-1"))

	_, err := f.taskRepo.Create(ctx, task.ExternalTask{
		EmployeeID: emp.ID,
		Title:      "Client visit",
		Date:       "2025-06-02",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Status:     task.TaskStatusAssigned,
	})
	require.NoError(t, err)

	_, err = f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 1, Longitude: 0})
	require.ErrorIs(t, err, attendance.ErrNoExternalTaskAuthorization)
}

func TestPunchValidatesCoordinates(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	_, err := f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: "emp-1", Latitude: 91, Longitude: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestListRecordsDerivesLateness(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t, time.Date(2025, 6, 2, 9, 20, 0, 0, time.UTC))
	emp := f.createEmployee(t, strPtr("pol-1"), strPtr("ot-1"))

	_, err := f.svc.Punch(ctx, attendance.PunchRequest{EmployeeID: emp.ID, Latitude: 0, Longitude: 0})
	require.NoError(t, err)

	records, err := f.svc.ListRecords(ctx, emp.ID, attendance.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsLate)
	assert.Equal(t, 20, records[0].MinutesLate)
}

func TestWithinAnyGeofenceBoundary(t *testing.T) {
	locations := []policy.WorkLocation{
		// One degree of latitude is roughly 111195 meters.
		{ID: "loc-1", Latitude: 0, Longitude: 0, RadiusMeters: 111195},
	}

	assert.True(t, WithinAnyGeofence(0, 0, locations))
	assert.True(t, WithinAnyGeofence(0.9999, 0, locations))
	assert.False(t, WithinAnyGeofence(1.1, 0, locations))
	assert.False(t, WithinAnyGeofence(0, 0, nil))

	// A point at exactly the radius is inside.
	exact := utils.CalculateHaversineDistance(0.5, 0, 0, 0)
	edge := []policy.WorkLocation{
		{ID: "loc-2", Latitude: 0, Longitude: 0, RadiusMeters: exact},
	}
	assert.True(t, WithinAnyGeofence(0.5, 0, edge))
}
