package permit

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/permit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/memory"
	policyService "github.com/cmlabs-hris/attendance-engine-go/internal/service/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type permitFixture struct {
	svc          *PermitServiceImpl
	employeeRepo employee.EmployeeRepository
}

func newPermitFixture(t *testing.T) *permitFixture {
	t.Helper()

	attendancePolicies := []policy.AttendancePolicy{
		{
			ID:                       "pol-1",
			Name:                     "Standard",
			Status:                   policy.PolicyStatusActive,
			MinPermitDurationMinutes: 30,
			MaxPermitDurationHours:   4,
			MaxPermitsPerMonth:       2,
		},
	}

	employeeRepo := memory.NewEmployeeRepository()
	resolver := policyService.NewResolver(
		memory.NewAttendancePolicyRepository(attendancePolicies),
		memory.NewOvertimePolicyRepository(nil),
		memory.NewLeavePolicyRepository(nil),
	)

	svc := &PermitServiceImpl{
		EmployeeRepository:   employeeRepo,
		PermitRepository:     memory.NewPermitRepository(),
		AdjustmentRepository: memory.NewAdjustmentRepository(),
		resolver:             resolver,
		now:                  func() time.Time { return time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) },
	}

	return &permitFixture{svc: svc, employeeRepo: employeeRepo}
}

func (f *permitFixture) createEmployee(t *testing.T, policyID *string) employee.Employee {
	t.Helper()
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		Name:               "Test Employee",
		AttendancePolicyID: policyID,
	})
	require.NoError(t, err)
	return emp
}

func strPtr(s string) *string { return &s }

func permitRequest(employeeID, date, start, end string) permit.SubmitPermitRequest {
	return permit.SubmitPermitRequest{
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Reason:     "Doctor appointment",
	}
}

func TestSubmitPermitHappyPath(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	resp, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-10", "09:00", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, string(permit.RequestStatusPending), resp.Status)
	assert.Equal(t, 2.0, resp.DurationHours)
}

func TestSubmitPermitMalformedWindowRejected(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	_, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-10", "9am", "11:00"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_time")
}

func TestSubmitPermitBelowMinimumDuration(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	_, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-10", "09:00", "09:15"))
	require.ErrorIs(t, err, permit.ErrBelowMinimumDuration)
}

func TestSubmitPermitExceedsMaximumDuration(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	_, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-10", "09:00", "14:00"))
	require.ErrorIs(t, err, permit.ErrExceedsMaximumDuration)
}

func TestSubmitPermitMonthlyQuota(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	_, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-05", "09:00", "10:00"))
	require.NoError(t, err)
	_, err = f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-12", "09:00", "10:00"))
	require.NoError(t, err)

	_, err = f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-19", "09:00", "10:00"))
	require.ErrorIs(t, err, permit.ErrMonthlyQuotaExceeded)

	// A different month has its own quota.
	_, err = f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-07-01", "09:00", "10:00"))
	require.NoError(t, err)
}

func TestSubmitPermitRejectedDoesNotCountTowardQuota(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	first, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-05", "09:00", "10:00"))
	require.NoError(t, err)
	_, err = f.svc.RejectPermit(ctx, first.ID)
	require.NoError(t, err)

	_, err = f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-12", "09:00", "10:00"))
	require.NoError(t, err)
	_, err = f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-19", "09:00", "10:00"))
	require.NoError(t, err)
}

func TestSubmitPermitWithoutPolicyIsUnconstrained(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, nil)

	// Fifteen minutes would fail every policy check; without a policy it is
	// accepted as-is.
	resp, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-10", "09:00", "09:15"))
	require.NoError(t, err)
	assert.Equal(t, string(permit.RequestStatusPending), resp.Status)
}

func TestApprovePermitIsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	created, err := f.svc.SubmitPermit(ctx, permitRequest(emp.ID, "2025-06-10", "09:00", "10:00"))
	require.NoError(t, err)

	approved, err := f.svc.ApprovePermit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(permit.RequestStatusApproved), approved.Status)

	_, err = f.svc.ApprovePermit(ctx, created.ID)
	require.ErrorIs(t, err, permit.ErrAlreadyProcessed)
	_, err = f.svc.RejectPermit(ctx, created.ID)
	require.ErrorIs(t, err, permit.ErrAlreadyProcessed)
}

func TestApprovePermitNotFound(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)

	_, err := f.svc.ApprovePermit(ctx, "missing")
	require.ErrorIs(t, err, permit.ErrPermitNotFound)
}

func TestSubmitAdjustment(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	resp, err := f.svc.SubmitAdjustment(ctx, permit.SubmitAdjustmentRequest{
		EmployeeID:     emp.ID,
		AdjustmentType: string(permit.AdjustmentLateArrival),
		Date:           "2025-06-10",
		Time:           "10:30",
		Reason:         "Traffic accident on the toll road",
	})
	require.NoError(t, err)
	assert.Equal(t, string(permit.RequestStatusPending), resp.Status)
	assert.Equal(t, string(permit.AdjustmentLateArrival), resp.AdjustmentType)
}

func TestSubmitAdjustmentInvalidType(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	_, err := f.svc.SubmitAdjustment(ctx, permit.SubmitAdjustmentRequest{
		EmployeeID:     emp.ID,
		AdjustmentType: "Overtime",
		Date:           "2025-06-10",
		Time:           "10:30",
		Reason:         "Invalid type",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adjustment_type")
}

func TestRejectAdjustmentIsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newPermitFixture(t)
	emp := f.createEmployee(t, strPtr("pol-1"))

	created, err := f.svc.SubmitAdjustment(ctx, permit.SubmitAdjustmentRequest{
		EmployeeID:     emp.ID,
		AdjustmentType: string(permit.AdjustmentEarlyDeparture),
		Date:           "2025-06-10",
		Time:           "15:00",
		Reason:         "Family emergency",
	})
	require.NoError(t, err)

	rejected, err := f.svc.RejectAdjustment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(permit.RequestStatusRejected), rejected.Status)

	_, err = f.svc.ApproveAdjustment(ctx, created.ID)
	require.ErrorIs(t, err, permit.ErrAlreadyProcessed)
}
