package master

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMasterService() MasterService {
	return NewMasterService(
		memory.NewEmployeeRepository(),
		memory.NewAttendancePolicyRepository([]policy.AttendancePolicy{
			{ID: "pol-1", Name: "Standard", Status: policy.PolicyStatusActive},
		}),
		memory.NewOvertimePolicyRepository(nil),
		memory.NewLeavePolicyRepository(nil),
		memory.NewWorkLocationRepository([]policy.WorkLocation{
			{ID: "loc-hq", Name: "HQ", RadiusMeters: 100},
		}),
		memory.NewSalaryComponentRepository(nil),
		memory.NewCompensationPackageRepository(nil),
		memory.NewExternalTaskRepository(),
	)
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestMasterService()

	resp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "Jane Staff",
		BaseSalary: decimal.NewFromInt(2100),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.IsCheckedIn)

	fetched, err := svc.GetEmployee(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Staff", fetched.Name)
}

func TestCreateEmployeeRequiresName(t *testing.T) {
	ctx := context.Background()
	svc := newTestMasterService()

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestListMasterData(t *testing.T) {
	ctx := context.Background()
	svc := newTestMasterService()

	policies, err := svc.ListAttendancePolicies(ctx)
	require.NoError(t, err)
	assert.Len(t, policies, 1)

	locations, err := svc.ListWorkLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestCreateCompensationPackageChecksComponents(t *testing.T) {
	ctx := context.Background()
	svc := newTestMasterService()

	comp, err := svc.CreateSalaryComponent(ctx, payroll.CreateComponentRequest{
		Name:   "Meal allowance",
		Type:   string(payroll.ComponentTypeAllowance),
		Amount: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	_, err = svc.CreateCompensationPackage(ctx, payroll.CreatePackageRequest{
		Name:               "Broken package",
		SalaryComponentIDs: []string{comp.ID, "missing"},
	})
	require.ErrorIs(t, err, payroll.ErrComponentNotFound)

	pkg, err := svc.CreateCompensationPackage(ctx, payroll.CreatePackageRequest{
		Name:               "Staff package",
		SalaryComponentIDs: []string{comp.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{comp.ID}, pkg.SalaryComponentIDs)
}

func TestExternalTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestMasterService()

	emp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{Name: "Field Staff"})
	require.NoError(t, err)

	created, err := svc.CreateExternalTask(ctx, task.CreateTaskRequest{
		EmployeeID: emp.ID,
		Title:      "Client visit",
		Date:       "2025-06-10",
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(task.TaskStatusAssigned), created.Status)

	approved, err := svc.ApproveExternalTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(task.TaskStatusApproved), approved.Status)

	_, err = svc.ApproveExternalTask(ctx, created.ID)
	require.ErrorIs(t, err, task.ErrTaskNotApprovable)

	tasks, err := svc.ListExternalTasks(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestCreateExternalTaskUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestMasterService()

	_, err := svc.CreateExternalTask(ctx, task.CreateTaskRequest{
		EmployeeID: "missing",
		Title:      "Client visit",
		Date:       "2025-06-10",
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
