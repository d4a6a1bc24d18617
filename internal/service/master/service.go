package master

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
)

// MasterService covers the configuration-side entities the rule engine reads:
// employees, policies, work locations, compensation building blocks and
// external task assignments.
type MasterService interface {
	// Employee operations
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error)

	// Policy operations
	ListAttendancePolicies(ctx context.Context) ([]policy.AttendancePolicyResponse, error)
	ListOvertimePolicies(ctx context.Context) ([]policy.OvertimePolicyResponse, error)
	ListLeavePolicies(ctx context.Context) ([]policy.LeavePolicyResponse, error)
	ListWorkLocations(ctx context.Context) ([]policy.WorkLocationResponse, error)

	// Compensation operations
	CreateSalaryComponent(ctx context.Context, req payroll.CreateComponentRequest) (payroll.ComponentResponse, error)
	ListSalaryComponents(ctx context.Context) ([]payroll.ComponentResponse, error)
	CreateCompensationPackage(ctx context.Context, req payroll.CreatePackageRequest) (payroll.PackageResponse, error)
	ListCompensationPackages(ctx context.Context) ([]payroll.PackageResponse, error)

	// External task operations
	CreateExternalTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error)
	ApproveExternalTask(ctx context.Context, id string) (task.TaskResponse, error)
	ListExternalTasks(ctx context.Context, employeeID string) ([]task.TaskResponse, error)
}

type masterServiceImpl struct {
	employeeRepo         employee.EmployeeRepository
	attendancePolicyRepo policy.AttendancePolicyRepository
	overtimePolicyRepo   policy.OvertimePolicyRepository
	leavePolicyRepo      policy.LeavePolicyRepository
	locationRepo         policy.WorkLocationRepository
	componentRepo        payroll.SalaryComponentRepository
	packageRepo          payroll.CompensationPackageRepository
	taskRepo             task.ExternalTaskRepository
}

func NewMasterService(
	employeeRepo employee.EmployeeRepository,
	attendancePolicyRepo policy.AttendancePolicyRepository,
	overtimePolicyRepo policy.OvertimePolicyRepository,
	leavePolicyRepo policy.LeavePolicyRepository,
	locationRepo policy.WorkLocationRepository,
	componentRepo payroll.SalaryComponentRepository,
	packageRepo payroll.CompensationPackageRepository,
	taskRepo task.ExternalTaskRepository,
) MasterService {
	return &masterServiceImpl{
		employeeRepo:         employeeRepo,
		attendancePolicyRepo: attendancePolicyRepo,
		overtimePolicyRepo:   overtimePolicyRepo,
		leavePolicyRepo:      leavePolicyRepo,
		locationRepo:         locationRepo,
		componentRepo:        componentRepo,
		packageRepo:          packageRepo,
		taskRepo:             taskRepo,
	}
}

// CreateEmployee implements MasterService. Policy references are stored as
// given; a dangling reference resolves to "no policy" at evaluation time
// rather than failing here.
func (s *masterServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		Name:                  req.Name,
		Position:              req.Position,
		AttendancePolicyID:    req.AttendancePolicyID,
		OvertimePolicyID:      req.OvertimePolicyID,
		LeavePolicyID:         req.LeavePolicyID,
		CompensationPackageID: req.CompensationPackageID,
		BaseSalary:            req.BaseSalary,
		LeaveBalanceDays:      req.LeaveBalanceDays,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created.ToResponse(), nil
}

// GetEmployee implements MasterService.
func (s *masterServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return emp.ToResponse(), nil
}

// ListEmployees implements MasterService.
func (s *masterServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse())
	}

	return responses, nil
}

// ListAttendancePolicies implements MasterService.
func (s *masterServiceImpl) ListAttendancePolicies(ctx context.Context) ([]policy.AttendancePolicyResponse, error) {
	policies, err := s.attendancePolicyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance policies: %w", err)
	}

	responses := make([]policy.AttendancePolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, p.ToResponse())
	}

	return responses, nil
}

// ListOvertimePolicies implements MasterService.
func (s *masterServiceImpl) ListOvertimePolicies(ctx context.Context) ([]policy.OvertimePolicyResponse, error) {
	policies, err := s.overtimePolicyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime policies: %w", err)
	}

	responses := make([]policy.OvertimePolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, p.ToResponse())
	}

	return responses, nil
}

// ListLeavePolicies implements MasterService.
func (s *masterServiceImpl) ListLeavePolicies(ctx context.Context) ([]policy.LeavePolicyResponse, error) {
	policies, err := s.leavePolicyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave policies: %w", err)
	}

	responses := make([]policy.LeavePolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, p.ToResponse())
	}

	return responses, nil
}

// ListWorkLocations implements MasterService.
func (s *masterServiceImpl) ListWorkLocations(ctx context.Context) ([]policy.WorkLocationResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work locations: %w", err)
	}

	responses := make([]policy.WorkLocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, loc.ToResponse())
	}

	return responses, nil
}

// CreateSalaryComponent implements MasterService.
func (s *masterServiceImpl) CreateSalaryComponent(ctx context.Context, req payroll.CreateComponentRequest) (payroll.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ComponentResponse{}, err
	}

	component := payroll.SalaryComponent{
		Name:   req.Name,
		Type:   payroll.ComponentType(req.Type),
		Amount: req.Amount,
	}

	created, err := s.componentRepo.Create(ctx, component)
	if err != nil {
		return payroll.ComponentResponse{}, fmt.Errorf("failed to create salary component: %w", err)
	}

	return created.ToResponse(), nil
}

// ListSalaryComponents implements MasterService.
func (s *masterServiceImpl) ListSalaryComponents(ctx context.Context) ([]payroll.ComponentResponse, error) {
	components, err := s.componentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}

	responses := make([]payroll.ComponentResponse, 0, len(components))
	for _, c := range components {
		responses = append(responses, c.ToResponse())
	}

	return responses, nil
}

// CreateCompensationPackage implements MasterService. Component references
// are validated against the component store so a package can never point at
// a component that does not exist yet.
func (s *masterServiceImpl) CreateCompensationPackage(ctx context.Context, req payroll.CreatePackageRequest) (payroll.PackageResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PackageResponse{}, err
	}

	if len(req.SalaryComponentIDs) > 0 {
		components, err := s.componentRepo.GetByIDs(ctx, req.SalaryComponentIDs)
		if err != nil {
			return payroll.PackageResponse{}, fmt.Errorf("failed to resolve salary components: %w", err)
		}
		if len(components) != len(req.SalaryComponentIDs) {
			return payroll.PackageResponse{}, payroll.ErrComponentNotFound
		}
	}

	pkg := payroll.CompensationPackage{
		Name:               req.Name,
		SalaryComponentIDs: req.SalaryComponentIDs,
	}

	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		return payroll.PackageResponse{}, fmt.Errorf("failed to create compensation package: %w", err)
	}

	return created.ToResponse(), nil
}

// ListCompensationPackages implements MasterService.
func (s *masterServiceImpl) ListCompensationPackages(ctx context.Context) ([]payroll.PackageResponse, error) {
	packages, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation packages: %w", err)
	}

	responses := make([]payroll.PackageResponse, 0, len(packages))
	for _, p := range packages {
		responses = append(responses, p.ToResponse())
	}

	return responses, nil
}

// CreateExternalTask implements MasterService. New tasks start Assigned and
// authorize nothing until approved.
func (s *masterServiceImpl) CreateExternalTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return task.TaskResponse{}, err
	}

	t := task.ExternalTask{
		EmployeeID: req.EmployeeID,
		Title:      req.Title,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     task.TaskStatusAssigned,
	}

	created, err := s.taskRepo.Create(ctx, t)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create external task: %w", err)
	}

	return created.ToResponse(), nil
}

// ApproveExternalTask implements MasterService.
func (s *masterServiceImpl) ApproveExternalTask(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if t.Status != task.TaskStatusAssigned {
		return task.TaskResponse{}, task.ErrTaskNotApprovable
	}

	t.Status = task.TaskStatusApproved
	if err := s.taskRepo.Update(ctx, t); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to approve external task: %w", err)
	}

	return t.ToResponse(), nil
}

// ListExternalTasks implements MasterService.
func (s *masterServiceImpl) ListExternalTasks(ctx context.Context, employeeID string) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list external tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, t.ToResponse())
	}

	return responses, nil
}
