package permit

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/permit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type PermitServiceImpl struct {
	employee.EmployeeRepository
	permit.PermitRepository
	permit.AdjustmentRepository
	resolver PolicyResolver

	now func() time.Time
}

type PolicyResolver interface {
	ResolveAttendancePolicy(ctx context.Context, emp employee.Employee) (*policy.AttendancePolicy, error)
}

func NewPermitService(
	employeeRepo employee.EmployeeRepository,
	permitRepo permit.PermitRepository,
	adjustmentRepo permit.AdjustmentRepository,
	resolver PolicyResolver,
) permit.PermitService {
	return &PermitServiceImpl{
		EmployeeRepository:   employeeRepo,
		PermitRepository:     permitRepo,
		AdjustmentRepository: adjustmentRepo,
		resolver:             resolver,
		now:                  time.Now,
	}
}

// SubmitPermit implements permit.PermitService.
func (s *PermitServiceImpl) SubmitPermit(ctx context.Context, req permit.SubmitPermitRequest) (permit.PermitResponse, error) {
	if err := req.Validate(); err != nil {
		return permit.PermitResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return permit.PermitResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, startOK := validator.IsValidClockTime(req.StartTime)
	end, endOK := validator.IsValidClockTime(req.EndTime)
	if !startOK || !endOK {
		return permit.PermitResponse{}, fmt.Errorf("failed to parse permit window %q-%q", req.StartTime, req.EndTime)
	}
	duration := end.Sub(start)
	durationHours := duration.Hours()

	attendancePolicy, err := s.resolver.ResolveAttendancePolicy(ctx, emp)
	if err != nil {
		return permit.PermitResponse{}, err
	}

	// An employee without an attendance policy is unconstrained: every check
	// is skipped and the request accepted. Intentional source behavior.
	if attendancePolicy != nil {
		if duration.Minutes() < float64(attendancePolicy.MinPermitDurationMinutes) {
			return permit.PermitResponse{}, permit.ErrBelowMinimumDuration
		}
		if durationHours > attendancePolicy.MaxPermitDurationHours {
			return permit.PermitResponse{}, permit.ErrExceedsMaximumDuration
		}

		permitDate, dateOK := validator.IsValidDate(req.Date)
		if !dateOK {
			return permit.PermitResponse{}, fmt.Errorf("failed to parse permit date %q", req.Date)
		}
		count, err := s.PermitRepository.CountForMonth(ctx, emp.ID, permitDate.Year(), permitDate.Month())
		if err != nil {
			return permit.PermitResponse{}, fmt.Errorf("failed to count permits for month: %w", err)
		}
		if count >= attendancePolicy.MaxPermitsPerMonth {
			return permit.PermitResponse{}, permit.ErrMonthlyQuotaExceeded
		}
	}

	request := permit.LeavePermitRequest{
		EmployeeID:     emp.ID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		DurationHours:  durationHours,
		Reason:         req.Reason,
		Status:         permit.RequestStatusPending,
		SubmissionDate: s.now(),
	}

	created, err := s.PermitRepository.Create(ctx, request)
	if err != nil {
		return permit.PermitResponse{}, fmt.Errorf("failed to create leave permit request: %w", err)
	}

	return mapPermitToResponse(created), nil
}

// SubmitAdjustment implements permit.PermitService. Adjustments carry no
// policy checks; a well-formed request always lands in Pending.
func (s *PermitServiceImpl) SubmitAdjustment(ctx context.Context, req permit.SubmitAdjustmentRequest) (permit.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return permit.AdjustmentResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return permit.AdjustmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	request := permit.AttendanceAdjustmentRequest{
		EmployeeID:     emp.ID,
		AdjustmentType: permit.AdjustmentType(req.AdjustmentType),
		Date:           req.Date,
		Time:           req.Time,
		Reason:         req.Reason,
		Status:         permit.RequestStatusPending,
		SubmissionDate: s.now(),
	}

	created, err := s.AdjustmentRepository.Create(ctx, request)
	if err != nil {
		return permit.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return mapAdjustmentToResponse(created), nil
}

// ApprovePermit implements permit.PermitService.
func (s *PermitServiceImpl) ApprovePermit(ctx context.Context, id string) (permit.PermitResponse, error) {
	return s.setPermitStatus(ctx, id, permit.RequestStatusApproved)
}

// RejectPermit implements permit.PermitService.
func (s *PermitServiceImpl) RejectPermit(ctx context.Context, id string) (permit.PermitResponse, error) {
	return s.setPermitStatus(ctx, id, permit.RequestStatusRejected)
}

func (s *PermitServiceImpl) setPermitStatus(ctx context.Context, id string, status permit.RequestStatus) (permit.PermitResponse, error) {
	request, err := s.PermitRepository.GetByID(ctx, id)
	if err != nil {
		return permit.PermitResponse{}, err
	}

	if request.Status != permit.RequestStatusPending {
		return permit.PermitResponse{}, permit.ErrAlreadyProcessed
	}

	if err := s.PermitRepository.UpdateStatus(ctx, id, status); err != nil {
		return permit.PermitResponse{}, fmt.Errorf("failed to update permit status: %w", err)
	}

	request.Status = status
	return mapPermitToResponse(request), nil
}

// ApproveAdjustment implements permit.PermitService.
func (s *PermitServiceImpl) ApproveAdjustment(ctx context.Context, id string) (permit.AdjustmentResponse, error) {
	return s.setAdjustmentStatus(ctx, id, permit.RequestStatusApproved)
}

// RejectAdjustment implements permit.PermitService.
func (s *PermitServiceImpl) RejectAdjustment(ctx context.Context, id string) (permit.AdjustmentResponse, error) {
	return s.setAdjustmentStatus(ctx, id, permit.RequestStatusRejected)
}

func (s *PermitServiceImpl) setAdjustmentStatus(ctx context.Context, id string, status permit.RequestStatus) (permit.AdjustmentResponse, error) {
	request, err := s.AdjustmentRepository.GetByID(ctx, id)
	if err != nil {
		return permit.AdjustmentResponse{}, err
	}

	if request.Status != permit.RequestStatusPending {
		return permit.AdjustmentResponse{}, permit.ErrAlreadyProcessed
	}

	if err := s.AdjustmentRepository.UpdateStatus(ctx, id, status); err != nil {
		return permit.AdjustmentResponse{}, fmt.Errorf("failed to update adjustment status: %w", err)
	}

	request.Status = status
	return mapAdjustmentToResponse(request), nil
}

// ListPermits implements permit.PermitService.
func (s *PermitServiceImpl) ListPermits(ctx context.Context, employeeID string) ([]permit.PermitResponse, error) {
	requests, err := s.PermitRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permits: %w", err)
	}

	responses := make([]permit.PermitResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapPermitToResponse(r))
	}
	return responses, nil
}

// ListAdjustments implements permit.PermitService.
func (s *PermitServiceImpl) ListAdjustments(ctx context.Context, employeeID string) ([]permit.AdjustmentResponse, error) {
	requests, err := s.AdjustmentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	responses := make([]permit.AdjustmentResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapAdjustmentToResponse(r))
	}
	return responses, nil
}

func mapPermitToResponse(r permit.LeavePermitRequest) permit.PermitResponse {
	return permit.PermitResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		DurationHours:  r.DurationHours,
		Reason:         r.Reason,
		Status:         string(r.Status),
		SubmissionDate: r.SubmissionDate.Format("2006-01-02 15:04:05"),
	}
}

func mapAdjustmentToResponse(r permit.AttendanceAdjustmentRequest) permit.AdjustmentResponse {
	return permit.AdjustmentResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		AdjustmentType: string(r.AdjustmentType),
		Date:           r.Date,
		Time:           r.Time,
		Reason:         r.Reason,
		Status:         string(r.Status),
		SubmissionDate: r.SubmissionDate.Format("2006-01-02 15:04:05"),
	}
}
