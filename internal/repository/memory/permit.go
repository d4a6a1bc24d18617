package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/permit"
	"github.com/google/uuid"
)

type permitRepository struct {
	mu      sync.RWMutex
	permits map[string]permit.LeavePermitRequest
}

func NewPermitRepository() permit.PermitRepository {
	return &permitRepository{
		permits: make(map[string]permit.LeavePermitRequest),
	}
}

func (r *permitRepository) Create(_ context.Context, req permit.LeavePermitRequest) (permit.LeavePermitRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	r.permits[req.ID] = req
	return req, nil
}

func (r *permitRepository) GetByID(_ context.Context, id string) (permit.LeavePermitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.permits[id]
	if !ok {
		return permit.LeavePermitRequest{}, permit.ErrPermitNotFound
	}
	return req, nil
}

func (r *permitRepository) CountForMonth(_ context.Context, employeeID string, year int, month time.Month) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, req := range r.permits {
		if req.EmployeeID != employeeID || req.Status == permit.RequestStatusRejected {
			continue
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			continue
		}
		if date.Year() == year && date.Month() == month {
			count++
		}
	}
	return count, nil
}

func (r *permitRepository) ListByEmployee(_ context.Context, employeeID string) ([]permit.LeavePermitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []permit.LeavePermitRequest
	for _, req := range r.permits {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmissionDate.Before(result[j].SubmissionDate)
	})
	return result, nil
}

func (r *permitRepository) UpdateStatus(_ context.Context, id string, status permit.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.permits[id]
	if !ok {
		return permit.ErrPermitNotFound
	}
	req.Status = status
	r.permits[id] = req
	return nil
}

type adjustmentRepository struct {
	mu          sync.RWMutex
	adjustments map[string]permit.AttendanceAdjustmentRequest
}

func NewAdjustmentRepository() permit.AdjustmentRepository {
	return &adjustmentRepository{
		adjustments: make(map[string]permit.AttendanceAdjustmentRequest),
	}
}

func (r *adjustmentRepository) Create(_ context.Context, req permit.AttendanceAdjustmentRequest) (permit.AttendanceAdjustmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	r.adjustments[req.ID] = req
	return req, nil
}

func (r *adjustmentRepository) GetByID(_ context.Context, id string) (permit.AttendanceAdjustmentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.adjustments[id]
	if !ok {
		return permit.AttendanceAdjustmentRequest{}, permit.ErrAdjustmentNotFound
	}
	return req, nil
}

func (r *adjustmentRepository) ListByEmployee(_ context.Context, employeeID string) ([]permit.AttendanceAdjustmentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []permit.AttendanceAdjustmentRequest
	for _, req := range r.adjustments {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmissionDate.Before(result[j].SubmissionDate)
	})
	return result, nil
}

func (r *adjustmentRepository) UpdateStatus(_ context.Context, id string, status permit.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.adjustments[id]
	if !ok {
		return permit.ErrAdjustmentNotFound
	}
	req.Status = status
	r.adjustments[id] = req
	return nil
}
