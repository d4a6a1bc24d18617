package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
)

type attendancePolicyRepository struct {
	mu       sync.RWMutex
	policies map[string]policy.AttendancePolicy
}

func NewAttendancePolicyRepository(policies []policy.AttendancePolicy) policy.AttendancePolicyRepository {
	m := make(map[string]policy.AttendancePolicy, len(policies))
	for _, p := range policies {
		m[p.ID] = p
	}
	return &attendancePolicyRepository{policies: m}
}

func (r *attendancePolicyRepository) GetByID(_ context.Context, id string) (policy.AttendancePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[id]
	if !ok {
		return policy.AttendancePolicy{}, policy.ErrAttendancePolicyNotFound
	}
	return p, nil
}

func (r *attendancePolicyRepository) List(_ context.Context) ([]policy.AttendancePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]policy.AttendancePolicy, 0, len(r.policies))
	for _, p := range r.policies {
		result = append(result, p)
	}
	return result, nil
}

type overtimePolicyRepository struct {
	mu       sync.RWMutex
	policies map[string]policy.OvertimePolicy
}

func NewOvertimePolicyRepository(policies []policy.OvertimePolicy) policy.OvertimePolicyRepository {
	m := make(map[string]policy.OvertimePolicy, len(policies))
	for _, p := range policies {
		m[p.ID] = p
	}
	return &overtimePolicyRepository{policies: m}
}

func (r *overtimePolicyRepository) GetByID(_ context.Context, id string) (policy.OvertimePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[id]
	if !ok {
		return policy.OvertimePolicy{}, policy.ErrOvertimePolicyNotFound
	}
	return p, nil
}

func (r *overtimePolicyRepository) List(_ context.Context) ([]policy.OvertimePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]policy.OvertimePolicy, 0, len(r.policies))
	for _, p := range r.policies {
		result = append(result, p)
	}
	return result, nil
}

type leavePolicyRepository struct {
	mu       sync.RWMutex
	policies map[string]policy.LeavePolicy
}

func NewLeavePolicyRepository(policies []policy.LeavePolicy) policy.LeavePolicyRepository {
	m := make(map[string]policy.LeavePolicy, len(policies))
	for _, p := range policies {
		m[p.ID] = p
	}
	return &leavePolicyRepository{policies: m}
}

func (r *leavePolicyRepository) GetByID(_ context.Context, id string) (policy.LeavePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[id]
	if !ok {
		return policy.LeavePolicy{}, policy.ErrLeavePolicyNotFound
	}
	return p, nil
}

func (r *leavePolicyRepository) List(_ context.Context) ([]policy.LeavePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]policy.LeavePolicy, 0, len(r.policies))
	for _, p := range r.policies {
		result = append(result, p)
	}
	return result, nil
}

type workLocationRepository struct {
	mu        sync.RWMutex
	locations map[string]policy.WorkLocation
}

func NewWorkLocationRepository(locations []policy.WorkLocation) policy.WorkLocationRepository {
	m := make(map[string]policy.WorkLocation, len(locations))
	for _, loc := range locations {
		m[loc.ID] = loc
	}
	return &workLocationRepository{locations: m}
}

func (r *workLocationRepository) GetByID(_ context.Context, id string) (policy.WorkLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.locations[id]
	if !ok {
		return policy.WorkLocation{}, policy.ErrWorkLocationNotFound
	}
	return loc, nil
}

func (r *workLocationRepository) GetByIDs(_ context.Context, ids []string) ([]policy.WorkLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]policy.WorkLocation, 0, len(ids))
	for _, id := range ids {
		if loc, ok := r.locations[id]; ok {
			result = append(result, loc)
		}
	}
	return result, nil
}

func (r *workLocationRepository) List(_ context.Context) ([]policy.WorkLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]policy.WorkLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		result = append(result, loc)
	}
	return result, nil
}
