package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	"github.com/google/uuid"
)

type externalTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]task.ExternalTask
}

func NewExternalTaskRepository() task.ExternalTaskRepository {
	return &externalTaskRepository{
		tasks: make(map[string]task.ExternalTask),
	}
}

func (r *externalTaskRepository) Create(_ context.Context, t task.ExternalTask) (task.ExternalTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *externalTaskRepository) GetByID(_ context.Context, id string) (task.ExternalTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return task.ExternalTask{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (r *externalTaskRepository) FindPunchableForDate(_ context.Context, employeeID, date string) (*task.ExternalTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var candidates []task.ExternalTask
	for _, t := range r.tasks {
		if t.EmployeeID != employeeID || t.Date != date {
			continue
		}
		if t.Status == task.TaskStatusApproved || t.Status == task.TaskStatusInProgress {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// First matching task by start time wins.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].StartTime < candidates[j].StartTime
	})
	return &candidates[0], nil
}

func (r *externalTaskRepository) ListByEmployee(_ context.Context, employeeID string) ([]task.ExternalTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []task.ExternalTask
	for _, t := range r.tasks {
		if t.EmployeeID == employeeID {
			result = append(result, t)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (r *externalTaskRepository) Update(_ context.Context, t task.ExternalTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		return task.ErrTaskNotFound
	}
	r.tasks[t.ID] = t
	return nil
}
