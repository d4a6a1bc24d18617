package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/google/uuid"
)

type attendanceEventRepository struct {
	mu     sync.RWMutex
	events map[string][]attendance.AttendanceEvent // keyed by employee id
}

func NewAttendanceEventRepository() attendance.AttendanceEventRepository {
	return &attendanceEventRepository{
		events: make(map[string][]attendance.AttendanceEvent),
	}
}

// Append is append-only; events are never mutated or deleted afterwards.
func (r *attendanceEventRepository) Append(_ context.Context, event attendance.AttendanceEvent) (attendance.AttendanceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	r.events[event.EmployeeID] = append(r.events[event.EmployeeID], event)
	return event, nil
}

func (r *attendanceEventRepository) ListByEmployee(_ context.Context, employeeID string, filter attendance.RecordFilter) ([]attendance.AttendanceEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.AttendanceEvent
	for _, event := range r.events[employeeID] {
		date := event.Timestamp.Format("2006-01-02")
		if filter.From != "" && date < filter.From {
			continue
		}
		if filter.To != "" && date > filter.To {
			continue
		}
		result = append(result, event)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

type recordKey struct {
	EmployeeID string
	Date       string
}

type attendanceRecordRepository struct {
	mu      sync.RWMutex
	records map[recordKey]attendance.AttendanceRecord
}

func NewAttendanceRecordRepository() attendance.AttendanceRecordRepository {
	return &attendanceRecordRepository{
		records: make(map[recordKey]attendance.AttendanceRecord),
	}
}

func (r *attendanceRecordRepository) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[recordKey{EmployeeID: employeeID, Date: date}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *attendanceRecordRepository) Upsert(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey{EmployeeID: record.EmployeeID, Date: record.Date}
	if existing, ok := r.records[key]; ok {
		record.ID = existing.ID
	} else if record.ID == "" {
		record.ID = uuid.NewString()
	}
	r.records[key] = record
	return record, nil
}

func (r *attendanceRecordRepository) ListByEmployee(_ context.Context, employeeID string, filter attendance.RecordFilter) ([]attendance.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.AttendanceRecord
	for key, rec := range r.records {
		if key.EmployeeID != employeeID {
			continue
		}
		if filter.From != "" && rec.Date < filter.From {
			continue
		}
		if filter.To != "" && rec.Date > filter.To {
			continue
		}
		result = append(result, rec)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}
