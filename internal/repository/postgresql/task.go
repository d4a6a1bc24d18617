package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type externalTaskRepository struct {
	db *database.DB
}

func NewExternalTaskRepository(db *database.DB) task.ExternalTaskRepository {
	return &externalTaskRepository{db: db}
}

const externalTaskColumns = `
	id, employee_id, title, date, start_time, end_time, status,
	check_in_time, check_out_time, check_in_latitude, check_in_longitude,
	check_out_latitude, check_out_longitude
`

func scanExternalTask(row pgx.Row) (task.ExternalTask, error) {
	var t task.ExternalTask
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Title, &t.Date, &t.StartTime, &t.EndTime, &t.Status,
		&t.CheckInTime, &t.CheckOutTime, &t.CheckInLatitude, &t.CheckInLongitude,
		&t.CheckOutLatitude, &t.CheckOutLongitude,
	)
	return t, err
}

// Create implements task.ExternalTaskRepository.
func (r *externalTaskRepository) Create(ctx context.Context, t task.ExternalTask) (task.ExternalTask, error) {
	q := r.db.Pool

	query := `
		INSERT INTO external_tasks (
			employee_id, title, date, start_time, end_time, status,
			check_in_time, check_out_time, check_in_latitude, check_in_longitude,
			check_out_latitude, check_out_longitude
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.Title, t.Date, t.StartTime, t.EndTime, t.Status,
		t.CheckInTime, t.CheckOutTime, t.CheckInLatitude, t.CheckInLongitude,
		t.CheckOutLatitude, t.CheckOutLongitude,
	).Scan(&t.ID)

	if err != nil {
		return task.ExternalTask{}, fmt.Errorf("failed to create external task: %w", err)
	}

	return t, nil
}

// GetByID implements task.ExternalTaskRepository.
func (r *externalTaskRepository) GetByID(ctx context.Context, id string) (task.ExternalTask, error) {
	q := r.db.Pool

	query := `SELECT ` + externalTaskColumns + ` FROM external_tasks WHERE id = $1`

	t, err := scanExternalTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ExternalTask{}, task.ErrTaskNotFound
		}
		return task.ExternalTask{}, fmt.Errorf("failed to get external task: %w", err)
	}

	return t, nil
}

// FindPunchableForDate implements task.ExternalTaskRepository.
func (r *externalTaskRepository) FindPunchableForDate(ctx context.Context, employeeID, date string) (*task.ExternalTask, error) {
	q := r.db.Pool

	query := `
		SELECT ` + externalTaskColumns + `
		FROM external_tasks
		WHERE employee_id = $1
		  AND date = $2
		  AND status IN ('Approved', 'InProgress')
		ORDER BY start_time
		LIMIT 1
	`

	t, err := scanExternalTask(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no qualifying task today
		}
		return nil, fmt.Errorf("failed to find punchable external task: %w", err)
	}

	return &t, nil
}

// ListByEmployee implements task.ExternalTaskRepository.
func (r *externalTaskRepository) ListByEmployee(ctx context.Context, employeeID string) ([]task.ExternalTask, error) {
	q := r.db.Pool

	query := `
		SELECT ` + externalTaskColumns + `
		FROM external_tasks
		WHERE employee_id = $1
		ORDER BY date, start_time
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list external tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.ExternalTask
	for rows.Next() {
		t, err := scanExternalTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan external task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update implements task.ExternalTaskRepository.
func (r *externalTaskRepository) Update(ctx context.Context, t task.ExternalTask) error {
	q := r.db.Pool

	query := `
		UPDATE external_tasks
		SET title = $2, date = $3, start_time = $4, end_time = $5, status = $6,
			check_in_time = $7, check_out_time = $8,
			check_in_latitude = $9, check_in_longitude = $10,
			check_out_latitude = $11, check_out_longitude = $12
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		t.ID, t.Title, t.Date, t.StartTime, t.EndTime, t.Status,
		t.CheckInTime, t.CheckOutTime, t.CheckInLatitude, t.CheckInLongitude,
		t.CheckOutLatitude, t.CheckOutLongitude,
	)
	if err != nil {
		return fmt.Errorf("failed to update external task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
