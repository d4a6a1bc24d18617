package task

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	EmployeeID string `json:"employee_id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	start, okStart := validator.IsValidClockTime(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time (HH:MM)",
		})
	}

	end, okEnd := validator.IsValidClockTime(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time (HH:MM)",
		})
	}

	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	Title             string   `json:"title"`
	Date              string   `json:"date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	Status            string   `json:"status"`
	CheckInTime       *string  `json:"check_in_time"`
	CheckOutTime      *string  `json:"check_out_time"`
	CheckInLatitude   *float64 `json:"check_in_latitude"`
	CheckInLongitude  *float64 `json:"check_in_longitude"`
	CheckOutLatitude  *float64 `json:"check_out_latitude"`
	CheckOutLongitude *float64 `json:"check_out_longitude"`
}

func (t ExternalTask) ToResponse() TaskResponse {
	formatTime := func(ts *time.Time) *string {
		if ts == nil {
			return nil
		}
		s := ts.Format(time.RFC3339)
		return &s
	}

	return TaskResponse{
		ID:                t.ID,
		EmployeeID:        t.EmployeeID,
		Title:             t.Title,
		Date:              t.Date,
		StartTime:         t.StartTime,
		EndTime:           t.EndTime,
		Status:            string(t.Status),
		CheckInTime:       formatTime(t.CheckInTime),
		CheckOutTime:      formatTime(t.CheckOutTime),
		CheckInLatitude:   t.CheckInLatitude,
		CheckInLongitude:  t.CheckInLongitude,
		CheckOutLatitude:  t.CheckOutLatitude,
		CheckOutLongitude: t.CheckOutLongitude,
	}
}
