package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type PunchRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordFilter bounds record and event listings to a date window. Zero values
// mean unbounded.
type RecordFilter struct {
	From string `json:"from"` // "2006-01-02"
	To   string `json:"to"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	Timestamp        string  `json:"timestamp"`
	Type             string  `json:"type"`
	IsWithinGeofence bool    `json:"is_within_geofence"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	TaskID           *string `json:"task_id,omitempty"`
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Day          string  `json:"day"`
	Status       string  `json:"status"`
	FirstCheckIn *string `json:"first_check_in"`
	LastCheckOut *string `json:"last_check_out"`
	WorkedHours  float64 `json:"worked_hours"`
	Overtime     float64 `json:"overtime"`
	IsLate       bool    `json:"is_late"`
	MinutesLate  int     `json:"minutes_late"`
}

// LatenessResult is a derived presentation value, recomputed on demand and
// never stored on the record.
type LatenessResult struct {
	IsLate      bool
	MinutesLate int
	Tier        *LatenessTierRef
}

type LatenessTierRef struct {
	FromMinutes  int
	ToMinutes    int
	PenaltyHours float64
}

func (e AttendanceEvent) ToResponse() EventResponse {
	return EventResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		Timestamp:        e.Timestamp.Format(time.RFC3339),
		Type:             string(e.Type),
		IsWithinGeofence: e.IsWithinGeofence,
		Latitude:         e.Latitude,
		Longitude:        e.Longitude,
		TaskID:           e.TaskID,
	}
}
