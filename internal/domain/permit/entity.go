package permit

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

type AdjustmentType string

const (
	AdjustmentLateArrival    AdjustmentType = "LateArrival"
	AdjustmentEarlyDeparture AdjustmentType = "EarlyDeparture"
)

// LeavePermitRequest is a pre-approved planned absence during working hours.
// DurationHours is computed once at creation and never recomputed.
type LeavePermitRequest struct {
	ID             string
	EmployeeID     string
	Date           string // "2006-01-02"
	StartTime      string // "15:04"
	EndTime        string // "15:04"
	DurationHours  float64
	Reason         string
	Status         RequestStatus
	SubmissionDate time.Time
}

// AttendanceAdjustmentRequest is an after-the-fact excuse for a late arrival
// or early departure already recorded.
type AttendanceAdjustmentRequest struct {
	ID             string
	EmployeeID     string
	AdjustmentType AdjustmentType
	Date           string // "2006-01-02"
	Time           string // "15:04"
	Reason         string
	Status         RequestStatus
	SubmissionDate time.Time
}
