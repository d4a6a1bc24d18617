package task

import "time"

type TaskStatus string

const (
	TaskStatusAssigned   TaskStatus = "Assigned"
	TaskStatusApproved   TaskStatus = "Approved"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

// ExternalTask is a manager-assigned off-site assignment that authorizes
// attendance punches outside all geofences.
type ExternalTask struct {
	ID                string
	EmployeeID        string
	Title             string
	Date              string // "2006-01-02"
	StartTime         string // "15:04"
	EndTime           string // "15:04"
	Status            TaskStatus
	CheckInTime       *time.Time
	CheckOutTime      *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
}
