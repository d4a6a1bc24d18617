package employee

import "github.com/shopspring/decimal"

type Employee struct {
	ID                    string
	Name                  string
	Position              *string
	AttendancePolicyID    *string
	OvertimePolicyID      *string
	LeavePolicyID         *string
	CompensationPackageID *string
	BaseSalary            decimal.Decimal
	LeaveBalanceDays      float64
	// IsCheckedIn is the punch state machine flag: false means the next punch
	// is a check-in, true means it is a check-out.
	IsCheckedIn bool
}
