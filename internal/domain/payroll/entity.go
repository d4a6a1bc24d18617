package payroll

import "github.com/shopspring/decimal"

type ComponentType string

const (
	ComponentTypeAllowance ComponentType = "Allowance"
	ComponentTypeDeduction ComponentType = "Deduction"
)

type SalaryComponent struct {
	ID     string
	Name   string
	Type   ComponentType
	Amount decimal.Decimal
}

// CompensationPackage bundles the fixed salary components assigned to an
// employee on top of base salary.
type CompensationPackage struct {
	ID                 string
	Name               string
	SalaryComponentIDs []string
}

type PayslipItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Payslip is fully derived and regenerated on demand; it is never persisted
// as the source of truth.
type Payslip struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	Period          string          `json:"period"` // "2006-01"
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	Earnings        []PayslipItem   `json:"earnings"`
	Deductions      []PayslipItem   `json:"deductions"`
}
