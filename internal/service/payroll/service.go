package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	attendanceService "github.com/cmlabs-hris/attendance-engine-go/internal/service/attendance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	recordRepo    attendance.AttendanceRecordRepository
	componentRepo payroll.SalaryComponentRepository
	packageRepo   payroll.CompensationPackageRepository
	resolver      PolicyResolver
}

type PolicyResolver interface {
	ResolveAttendancePolicy(ctx context.Context, emp employee.Employee) (*policy.AttendancePolicy, error)
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	recordRepo attendance.AttendanceRecordRepository,
	componentRepo payroll.SalaryComponentRepository,
	packageRepo payroll.CompensationPackageRepository,
	resolver PolicyResolver,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:  employeeRepo,
		recordRepo:    recordRepo,
		componentRepo: componentRepo,
		packageRepo:   packageRepo,
		resolver:      resolver,
	}
}

// GeneratePayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslips(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.Payslip, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	filter := attendance.RecordFilter{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
	}
	records, err := s.recordRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	attendancePolicy, err := s.resolver.ResolveAttendancePolicy(ctx, emp)
	if err != nil {
		return nil, err
	}

	components, err := s.resolveComponents(ctx, emp)
	if err != nil {
		return nil, err
	}

	// Group records into calendar-month payroll periods.
	periods := make(map[string][]attendance.AttendanceRecord)
	for _, rec := range records {
		if len(rec.Date) < 7 {
			continue
		}
		period := rec.Date[:7] // "2006-01"
		periods[period] = append(periods[period], rec)
	}

	periodKeys := make([]string, 0, len(periods))
	for period := range periods {
		periodKeys = append(periodKeys, period)
	}
	sort.Strings(periodKeys)

	payslips := make([]payroll.Payslip, 0, len(periodKeys))
	for _, period := range periodKeys {
		slip, err := s.buildPayslip(emp, period, periods[period], components, attendancePolicy)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, slip)
	}

	return payslips, nil
}

func (s *PayrollServiceImpl) resolveComponents(ctx context.Context, emp employee.Employee) ([]payroll.SalaryComponent, error) {
	if emp.CompensationPackageID == nil || *emp.CompensationPackageID == "" {
		return nil, nil
	}

	pkg, err := s.packageRepo.GetByID(ctx, *emp.CompensationPackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get compensation package: %w", err)
	}

	components, err := s.componentRepo.GetByIDs(ctx, pkg.SalaryComponentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary components: %w", err)
	}

	return components, nil
}

func (s *PayrollServiceImpl) buildPayslip(
	emp employee.Employee,
	period string,
	records []attendance.AttendanceRecord,
	components []payroll.SalaryComponent,
	attendancePolicy *policy.AttendancePolicy,
) (payroll.Payslip, error) {
	periodStart, err := time.Parse("2006-01", period)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("invalid payroll period %q: %w", period, err)
	}

	workingDays := countWorkingDays(periodStart.Year(), periodStart.Month())
	if workingDays == 0 {
		workingDays = 1
	}
	dailyRate := emp.BaseSalary.Div(decimal.NewFromInt(int64(workingDays)))
	hourlyRate := dailyRate.Div(decimal.NewFromFloat(attendanceService.StandardShiftHours))

	var earnings []payroll.PayslipItem
	var deductions []payroll.PayslipItem

	earnings = append(earnings, payroll.PayslipItem{
		Description: "Base salary",
		Amount:      emp.BaseSalary.Round(2),
	})

	for _, comp := range components {
		item := payroll.PayslipItem{
			Description: comp.Name,
			Amount:      comp.Amount.Round(2),
		}
		switch comp.Type {
		case payroll.ComponentTypeAllowance:
			earnings = append(earnings, item)
		case payroll.ComponentTypeDeduction:
			deductions = append(deductions, item)
		}
	}

	// Overtime pay: credited hours priced at the hourly-equivalent rate.
	overtimeHours := 0.0
	for _, rec := range records {
		overtimeHours += rec.Overtime
	}
	overtimePay := decimal.Zero
	if overtimeHours > 0 {
		overtimePay = hourlyRate.Mul(decimal.NewFromFloat(overtimeHours)).Round(2)
		earnings = append(earnings, payroll.PayslipItem{
			Description: fmt.Sprintf("Overtime pay (%.2f hours)", overtimeHours),
			Amount:      overtimePay,
		})
	}

	// Lateness penalties: at most one per infraction day, tier chosen by the
	// window containing the minutes late.
	for _, rec := range records {
		lateness := attendanceService.ResolveLateness(rec, attendancePolicy)
		if !lateness.IsLate || lateness.Tier == nil {
			continue
		}
		penalty := hourlyRate.Mul(decimal.NewFromFloat(lateness.Tier.PenaltyHours)).Round(2)
		deductions = append(deductions, payroll.PayslipItem{
			Description: fmt.Sprintf("Lateness penalty (%s)", rec.Date),
			Amount:      penalty,
		})
	}

	// Unpaid days reduce pay at the daily rate: absences always, leave days
	// only beyond the employee's remaining balance.
	absentDays := 0
	leaveDays := 0
	for _, rec := range records {
		switch rec.Status {
		case attendance.RecordStatusAbsent:
			absentDays++
		case attendance.RecordStatusLeave:
			leaveDays++
		}
	}
	unpaidLeaveDays := leaveDays - int(emp.LeaveBalanceDays)
	if unpaidLeaveDays < 0 {
		unpaidLeaveDays = 0
	}
	unpaidDays := absentDays + unpaidLeaveDays
	if unpaidDays > 0 {
		deductions = append(deductions, payroll.PayslipItem{
			Description: fmt.Sprintf("Unpaid days (%d)", unpaidDays),
			Amount:      dailyRate.Mul(decimal.NewFromInt(int64(unpaidDays))).Round(2),
		})
	}

	grossSalary := decimal.Zero
	for _, item := range earnings {
		grossSalary = grossSalary.Add(item.Amount)
	}
	totalDeductions := decimal.Zero
	for _, item := range deductions {
		totalDeductions = totalDeductions.Add(item.Amount)
	}
	netSalary := grossSalary.Sub(totalDeductions)

	return payroll.Payslip{
		ID:              uuid.NewString(),
		EmployeeID:      emp.ID,
		Period:          period,
		GrossSalary:     grossSalary,
		TotalDeductions: totalDeductions,
		NetSalary:       netSalary,
		Earnings:        earnings,
		Deductions:      deductions,
	}, nil
}

// countWorkingDays counts the Monday-Friday days of a calendar month.
func countWorkingDays(year int, month time.Month) int {
	workingDays := 0
	day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for day.Month() == month {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			workingDays++
		}
		day = day.AddDate(0, 0, 1)
	}
	return workingDays
}
