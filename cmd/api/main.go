package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/config"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/permit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	appHTTP "github.com/cmlabs-hris/attendance-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-engine-go/internal/service/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/service/master"
	payrollService "github.com/cmlabs-hris/attendance-engine-go/internal/service/payroll"
	permitService "github.com/cmlabs-hris/attendance-engine-go/internal/service/permit"
	policyService "github.com/cmlabs-hris/attendance-engine-go/internal/service/policy"
)

type repositories struct {
	employee         employee.EmployeeRepository
	attendancePolicy policy.AttendancePolicyRepository
	overtimePolicy   policy.OvertimePolicyRepository
	leavePolicy      policy.LeavePolicyRepository
	workLocation     policy.WorkLocationRepository
	event            attendance.AttendanceEventRepository
	record           attendance.AttendanceRecordRepository
	permit           permit.PermitRepository
	adjustment       permit.AdjustmentRepository
	externalTask     task.ExternalTaskRepository
	salaryComponent  payroll.SalaryComponentRepository
	compensation     payroll.CompensationPackageRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var repos repositories
	switch cfg.Storage.Type {
	case "memory":
		repos = newMemoryRepositories()
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		repos = newPostgresRepositories(db)
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	resolver := policyService.NewResolver(repos.attendancePolicy, repos.overtimePolicy, repos.leavePolicy)

	attendanceSvc := attendanceService.NewAttendanceService(
		repos.employee,
		repos.event,
		repos.record,
		repos.externalTask,
		repos.workLocation,
		resolver,
	)
	permitSvc := permitService.NewPermitService(
		repos.employee,
		repos.permit,
		repos.adjustment,
		resolver,
	)
	payrollSvc := payrollService.NewPayrollService(
		repos.employee,
		repos.record,
		repos.salaryComponent,
		repos.compensation,
		resolver,
	)
	masterSvc := master.NewMasterService(
		repos.employee,
		repos.attendancePolicy,
		repos.overtimePolicy,
		repos.leavePolicy,
		repos.workLocation,
		repos.salaryComponent,
		repos.compensation,
		repos.externalTask,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	permitHandler := appHTTP.NewPermitHandler(permitSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(cfg, attendanceHandler, permitHandler, payrollHandler, masterHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server starting on %s (storage: %s)\n", addr, cfg.Storage.Type)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

func newPostgresRepositories(db *database.DB) repositories {
	return repositories{
		employee:         postgresql.NewEmployeeRepository(db),
		attendancePolicy: postgresql.NewAttendancePolicyRepository(db),
		overtimePolicy:   postgresql.NewOvertimePolicyRepository(db),
		leavePolicy:      postgresql.NewLeavePolicyRepository(db),
		workLocation:     postgresql.NewWorkLocationRepository(db),
		event:            postgresql.NewAttendanceEventRepository(db),
		record:           postgresql.NewAttendanceRecordRepository(db),
		permit:           postgresql.NewPermitRepository(db),
		adjustment:       postgresql.NewAdjustmentRepository(db),
		externalTask:     postgresql.NewExternalTaskRepository(db),
		salaryComponent:  postgresql.NewSalaryComponentRepository(db),
		compensation:     postgresql.NewCompensationPackageRepository(db),
	}
}

// newMemoryRepositories seeds the self-contained store with a minimal policy
// set so punches can be evaluated without a database.
func newMemoryRepositories() repositories {
	locations := []policy.WorkLocation{
		{
			ID:           "loc-hq",
			Name:         "Headquarters",
			Latitude:     -6.2088,
			Longitude:    106.8456,
			RadiusMeters: 100,
		},
	}

	attendancePolicies := []policy.AttendancePolicy{
		{
			ID:                   "pol-standard",
			Name:                 "Standard Office Policy",
			Status:               policy.PolicyStatusActive,
			GracePeriodInMinutes: 15,
			BreakDurationHours:   1,
			LatenessTiers: []policy.LatenessTier{
				{FromMinutes: 16, ToMinutes: 30, PenaltyHours: 0.5},
				{FromMinutes: 31, ToMinutes: 60, PenaltyHours: 1},
				{FromMinutes: 61, ToMinutes: 1440, PenaltyHours: 2},
			},
			WorkLocationIDs:          []string{"loc-hq"},
			MinPermitDurationMinutes: 30,
			MaxPermitDurationHours:   4,
			MaxPermitsPerMonth:       2,
		},
	}

	overtimePolicies := []policy.OvertimePolicy{
		{
			ID:                   "pol-overtime",
			Name:                 "Standard Overtime Policy",
			Status:               policy.PolicyStatusActive,
			AllowOvertime:        true,
			MinOvertimeInMinutes: 30,
		},
	}

	leavePolicies := []policy.LeavePolicy{
		{
			ID:              "pol-leave",
			Name:            "Standard Leave Policy",
			Status:          policy.PolicyStatusActive,
			AnnualQuotaDays: 12,
		},
	}

	return repositories{
		employee:         memory.NewEmployeeRepository(),
		attendancePolicy: memory.NewAttendancePolicyRepository(attendancePolicies),
		overtimePolicy:   memory.NewOvertimePolicyRepository(overtimePolicies),
		leavePolicy:      memory.NewLeavePolicyRepository(leavePolicies),
		workLocation:     memory.NewWorkLocationRepository(locations),
		event:            memory.NewAttendanceEventRepository(),
		record:           memory.NewAttendanceRecordRepository(),
		permit:           memory.NewPermitRepository(),
		adjustment:       memory.NewAdjustmentRepository(),
		externalTask:     memory.NewExternalTaskRepository(),
		salaryComponent:  memory.NewSalaryComponentRepository(nil),
		compensation:     memory.NewCompensationPackageRepository(nil),
	}
}
