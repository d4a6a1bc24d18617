package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-engine-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	permitHandler PermitHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/punch", attendanceHandler.Punch)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", masterHandler.ListEmployees)
			r.Post("/", masterHandler.CreateEmployee)

			r.Route("/{employeeID}", func(r chi.Router) {
				r.Get("/", masterHandler.GetEmployee)
				r.Get("/attendance/events", attendanceHandler.ListEvents)
				r.Get("/attendance/records", attendanceHandler.ListRecords)
				r.Get("/permits", permitHandler.ListPermits)
				r.Get("/adjustments", permitHandler.ListAdjustments)
				r.Get("/external-tasks", masterHandler.ListExternalTasks)
				r.Get("/payslips", payrollHandler.GeneratePayslips)
			})
		})

		r.Route("/permits", func(r chi.Router) {
			r.Post("/", permitHandler.SubmitPermit)
			r.Post("/{id}/approve", permitHandler.ApprovePermit)
			r.Post("/{id}/reject", permitHandler.RejectPermit)
		})

		r.Route("/adjustments", func(r chi.Router) {
			r.Post("/", permitHandler.SubmitAdjustment)
			r.Post("/{id}/approve", permitHandler.ApproveAdjustment)
			r.Post("/{id}/reject", permitHandler.RejectAdjustment)
		})

		r.Route("/external-tasks", func(r chi.Router) {
			r.Post("/", masterHandler.CreateExternalTask)
			r.Post("/{id}/approve", masterHandler.ApproveExternalTask)
		})

		r.Route("/master", func(r chi.Router) {
			r.Get("/attendance-policies", masterHandler.ListAttendancePolicies)
			r.Get("/overtime-policies", masterHandler.ListOvertimePolicies)
			r.Get("/leave-policies", masterHandler.ListLeavePolicies)
			r.Get("/work-locations", masterHandler.ListWorkLocations)
			r.Get("/salary-components", masterHandler.ListSalaryComponents)
			r.Post("/salary-components", masterHandler.CreateSalaryComponent)
			r.Get("/compensation-packages", masterHandler.ListCompensationPackages)
			r.Post("/compensation-packages", masterHandler.CreateCompensationPackage)
		})
	})

	return r
}
