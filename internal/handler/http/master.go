package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-engine-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Employee handlers
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)

	// Policy handlers
	ListAttendancePolicies(w http.ResponseWriter, r *http.Request)
	ListOvertimePolicies(w http.ResponseWriter, r *http.Request)
	ListLeavePolicies(w http.ResponseWriter, r *http.Request)
	ListWorkLocations(w http.ResponseWriter, r *http.Request)

	// Compensation handlers
	CreateSalaryComponent(w http.ResponseWriter, r *http.Request)
	ListSalaryComponents(w http.ResponseWriter, r *http.Request)
	CreateCompensationPackage(w http.ResponseWriter, r *http.Request)
	ListCompensationPackages(w http.ResponseWriter, r *http.Request)

	// External task handlers
	CreateExternalTask(w http.ResponseWriter, r *http.Request)
	ApproveExternalTask(w http.ResponseWriter, r *http.Request)
	ListExternalTasks(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== EMPLOYEE HANDLERS ====================

func (h *masterHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

func (h *masterHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")

	result, err := h.masterService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ==================== POLICY HANDLERS ====================

func (h *masterHandlerImpl) ListAttendancePolicies(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListAttendancePolicies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListOvertimePolicies(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListOvertimePolicies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListLeavePolicies(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListLeavePolicies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListWorkLocations(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListWorkLocations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ==================== COMPENSATION HANDLERS ====================

func (h *masterHandlerImpl) CreateSalaryComponent(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateComponentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateSalaryComponent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary component created successfully", result)
}

func (h *masterHandlerImpl) ListSalaryComponents(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListSalaryComponents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) CreateCompensationPackage(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePackageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateCompensationPackage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation package created successfully", result)
}

func (h *masterHandlerImpl) ListCompensationPackages(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListCompensationPackages(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ==================== EXTERNAL TASK HANDLERS ====================

func (h *masterHandlerImpl) CreateExternalTask(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateExternalTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "External task created successfully", result)
}

func (h *masterHandlerImpl) ApproveExternalTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.ApproveExternalTask(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "External task approved", result)
}

func (h *masterHandlerImpl) ListExternalTasks(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.masterService.ListExternalTasks(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
