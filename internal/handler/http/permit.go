package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/permit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PermitHandler interface {
	SubmitPermit(w http.ResponseWriter, r *http.Request)
	ApprovePermit(w http.ResponseWriter, r *http.Request)
	RejectPermit(w http.ResponseWriter, r *http.Request)
	ListPermits(w http.ResponseWriter, r *http.Request)

	SubmitAdjustment(w http.ResponseWriter, r *http.Request)
	ApproveAdjustment(w http.ResponseWriter, r *http.Request)
	RejectAdjustment(w http.ResponseWriter, r *http.Request)
	ListAdjustments(w http.ResponseWriter, r *http.Request)
}

type permitHandlerImpl struct {
	permitService permit.PermitService
}

func NewPermitHandler(permitService permit.PermitService) PermitHandler {
	return &permitHandlerImpl{
		permitService: permitService,
	}
}

// SubmitPermit implements PermitHandler.
func (h *permitHandlerImpl) SubmitPermit(w http.ResponseWriter, r *http.Request) {
	var req permit.SubmitPermitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.permitService.SubmitPermit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permit request submitted", result)
}

// ApprovePermit implements PermitHandler.
func (h *permitHandlerImpl) ApprovePermit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.permitService.ApprovePermit(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permit request approved", result)
}

// RejectPermit implements PermitHandler.
func (h *permitHandlerImpl) RejectPermit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.permitService.RejectPermit(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permit request rejected", result)
}

// ListPermits implements PermitHandler.
func (h *permitHandlerImpl) ListPermits(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.permitService.ListPermits(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmitAdjustment implements PermitHandler.
func (h *permitHandlerImpl) SubmitAdjustment(w http.ResponseWriter, r *http.Request) {
	var req permit.SubmitAdjustmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.permitService.SubmitAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment request submitted", result)
}

// ApproveAdjustment implements PermitHandler.
func (h *permitHandlerImpl) ApproveAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.permitService.ApproveAdjustment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment request approved", result)
}

// RejectAdjustment implements PermitHandler.
func (h *permitHandlerImpl) RejectAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.permitService.RejectAdjustment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment request rejected", result)
}

// ListAdjustments implements PermitHandler.
func (h *permitHandlerImpl) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.permitService.ListAdjustments(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
