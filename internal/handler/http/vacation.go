package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talentbase/hr-backend-go/internal/domain/vacation"
	"github.com/talentbase/hr-backend-go/internal/handler/http/middleware"
	"github.com/talentbase/hr-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

// Create implements VacationHandler.
func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req vacation.SubmitVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create vacation request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.vacationService.Submit(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request submitted successfully", map[string]string{
		"request_id": created.ID,
	})
}

// List implements VacationHandler.
func (h *VacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.vacationService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]vacation.VacationRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, vacation.NewVacationRequestResponse(req))
	}

	response.Success(w, resp)
}

// GetBalance implements VacationHandler.
func (h *VacationHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := h.vacationService.Balance(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacation.NewBalanceResponse(balance))
}

// UpdateStatus implements VacationHandler.
func (h *VacationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req vacation.DecideVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.vacationService.Decide(r.Context(), actor, requestID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request "+req.Status+" successfully", nil)
}

// Stats implements VacationHandler.
func (h *VacationHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.IdentityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.vacationService.Stats(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
