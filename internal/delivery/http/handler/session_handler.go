package handler

import (
	"encoding/json"
	"net/http"

	"dental-navigator/internal/delivery/dto"
	"dental-navigator/internal/usecase"
	"dental-navigator/pkg/response"
	"dental-navigator/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.CreateSession(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create session")
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

func (h *SessionHandler) RequeueMatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	job, err := h.sessionUsecase.RequeueMatch(r.Context(), sessionID)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Session not found")
		case usecase.ErrSessionBlocked:
			response.Error(w, http.StatusConflict, "Session was blocked by triage", nil)
		default:
			response.InternalServerError(w, "Failed to queue match job")
		}
		return
	}

	response.Success(w, http.StatusAccepted, "Match job queued successfully", job)
}
