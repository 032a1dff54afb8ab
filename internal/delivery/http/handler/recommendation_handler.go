package handler

import (
	"net/http"

	"dental-navigator/internal/usecase"
	"dental-navigator/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RecommendationHandler struct {
	recommendationUsecase usecase.RecommendationUsecase
}

func NewRecommendationHandler(recommendationUsecase usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUsecase: recommendationUsecase,
	}
}

func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	recommendations, err := h.recommendationUsecase.GetBySession(r.Context(), sessionID)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Session not found")
		default:
			response.InternalServerError(w, "Failed to get recommendations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Recommendations retrieved successfully", recommendations)
}
