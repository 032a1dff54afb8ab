package handler

import (
	"net/http"

	"dental-navigator/internal/usecase"
	"dental-navigator/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MatchJobHandler struct {
	recommendationUsecase usecase.RecommendationUsecase
}

func NewMatchJobHandler(recommendationUsecase usecase.RecommendationUsecase) *MatchJobHandler {
	return &MatchJobHandler{
		recommendationUsecase: recommendationUsecase,
	}
}

func (h *MatchJobHandler) GetMatchJob(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid match job ID", nil)
		return
	}

	job, err := h.recommendationUsecase.GetMatchJob(r.Context(), jobID)
	if err != nil {
		switch err {
		case usecase.ErrMatchJobNotFound:
			response.NotFound(w, "Match job not found")
		default:
			response.InternalServerError(w, "Failed to get match job")
		}
		return
	}

	response.Success(w, http.StatusOK, "Match job retrieved successfully", job)
}
