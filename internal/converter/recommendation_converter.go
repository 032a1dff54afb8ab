package converter

import (
	"dental-navigator/internal/delivery/dto"
	"dental-navigator/internal/domain/entity"
)

func RecommendationsToResponses(recommendations []entity.Recommendation) []dto.RecommendationResponse {
	responses := make([]dto.RecommendationResponse, 0, len(recommendations))
	for i := range recommendations {
		responses = append(responses, RecommendationToResponse(&recommendations[i]))
	}
	return responses
}

func RecommendationToResponse(rec *entity.Recommendation) dto.RecommendationResponse {
	response := dto.RecommendationResponse{
		Rank:   rec.Rank,
		Bucket: rec.Bucket,
		Scores: dto.ScoreBreakdownResponse{
			Total:        rec.ScoreTotal,
			Eligibility:  rec.ScoreEligibility,
			ServiceMatch: rec.ScoreServiceMatch,
			Access:       rec.ScoreAccess,
			Cost:         rec.ScoreCost,
			Distance:     rec.ScoreDistance,
			Freshness:    rec.ScoreFreshness,
		},
		ReasonCodes:       []string(rec.ReasonCodes),
		DisplayConfidence: rec.DisplayConfidence,
	}

	if c := rec.Clinic; c != nil {
		response.Clinic = dto.ClinicSummary{
			ID:         c.ID,
			Name:       c.Name,
			ClinicType: c.ClinicType,
			Address:    c.Address,
			City:       c.City,
			Phone:      c.Phone,
			WebsiteURL: c.WebsiteURL,
		}
	}

	return response
}

func MatchJobToResponse(job *entity.MatchJob) dto.MatchJobResponse {
	return dto.MatchJobResponse{
		ID:           job.ID,
		SessionID:    job.SessionID,
		Status:       string(job.Status),
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt,
		StartedAt:    job.StartedAt,
		CompletedAt:  job.CompletedAt,
	}
}
