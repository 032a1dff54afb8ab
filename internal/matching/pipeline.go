package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// MaxRecommendations caps the ranked output written per session.
const MaxRecommendations = 15

// RunStats summarizes one pipeline run for job telemetry.
type RunStats struct {
	CandidateCount      int            `json:"candidate_count"`
	FilteredCount       int            `json:"filtered_count"`
	ScoredCount         int            `json:"scored_count"`
	BucketDistribution  map[string]int `json:"bucket_distribution"`
	RecommendationCount int            `json:"recommendation_count"`
}

// Run executes the full pipeline over one matching request: hard filter,
// six-dimension scoring, load balancing, sort, bucketing, truncation.
// All inputs are read-only; the returned slice is the ranked top-N.
// Ties on adjusted score keep ascending clinic-ID order so identical
// inputs always produce identical rankings.
func Run(input MatchInput, candidates []CandidateClinic, counts map[uuid.UUID]int, weights Weights, now time.Time) ([]ScoredClinic, RunStats) {
	filtered := ApplyHardFilters(candidates, input)

	scored := make([]ScoredClinic, 0, len(filtered.Passed))
	for _, clinic := range filtered.Passed {
		scored = append(scored, ScoreClinic(clinic, input, weights, now))
	}

	scored = ApplyLoadBalancing(scored, counts)

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].TotalScore != scored[j].TotalScore {
			return scored[i].TotalScore > scored[j].TotalScore
		}
		return scored[i].ClinicID.String() < scored[j].ClinicID.String()
	})

	bucketed := AssignBuckets(scored)

	top := bucketed
	if len(top) > MaxRecommendations {
		top = top[:MaxRecommendations]
	}

	distribution := make(map[string]int)
	for _, clinic := range top {
		distribution[clinic.Bucket]++
	}

	stats := RunStats{
		CandidateCount:      len(candidates),
		FilteredCount:       len(filtered.Passed),
		ScoredCount:         len(bucketed),
		BucketDistribution:  distribution,
		RecommendationCount: len(top),
	}

	return top, stats
}
