package matching

import "encoding/json"

// Weights are the per-dimension multipliers for the aggregate score. The
// defaults sum to 1.0 but the aggregator never enforces that, so a partial
// override may produce weights that do not.
type Weights struct {
	Eligibility  float64 `json:"eligibility"`
	ServiceMatch float64 `json:"serviceMatch"`
	Access       float64 `json:"access"`
	Cost         float64 `json:"cost"`
	Distance     float64 `json:"distance"`
	Freshness    float64 `json:"freshness"`
}

func DefaultWeights() Weights {
	return Weights{
		Eligibility:  0.25,
		ServiceMatch: 0.25,
		Access:       0.15,
		Cost:         0.15,
		Distance:     0.10,
		Freshness:    0.10,
	}
}

// ParseWeights merges a JSON override onto the defaults. The second return
// value reports whether the override was applied; a malformed or empty
// override yields (DefaultWeights(), false) so the caller can log the
// fallback instead of it disappearing silently.
func ParseWeights(raw string) (Weights, bool) {
	defaults := DefaultWeights()
	if raw == "" {
		return defaults, false
	}

	var override struct {
		Eligibility  *float64 `json:"eligibility"`
		ServiceMatch *float64 `json:"serviceMatch"`
		Access       *float64 `json:"access"`
		Cost         *float64 `json:"cost"`
		Distance     *float64 `json:"distance"`
		Freshness    *float64 `json:"freshness"`
	}
	if err := json.Unmarshal([]byte(raw), &override); err != nil {
		return defaults, false
	}

	w := defaults
	if override.Eligibility != nil {
		w.Eligibility = *override.Eligibility
	}
	if override.ServiceMatch != nil {
		w.ServiceMatch = *override.ServiceMatch
	}
	if override.Access != nil {
		w.Access = *override.Access
	}
	if override.Cost != nil {
		w.Cost = *override.Cost
	}
	if override.Distance != nil {
		w.Distance = *override.Distance
	}
	if override.Freshness != nil {
		w.Freshness = *override.Freshness
	}
	return w, true
}
