package matching

import "dental-navigator/internal/domain/entity"

const (
	ReasonEligibilityUnknown = "ELIGIBILITY_UNKNOWN"
	ReasonEligibilityLimited = "ELIGIBILITY_LIMITED"
	ReasonEligible           = "ELIGIBLE"
	ReasonNotEligible        = "NOT_ELIGIBLE"
	ReasonExactPlanMatch     = "EXACT_PLAN_MATCH"
	ReasonPlanUnsure         = "PLAN_UNSURE"
	ReasonPrivateAccepted    = "PRIVATE_GENERALLY_ACCEPTED"
)

// ScoreEligibility scores how confidently the clinic accepts the
// requester's coverage. Missing access rules are a data gap, not a
// rejection: they map to 0.4 with ELIGIBILITY_UNKNOWN.
func ScoreEligibility(clinic CandidateClinic, input MatchInput) ScorerResult {
	rules := clinic.AccessRules
	if rules == nil {
		return ScorerResult{Score: 0.4, ReasonCodes: []string{ReasonEligibilityUnknown}}
	}

	class := ClassifyInsurance(input.InsuranceType)
	var codes []string
	status := entity.EligibilityUnknown

	switch {
	case class.Medicaid:
		status = rules.AcceptsMedicaidAdults

		if input.MedicaidPlan != nil && *input.MedicaidPlan != entity.PlanUnsure &&
			len(rules.MedicaidPlansAccepted) > 0 && planAccepted(rules.MedicaidPlansAccepted, *input.MedicaidPlan) {
			codes = append(codes, ReasonExactPlanMatch)
		}
		if input.MedicaidPlan != nil && *input.MedicaidPlan == entity.PlanUnsure {
			codes = append(codes, ReasonPlanUnsure)
		}
	case class.Uninsured:
		status = rules.UninsuredWelcome
	case class.Medicare:
		switch rules.AcceptsMedicare {
		case entity.AnswerYes:
			status = entity.EligibilityYes
		case entity.AnswerNo:
			status = entity.EligibilityNo
		}
	default:
		// Private or unsure coverage is generally accepted.
		status = entity.EligibilityYes
		codes = append(codes, ReasonPrivateAccepted)
	}

	var score float64
	switch status {
	case entity.EligibilityYes:
		score = 1.0
		if containsCode(codes, ReasonPlanUnsure) {
			score = 0.8
		}
		codes = append(codes, ReasonEligible)
	case entity.EligibilityLimited:
		score = 0.6
		codes = append(codes, ReasonEligibilityLimited)
	case entity.EligibilityNo:
		score = 0.0
		codes = append(codes, ReasonNotEligible)
	default:
		score = 0.4
		codes = append(codes, ReasonEligibilityUnknown)
	}

	return ScorerResult{Score: score, ReasonCodes: codes}
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
