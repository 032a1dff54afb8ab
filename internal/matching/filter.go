package matching

import "dental-navigator/internal/domain/entity"

// Hard-filter rejection reasons.
const (
	ReasonInactive             = "INACTIVE"
	ReasonNoPrimaryService     = "NO_PRIMARY_SERVICE"
	ReasonRejectsMedicaid      = "REJECTS_MEDICAID"
	ReasonRejectsUninsured     = "REJECTS_UNINSURED"
	ReasonRejectsMedicare      = "REJECTS_MEDICARE"
	ReasonMedicaidPlanMismatch = "MEDICAID_PLAN_MISMATCH"
	ReasonServiceRuleRejection = "SERVICE_RULE_REJECTION"
	ReasonTooFar               = "TOO_FAR"
)

// HardFilterResult splits the candidate set into admitted and rejected.
type HardFilterResult struct {
	Passed   []CandidateClinic
	Rejected []RejectedClinic
}

// ApplyHardFilters admits or rejects every candidate. A candidate passes
// iff its reason set is empty. Rejection is a pure function of
// (clinic, input); re-running yields identical output.
func ApplyHardFilters(candidates []CandidateClinic, input MatchInput) HardFilterResult {
	var result HardFilterResult
	for _, clinic := range candidates {
		reasons := filterReasons(clinic, input)
		if len(reasons) == 0 {
			result.Passed = append(result.Passed, clinic)
		} else {
			result.Rejected = append(result.Rejected, RejectedClinic{ClinicID: clinic.ID, Reasons: reasons})
		}
	}
	return result
}

func filterReasons(clinic CandidateClinic, input MatchInput) []string {
	var reasons []string

	// Inactivity short-circuits every other check.
	if !clinic.Active {
		return []string{ReasonInactive}
	}

	mapping := ServicesForComplaint(input.ChiefComplaint)
	if !hasAnyPrimaryService(clinic, mapping.Primary, input.InsuranceType) {
		reasons = append(reasons, ReasonNoPrimaryService)
	}

	class := ClassifyInsurance(input.InsuranceType)
	if rules := clinic.AccessRules; rules != nil {
		if class.Medicaid && rules.AcceptsMedicaidAdults == entity.EligibilityNo {
			reasons = append(reasons, ReasonRejectsMedicaid)
		}
		if class.Uninsured && rules.UninsuredWelcome == entity.EligibilityNo {
			reasons = append(reasons, ReasonRejectsUninsured)
		}
		if class.Medicare && rules.AcceptsMedicare == entity.AnswerNo {
			reasons = append(reasons, ReasonRejectsMedicare)
		}

		// Plan mismatch only applies to a known plan against a clinic that
		// declares a plan list; an empty list accepts all plans.
		if class.Medicaid && input.MedicaidPlan != nil && *input.MedicaidPlan != entity.PlanUnsure {
			if len(rules.MedicaidPlansAccepted) > 0 && !planAccepted(rules.MedicaidPlansAccepted, *input.MedicaidPlan) {
				reasons = append(reasons, ReasonMedicaidPlanMismatch)
			}
		}
	}

	if hasExplicitServiceRejection(clinic, mapping.Primary, input.InsuranceType) {
		reasons = append(reasons, ReasonServiceRuleRejection)
	}

	if input.Lat != nil && input.Lng != nil && clinic.Lat != nil && clinic.Lng != nil {
		maxRadius := RadiusMiles(input.TravelMode, input.TravelTime)
		distance := DistanceMiles(*input.Lat, *input.Lng, *clinic.Lat, *clinic.Lng)
		if distance > maxRadius {
			reasons = append(reasons, ReasonTooFar)
		}
	}

	return reasons
}

// hasAnyPrimaryService reports whether at least one of the complaint's
// primary services is available to the requester's insurance type. A clinic
// with no recorded services passes (no data = pass); the service-match
// scorer handles the same gap as "unknown" instead.
func hasAnyPrimaryService(clinic CandidateClinic, primary []entity.ServiceType, insurance entity.InsuranceType) bool {
	if len(clinic.Services) == 0 {
		return true
	}
	for _, needed := range primary {
		for _, svc := range clinic.Services {
			if svc.ServiceType == needed && serviceAvailableFor(svc, insurance) {
				return true
			}
		}
	}
	return false
}

// hasExplicitServiceRejection reports whether every primary service the
// clinic actually offers carries an explicit NO rule for this insurance
// type. Rules for services the clinic does not offer are irrelevant.
func hasExplicitServiceRejection(clinic CandidateClinic, primary []entity.ServiceType, insurance entity.InsuranceType) bool {
	if len(clinic.ServiceRules) == 0 {
		return false
	}

	relevant := 0
	rejected := 0
	for _, rule := range clinic.ServiceRules {
		if rule.InsuranceType != insurance || !containsService(primary, rule.ServiceType) {
			continue
		}
		relevant++
		if rule.Accepts == entity.EligibilityNo {
			rejected++
		}
	}
	if relevant == 0 {
		return false
	}

	offered := 0
	for _, s := range primary {
		for _, svc := range clinic.Services {
			if svc.ServiceType == s {
				offered++
				break
			}
		}
	}

	return offered > 0 && rejected >= offered
}

func containsService(list []entity.ServiceType, s entity.ServiceType) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func planAccepted(accepted []entity.MedicaidPlan, plan entity.MedicaidPlan) bool {
	for _, p := range accepted {
		if p == plan {
			return true
		}
	}
	return false
}
