package matching

import (
	"math"

	"dental-navigator/internal/domain/entity"
)

const (
	ReasonMedicaidCovered  = "MEDICAID_COVERED"
	ReasonInsuranceCovered = "INSURANCE_COVERED"
	ReasonSlidingScale     = "SLIDING_SCALE"
	ReasonPricingUnknown   = "PRICING_UNKNOWN"
	ReasonFreeServices     = "FREE_SERVICES"
	ReasonHasFreeOptions   = "HAS_FREE_OPTIONS"
	ReasonNotFree          = "NOT_FREE"

	pricingModelDonationBased = "DONATION_BASED"
)

// ScoreCost scores affordability. Covered requesters short-circuit:
// Medicaid is fully covered, other insurance mostly covered. Uninsured
// requesters are scored against the clinic's cheapest listed price and
// their budget band, with a sliding-scale bonus on top.
func ScoreCost(clinic CandidateClinic, input MatchInput) ScorerResult {
	class := ClassifyInsurance(input.InsuranceType)

	if class.Medicaid {
		return ScorerResult{Score: 1.0, ReasonCodes: []string{ReasonMedicaidCovered}}
	}
	if !class.Uninsured {
		return ScorerResult{Score: 0.8, ReasonCodes: []string{ReasonInsuranceCovered}}
	}

	var codes []string
	slidingScale := clinic.AccessRules != nil && clinic.AccessRules.SlidingScaleAvailable == entity.AnswerYes
	if slidingScale {
		codes = append(codes, ReasonSlidingScale)
	}

	if len(clinic.Pricing) == 0 {
		score := 0.5
		if slidingScale {
			score += 0.2
		}
		codes = append(codes, ReasonPricingUnknown)
		return ScorerResult{Score: math.Min(score, 1.0), ReasonCodes: codes}
	}

	minPrice := math.Inf(1)
	maxPrice := 0.0
	donationBased := false
	for _, p := range clinic.Pricing {
		lo := 999.0
		if p.PriceMin != nil {
			lo = *p.PriceMin
		}
		if lo < minPrice {
			minPrice = lo
		}
		if p.PriceMax != nil && *p.PriceMax > maxPrice {
			maxPrice = *p.PriceMax
		}
		if p.PricingModel != nil && *p.PricingModel == pricingModelDonationBased {
			donationBased = true
		}
	}

	if minPrice == 0 && (maxPrice == 0 || donationBased) {
		codes = append(codes, ReasonFreeServices)
		return ScorerResult{Score: 1.0, ReasonCodes: codes}
	}

	band := entity.BudgetNotSure
	if input.BudgetBand != nil {
		band = *input.BudgetBand
	}

	var score float64
	switch band {
	case entity.BudgetFreeOnly:
		if minPrice == 0 {
			score = 0.8
			codes = append(codes, ReasonHasFreeOptions)
		} else {
			score = 0.1
			codes = append(codes, ReasonNotFree)
		}
	case entity.BudgetUnder50:
		switch {
		case minPrice <= 50:
			score = 0.9
		case minPrice <= 100:
			score = 0.5
		default:
			score = 0.2
		}
	case entity.Budget50To150:
		switch {
		case minPrice <= 150:
			score = 0.9
		case minPrice <= 250:
			score = 0.5
		default:
			score = 0.2
		}
	case entity.Budget150Plus:
		score = 0.8
	default:
		// NOT_SURE or unset
		if minPrice <= 100 {
			score = 0.7
		} else {
			score = 0.4
		}
	}

	if slidingScale {
		score = math.Min(score+0.2, 1.0)
	}

	return ScorerResult{Score: score, ReasonCodes: codes}
}
