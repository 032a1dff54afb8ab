package converter

import (
	"github.com/shopspring/decimal"

	"dental-navigator/internal/domain/entity"
	"dental-navigator/internal/matching"
)

// SessionToMatchInput projects a stored session into the pipeline's
// immutable input shape.
func SessionToMatchInput(session *entity.Session) matching.MatchInput {
	return matching.MatchInput{
		SessionID:          session.ID,
		ChiefComplaint:     session.ChiefComplaint,
		InsuranceType:      session.InsuranceType,
		MedicaidPlan:       session.MedicaidPlan,
		Urgency:            session.Urgency,
		BudgetBand:         session.BudgetBand,
		TravelMode:         session.TravelMode,
		TravelTime:         session.TravelTime,
		Lat:                session.LatRound,
		Lng:                session.LngRound,
		LanguagePreference: session.LanguagePreference,
	}
}

// ClinicsToCandidates detaches clinic rows into matchable candidate views.
func ClinicsToCandidates(clinics []entity.Clinic) []matching.CandidateClinic {
	candidates := make([]matching.CandidateClinic, 0, len(clinics))
	for i := range clinics {
		candidates = append(candidates, ClinicToCandidate(&clinics[i]))
	}
	return candidates
}

func ClinicToCandidate(clinic *entity.Clinic) matching.CandidateClinic {
	candidate := matching.CandidateClinic{
		ID:              clinic.ID,
		Name:            clinic.Name,
		ClinicType:      clinic.ClinicType,
		City:            clinic.City,
		Lat:             clinic.Lat,
		Lng:             clinic.Lng,
		Active:          clinic.Active,
		Languages:       []string(clinic.LanguagesAvailable),
		NearTransitStop: clinic.NearTransitStop,
		LastVerifiedAt:  clinic.LastVerifiedAt,
	}

	if ar := clinic.AccessRule; ar != nil {
		candidate.AccessRules = &matching.AccessRules{
			AcceptsMedicaidAdults: ar.AcceptsMedicaidAdults,
			MedicaidPlansAccepted: []entity.MedicaidPlan(ar.MedicaidPlansAccepted),
			AcceptsMedicare:       ar.AcceptsMedicare,
			UninsuredWelcome:      ar.UninsuredWelcome,
			SlidingScaleAvailable: ar.SlidingScaleAvailable,
			SeesEmergencyPain:     ar.SeesEmergencyPain,
			SeesSwelling:          ar.SeesSwelling,
			WalkInAllowed:         ar.WalkInAllowed,
			ReferralRequired:      ar.ReferralRequired,
			LastVerifiedAt:        ar.LastVerifiedAt,
		}
	}

	for _, s := range clinic.Services {
		candidate.Services = append(candidate.Services, matching.ServiceAvailability{
			ServiceType:           s.ServiceType,
			AvailableForMedicaid:  s.AvailableForMedicaid,
			AvailableForUninsured: s.AvailableForUninsured,
			AvailableForPrivate:   s.AvailableForPrivate,
			NewPatientsAccepted:   s.NewPatientsAccepted,
			LastVerifiedAt:        s.LastVerifiedAt,
		})
	}

	for _, sr := range clinic.ServiceRules {
		candidate.ServiceRules = append(candidate.ServiceRules, matching.ServiceRule{
			ServiceType:   sr.ServiceType,
			InsuranceType: sr.InsuranceType,
			Accepts:       sr.Accepts,
		})
	}

	for _, p := range clinic.Pricing {
		candidate.Pricing = append(candidate.Pricing, matching.PricingEntry{
			ServiceType:    p.ServiceType,
			PriceMin:       decimalToFloat(p.PriceMin),
			PriceMax:       decimalToFloat(p.PriceMax),
			PricingModel:   p.PricingModel,
			MedicaidCopay:  decimalToFloat(p.MedicaidCopay),
			LastVerifiedAt: p.LastVerifiedAt,
		})
	}

	for _, t := range clinic.AccessTimings {
		candidate.AccessTimings = append(candidate.AccessTimings, matching.AccessTiming{
			ServiceType:               t.ServiceType,
			InsuranceType:             t.InsuranceType,
			NextAvailableDaysEstimate: t.NextAvailableDaysEstimate,
		})
	}

	return candidate
}

func decimalToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}
