package matching

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"dental-navigator/internal/domain/entity"
)

type HardFilterSuite struct {
	suite.Suite
}

func TestHardFilterSuite(t *testing.T) {
	suite.Run(t, new(HardFilterSuite))
}

func (s *HardFilterSuite) rejectionFor(clinic CandidateClinic, input MatchInput) []string {
	result := ApplyHardFilters([]CandidateClinic{clinic}, input)
	if len(result.Rejected) == 0 {
		return nil
	}
	return result.Rejected[0].Reasons
}

func (s *HardFilterSuite) TestActiveClinicPasses() {
	result := ApplyHardFilters([]CandidateClinic{baseCandidate(1)}, medicaidInput())
	s.Len(result.Passed, 1)
	s.Empty(result.Rejected)
}

func (s *HardFilterSuite) TestInactiveShortCircuits() {
	clinic := baseCandidate(1)
	clinic.Active = false
	// Make it otherwise rejectable too; inactivity must be the only reason.
	clinic.AccessRules.AcceptsMedicaidAdults = entity.EligibilityNo

	reasons := s.rejectionFor(clinic, medicaidInput())
	s.Equal([]string{ReasonInactive}, reasons)
}

func (s *HardFilterSuite) TestRejectsMedicaid() {
	clinic := baseCandidate(1)
	clinic.AccessRules.AcceptsMedicaidAdults = entity.EligibilityNo

	s.Contains(s.rejectionFor(clinic, medicaidInput()), ReasonRejectsMedicaid)
}

func (s *HardFilterSuite) TestRejectsUninsured() {
	clinic := baseCandidate(1)
	clinic.AccessRules.UninsuredWelcome = entity.EligibilityNo

	input := medicaidInput()
	input.InsuranceType = entity.InsuranceUninsuredSelfPay

	s.Contains(s.rejectionFor(clinic, input), ReasonRejectsUninsured)
}

func (s *HardFilterSuite) TestRejectsMedicare() {
	clinic := baseCandidate(1)
	clinic.AccessRules.AcceptsMedicare = entity.AnswerNo

	input := medicaidInput()
	input.InsuranceType = entity.InsuranceMedicare

	s.Contains(s.rejectionFor(clinic, input), ReasonRejectsMedicare)
}

func (s *HardFilterSuite) TestDualEligibleGatedByBoth() {
	clinic := baseCandidate(1)
	clinic.AccessRules.AcceptsMedicaidAdults = entity.EligibilityNo

	input := medicaidInput()
	input.InsuranceType = entity.InsuranceDual

	s.Contains(s.rejectionFor(clinic, input), ReasonRejectsMedicaid)
}

func (s *HardFilterSuite) TestMedicaidPlanMismatch() {
	clinic := baseCandidate(1)
	clinic.AccessRules.MedicaidPlansAccepted = []entity.MedicaidPlan{entity.PlanAmerigroup}

	input := medicaidInput()
	input.MedicaidPlan = planPtr(entity.PlanPriorityPartners)

	s.Contains(s.rejectionFor(clinic, input), ReasonMedicaidPlanMismatch)
}

func (s *HardFilterSuite) TestEmptyPlanListAcceptsAllPlans() {
	clinic := baseCandidate(1)
	clinic.AccessRules.MedicaidPlansAccepted = nil

	input := medicaidInput()
	input.MedicaidPlan = planPtr(entity.PlanPriorityPartners)

	s.Nil(s.rejectionFor(clinic, input))
}

func (s *HardFilterSuite) TestUnsurePlanNeverMismatches() {
	clinic := baseCandidate(1)
	clinic.AccessRules.MedicaidPlansAccepted = []entity.MedicaidPlan{entity.PlanAmerigroup}

	input := medicaidInput()
	input.MedicaidPlan = planPtr(entity.PlanUnsure)

	s.Nil(s.rejectionFor(clinic, input))
}

func (s *HardFilterSuite) TestNoRecordedServicesPasses() {
	clinic := baseCandidate(1)
	clinic.Services = nil

	s.Nil(s.rejectionFor(clinic, medicaidInput()))
}

func (s *HardFilterSuite) TestNoPrimaryService() {
	clinic := baseCandidate(1)
	clinic.Services = []ServiceAvailability{availableService(entity.ServiceCleaning)}

	s.Contains(s.rejectionFor(clinic, medicaidInput()), ReasonNoPrimaryService)
}

func (s *HardFilterSuite) TestPrimaryServiceGatedByInsurance() {
	clinic := baseCandidate(1)
	svc := availableService(entity.ServiceEmergencyVisit)
	svc.AvailableForMedicaid = false
	exam := availableService(entity.ServiceExam)
	exam.AvailableForMedicaid = false
	clinic.Services = []ServiceAvailability{svc, exam}

	s.Contains(s.rejectionFor(clinic, medicaidInput()), ReasonNoPrimaryService)
}

func (s *HardFilterSuite) TestExplicitServiceRuleRejection() {
	clinic := baseCandidate(1)
	clinic.Services = []ServiceAvailability{availableService(entity.ServiceExam)}
	clinic.ServiceRules = []ServiceRule{
		{ServiceType: entity.ServiceExam, InsuranceType: entity.InsuranceMedicaid, Accepts: entity.EligibilityNo},
	}

	s.Contains(s.rejectionFor(clinic, medicaidInput()), ReasonServiceRuleRejection)
}

func (s *HardFilterSuite) TestServiceRuleForOtherInsuranceIgnored() {
	clinic := baseCandidate(1)
	clinic.ServiceRules = []ServiceRule{
		{ServiceType: entity.ServiceExam, InsuranceType: entity.InsuranceUninsuredSelfPay, Accepts: entity.EligibilityNo},
	}

	s.Nil(s.rejectionFor(clinic, medicaidInput()))
}

func (s *HardFilterSuite) TestTooFar() {
	clinic := baseCandidate(1)
	clinic.Lat = fptr(40.50) // ~83 miles north, radius is 30

	s.Contains(s.rejectionFor(clinic, medicaidInput()), ReasonTooFar)
}

func (s *HardFilterSuite) TestWalkOnlyShrinksRadius() {
	clinic := baseCandidate(1)
	clinic.Lat = fptr(39.35) // ~4 miles

	input := medicaidInput()
	input.TravelMode = modePtr(entity.TravelWalkOnly)
	input.TravelTime = travelTimePtr(entity.TravelUpTo15Min)

	s.Contains(s.rejectionFor(clinic, input), ReasonTooFar)
}

func (s *HardFilterSuite) TestMissingCoordinatesSkipsDistanceCheck() {
	clinic := baseCandidate(1)
	clinic.Lat = nil
	clinic.Lng = nil

	s.Nil(s.rejectionFor(clinic, medicaidInput()))
}

func (s *HardFilterSuite) TestRejectionReasonsAccumulate() {
	clinic := baseCandidate(1)
	clinic.AccessRules.AcceptsMedicaidAdults = entity.EligibilityNo
	clinic.Lat = fptr(40.50)

	reasons := s.rejectionFor(clinic, medicaidInput())
	s.Contains(reasons, ReasonRejectsMedicaid)
	s.Contains(reasons, ReasonTooFar)
}
