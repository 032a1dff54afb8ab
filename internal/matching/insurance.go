package matching

import "dental-navigator/internal/domain/entity"

// InsuranceClass collapses the six insurance types into the four coverage
// categories the filter and scorers branch on. Dual-eligible people count
// as both Medicaid and Medicare, so the class keeps independent flags
// rather than a single variant.
type InsuranceClass struct {
	Medicaid  bool
	Uninsured bool
	Medicare  bool
}

// Other reports a type with no dedicated gating (private or unsure).
func (c InsuranceClass) Other() bool {
	return !c.Medicaid && !c.Uninsured && !c.Medicare
}

// ClassifyInsurance is the single place insurance-type branching happens.
func ClassifyInsurance(t entity.InsuranceType) InsuranceClass {
	switch t {
	case entity.InsuranceMedicaid:
		return InsuranceClass{Medicaid: true}
	case entity.InsuranceMedicare:
		return InsuranceClass{Medicare: true}
	case entity.InsuranceDual:
		return InsuranceClass{Medicaid: true, Medicare: true}
	case entity.InsuranceUninsuredSelfPay:
		return InsuranceClass{Uninsured: true}
	default:
		// PRIVATE, NOT_SURE
		return InsuranceClass{}
	}
}

// serviceAvailableFor checks one service's per-insurance availability
// flags. Medicare and NOT_SURE have no dedicated flag and are treated
// permissively: any coverage path counts.
func serviceAvailableFor(svc ServiceAvailability, t entity.InsuranceType) bool {
	switch t {
	case entity.InsuranceMedicaid, entity.InsuranceDual:
		return svc.AvailableForMedicaid
	case entity.InsuranceUninsuredSelfPay:
		return svc.AvailableForUninsured
	case entity.InsurancePrivate:
		return svc.AvailableForPrivate
	default:
		return svc.AvailableForMedicaid || svc.AvailableForUninsured || svc.AvailableForPrivate
	}
}
