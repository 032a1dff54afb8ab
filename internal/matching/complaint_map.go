package matching

import "dental-navigator/internal/domain/entity"

// ComplaintServiceMapping lists the service types clinically relevant to a
// chief complaint. Primary services drive filtering and the bulk of the
// service-match score; secondary services only add a bonus.
type ComplaintServiceMapping struct {
	Primary   []entity.ServiceType
	Secondary []entity.ServiceType
}

var complaintServiceMap = map[entity.ChiefComplaint]ComplaintServiceMapping{
	entity.ComplaintPain: {
		Primary:   []entity.ServiceType{entity.ServiceEmergencyVisit, entity.ServiceExam},
		Secondary: []entity.ServiceType{entity.ServiceXray, entity.ServiceFilling, entity.ServiceRootCanal, entity.ServiceExtractionSimple},
	},
	entity.ComplaintSwelling: {
		Primary:   []entity.ServiceType{entity.ServiceEmergencyVisit, entity.ServiceAbscessDrainage},
		Secondary: []entity.ServiceType{entity.ServiceExam, entity.ServiceXray, entity.ServicePrescriptionOnly},
	},
	entity.ComplaintBrokenChippedTooth: {
		Primary:   []entity.ServiceType{entity.ServiceExam, entity.ServiceFilling, entity.ServiceCrown},
		Secondary: []entity.ServiceType{entity.ServiceXray, entity.ServiceEmergencyVisit},
	},
	entity.ComplaintToothKnockedOut: {
		Primary:   []entity.ServiceType{entity.ServiceEmergencyVisit},
		Secondary: []entity.ServiceType{entity.ServiceExam, entity.ServiceXray},
	},
	entity.ComplaintNeedToothPulled: {
		Primary:   []entity.ServiceType{entity.ServiceExtractionSimple, entity.ServiceExtractionSurgical},
		Secondary: []entity.ServiceType{entity.ServiceExam, entity.ServiceXray},
	},
	entity.ComplaintFillingCrownFellOut: {
		Primary:   []entity.ServiceType{entity.ServiceFilling, entity.ServiceCrown},
		Secondary: []entity.ServiceType{entity.ServiceExam, entity.ServiceXray},
	},
	entity.ComplaintBumpOnGum: {
		Primary:   []entity.ServiceType{entity.ServiceExam, entity.ServiceAbscessDrainage},
		Secondary: []entity.ServiceType{entity.ServiceXray, entity.ServicePrescriptionOnly},
	},
	entity.ComplaintCleaningCheckup: {
		Primary:   []entity.ServiceType{entity.ServiceCleaning, entity.ServiceExam},
		Secondary: []entity.ServiceType{entity.ServiceXray},
	},
	entity.ComplaintDentures: {
		Primary:   []entity.ServiceType{entity.ServiceDentureFull, entity.ServiceDenturePartial},
		Secondary: []entity.ServiceType{entity.ServiceExam, entity.ServiceXray, entity.ServiceExtractionSimple},
	},
	entity.ComplaintNotSure: {
		Primary:   []entity.ServiceType{entity.ServiceExam},
		Secondary: []entity.ServiceType{entity.ServiceXray, entity.ServiceCleaning},
	},
}

// ServicesForComplaint returns the mapping for a complaint. Unmapped
// complaints fall back to the NOT_SURE mapping.
func ServicesForComplaint(c entity.ChiefComplaint) ComplaintServiceMapping {
	if m, ok := complaintServiceMap[c]; ok {
		return m
	}
	return complaintServiceMap[entity.ComplaintNotSure]
}
