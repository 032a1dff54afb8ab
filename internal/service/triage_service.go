package service

import (
	"dental-navigator/internal/delivery/dto"
	"dental-navigator/internal/domain/entity"
)

// triageRule is one red-flag combination and the action it forces.
type triageRule struct {
	complaintTrigger entity.ChiefComplaint
	requiresFever    bool
	requiresFacialSwelling bool
	action           entity.TriageAction
	messageTitle     string
	messageBody      string
}

// Hard-coded triage rules. Safety-critical, not configurable at runtime.
var triageRules = []triageRule{
	{
		complaintTrigger: entity.ComplaintSwelling,
		requiresFever:    true,
		action:           entity.TriageRouteToED,
		messageTitle:     "Seek Emergency Care Now",
		messageBody:      "Swelling with fever can indicate a serious infection. Please go to your nearest emergency room or call 911 immediately.",
	},
	{
		complaintTrigger:       entity.ComplaintSwelling,
		requiresFacialSwelling: true,
		action:                 entity.TriageRouteToED,
		messageTitle:           "Seek Emergency Care Now",
		messageBody:            "Facial swelling can indicate a spreading infection. Please go to your nearest emergency room or call 911.",
	},
	{
		complaintTrigger: entity.ComplaintPain,
		requiresFever:    true,
		action:           entity.TriageShowWarning,
		messageTitle:     "Warning: Possible Infection",
		messageBody:      "Tooth pain with fever may indicate an infection. If pain is severe or you feel unwell, consider visiting an emergency room. Otherwise, seek dental care as soon as possible.",
	},
	{
		complaintTrigger: entity.ComplaintBumpOnGum,
		requiresFever:    true,
		action:           entity.TriageShowWarning,
		messageTitle:     "Warning: Possible Abscess",
		messageBody:      "A bump on the gum with fever could be an abscess requiring urgent treatment. Seek dental care today if possible.",
	},
	{
		complaintTrigger: entity.ComplaintToothKnockedOut,
		action:           entity.TriageBoostUrgency,
		messageTitle:     "Time-Sensitive Emergency",
		messageBody:      "A knocked-out tooth has the best chance of being saved within 30 minutes. Keep the tooth moist and seek dental care immediately.",
	},
}

const (
	breathingTitle = "Call 911 Immediately"
	breathingBody  = "Difficulty breathing or swallowing is a medical emergency. Call 911 or go to the nearest emergency room now."
)

// TriageResult is the outcome of the red-flag gate. A blocked result means
// no match job is created for the session.
type TriageResult struct {
	Action       entity.TriageAction
	Blocked      bool
	MessageTitle string
	MessageBody  string
}

// EvaluateTriage runs the static red-flag gate over an intake request.
// Difficulty breathing/swallowing routes to the ED regardless of
// complaint; complaint-specific rules are checked in declaration order.
func EvaluateTriage(req *dto.CreateSessionRequest) TriageResult {
	if req.DifficultySwallowingBreathing != nil && *req.DifficultySwallowingBreathing {
		return TriageResult{
			Action:       entity.TriageRouteToED,
			Blocked:      true,
			MessageTitle: breathingTitle,
			MessageBody:  breathingBody,
		}
	}

	complaint := entity.ChiefComplaint(req.ChiefComplaint)
	hasFever := req.HasFever != nil && *req.HasFever
	hasFacialSwelling := req.HasFacialSwelling != nil && *req.HasFacialSwelling

	for _, rule := range triageRules {
		if rule.complaintTrigger != complaint {
			continue
		}
		if rule.requiresFever && !hasFever {
			continue
		}
		if rule.requiresFacialSwelling && !hasFacialSwelling {
			continue
		}
		return TriageResult{
			Action:       rule.action,
			Blocked:      rule.action == entity.TriageRouteToED,
			MessageTitle: rule.messageTitle,
			MessageBody:  rule.messageBody,
		}
	}

	return TriageResult{Action: entity.TriageAllowNormal}
}
