package request

import "strings"

// OnboardCustomerRequest registers a new installation lead. Name and phone are
// the minimum the call center captures; the rest can arrive later.
type OnboardCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Region  string `json:"region"`
}

type AssignSurveyRequest struct {
	SurveyorID string `json:"surveyor_id" binding:"required"`
}

// RejectionRequest carries the mandatory reason for survey/QC/quotation
// rejections.
type RejectionRequest struct {
	Reason string `json:"reason"`
}

func (r RejectionRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
