package response

import (
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

type WorkflowStepResponse struct {
	CustomerID  string     `json:"customer_id"`
	Phase       string     `json:"phase"`
	StepID      string     `json:"step_id"`
	Label       string     `json:"label"`
	Ordinal     int        `json:"ordinal"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromWorkflowStep(s entities.WorkflowStep) WorkflowStepResponse {
	return WorkflowStepResponse{
		CustomerID:  s.CustomerID,
		Phase:       string(s.Phase),
		StepID:      s.StepID,
		Label:       s.Label,
		Ordinal:     s.Ordinal,
		Status:      string(s.Status),
		CompletedAt: s.CompletedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromWorkflowSteps(list []entities.WorkflowStep) []WorkflowStepResponse {
	out := make([]WorkflowStepResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromWorkflowStep(s))
	}
	return out
}
