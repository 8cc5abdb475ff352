package entities

import "time"

// Phase is a top-level stage of the installation lifecycle. Each phase has its
// own ordered step checklist, initialized once at first entry into the phase.

type Phase string

const (
	PhaseSurvey        Phase = "SURVEY"
	PhaseInstallation  Phase = "INSTALLATION"
	PhaseCommissioning Phase = "COMMISSIONING"
	PhaseLive          Phase = "LIVE"
)

// StepStatus moves strictly forward: pending → in_progress → completed.

type StepStatus string

const (
	StepStatusPending    StepStatus = "pending"
	StepStatusInProgress StepStatus = "in_progress"
	StepStatusCompleted  StepStatus = "completed"
)

// WorkflowStep is one entry of a phase's ordered checklist.
//
// Storage model (DynamoDB):
//   - PK: customer_id
//   - SK: sort_key ("<phase>#<ordinal>")
//
// Invariants:
//   - within a phase at most one step is in_progress at a time
//   - the first step of a phase is seeded in_progress, all others pending

type WorkflowStep struct {
	CustomerID  string     `json:"customer_id"`
	Phase       Phase      `json:"phase"`
	StepID      string     `json:"step_id"`
	Label       string     `json:"label"`
	Ordinal     int        `json:"ordinal"`
	Status      StepStatus `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
