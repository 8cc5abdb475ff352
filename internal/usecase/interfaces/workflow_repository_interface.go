package interfaces

import (
	"context"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// IWorkflowStepRepository abstracts persistence for per-phase checklist rows.
//
// SeedPhase must be idempotent: rows that already exist are left untouched.
// UpdateStatusIf writes the step only when the stored status still equals
// expected and reports whether the write was applied; a false return means a
// concurrent completion won the race.

type IWorkflowStepRepository interface {
	SeedPhase(ctx context.Context, steps []entities.WorkflowStep) error
	ListByPhase(ctx context.Context, customerID string, phase entities.Phase) ([]entities.WorkflowStep, error)
	UpdateStatusIf(ctx context.Context, step entities.WorkflowStep, expected entities.StepStatus) (bool, error)
}
