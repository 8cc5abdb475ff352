package lifecycle

import (
	"sort"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// StepTemplate is one entry of a phase's fixed checklist.
type StepTemplate struct {
	StepID string
	Label  string
}

var phaseTemplates = map[entities.Phase][]StepTemplate{
	entities.PhaseSurvey: {
		{StepID: "site_visit", Label: "Site Visit"},
		{StepID: "roof_measurement", Label: "Roof Measurement"},
		{StepID: "shadow_analysis", Label: "Shadow Analysis"},
		{StepID: "survey_report", Label: "Survey Report"},
	},
	entities.PhaseInstallation: {
		{StepID: "mounting_structure", Label: "Mounting Structure"},
		{StepID: "inverter_installation", Label: "Inverter Installation"},
		{StepID: "wiring_cabling", Label: "Wiring & Cabling"},
		{StepID: "qc_inspection", Label: "QC Inspection"},
	},
	entities.PhaseCommissioning: {
		{StepID: "net_metering", Label: "Net Metering"},
		{StepID: "grid_sync", Label: "Grid Synchronization"},
		{StepID: "performance_test", Label: "Performance Test"},
	},
	entities.PhaseLive: {
		{StepID: "handover", Label: "Handover"},
		{StepID: "monitoring_setup", Label: "Monitoring Setup"},
	},
}

// PhaseTemplate returns the ordered checklist template of a phase.
func PhaseTemplate(phase entities.Phase) ([]StepTemplate, error) {
	tpl, ok := phaseTemplates[phase]
	if !ok {
		return nil, ErrUnknownPhase
	}
	return tpl, nil
}

// SeedPhase builds the step rows for a customer's first entry into a phase.
// The first step is seeded in_progress, all others pending. Idempotency (do
// nothing when steps already exist) is enforced by the caller against storage.
func SeedPhase(customerID string, phase entities.Phase, now time.Time) ([]entities.WorkflowStep, error) {
	tpl, err := PhaseTemplate(phase)
	if err != nil {
		return nil, err
	}

	steps := make([]entities.WorkflowStep, 0, len(tpl))
	for i, t := range tpl {
		status := entities.StepStatusPending
		if i == 0 {
			status = entities.StepStatusInProgress
		}
		steps = append(steps, entities.WorkflowStep{
			CustomerID: customerID,
			Phase:      phase,
			StepID:     t.StepID,
			Label:      t.Label,
			Ordinal:    i + 1,
			Status:     status,
			UpdatedAt:  now,
		})
	}
	return steps, nil
}

// Advance completes the identified step and promotes its successor.
//
// Rules:
//   - the target must be in_progress (completing a pending or completed step
//     fails with ErrNotInProgress)
//   - on success the next step in ordinal order, if any, becomes in_progress
//   - phaseComplete is true when the completed step was the last of the phase
//
// Advance does not mutate its input; it returns the changed rows only, for
// the caller to persist.
func Advance(steps []entities.WorkflowStep, stepID string, now time.Time) (changed []entities.WorkflowStep, phaseComplete bool, err error) {
	ordered := make([]entities.WorkflowStep, len(steps))
	copy(ordered, steps)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Ordinal < ordered[j].Ordinal })

	idx := -1
	for i, s := range ordered {
		if s.StepID == stepID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false, ErrUnknownStep
	}
	if ordered[idx].Status != entities.StepStatusInProgress {
		return nil, false, ErrNotInProgress
	}

	completed := ordered[idx]
	completed.Status = entities.StepStatusCompleted
	completed.CompletedAt = &now
	completed.UpdatedAt = now
	changed = append(changed, completed)

	if idx+1 < len(ordered) {
		next := ordered[idx+1]
		next.Status = entities.StepStatusInProgress
		next.UpdatedAt = now
		changed = append(changed, next)
		return changed, false, nil
	}
	return changed, true, nil
}

// RepairCandidate returns the pending step to promote when a phase has no
// in_progress row. A completion that persisted the completed step but failed
// before promoting its successor leaves the phase in that state; promoting
// the first pending step restores the one-in_progress invariant. ok is false
// when a step is already in_progress or the phase is fully completed.
func RepairCandidate(steps []entities.WorkflowStep) (entities.WorkflowStep, bool) {
	for _, s := range steps {
		if s.Status == entities.StepStatusInProgress {
			return entities.WorkflowStep{}, false
		}
	}

	ordered := make([]entities.WorkflowStep, len(steps))
	copy(ordered, steps)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Ordinal < ordered[j].Ordinal })

	for _, s := range ordered {
		if s.Status == entities.StepStatusPending {
			return s, true
		}
	}
	return entities.WorkflowStep{}, false
}

// PhaseFinished reports whether every step of the checklist is completed.
func PhaseFinished(steps []entities.WorkflowStep) bool {
	if len(steps) == 0 {
		return false
	}
	for _, s := range steps {
		if s.Status != entities.StepStatusCompleted {
			return false
		}
	}
	return true
}
