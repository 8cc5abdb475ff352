package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/domain/lifecycle"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"
)

var (
	ErrPhaseNotInitialized = errors.New("phase not initialized")
	ErrStepUpdateConflict  = errors.New("step update conflict")
)

// stepLockTTL bounds how long a crashed caller can hold a phase lock.
const stepLockTTL = 15 * time.Second

// phaseCompleteActions maps each phase to the gate-table action that governs
// completing its steps.
var phaseCompleteActions = map[entities.Phase]lifecycle.Action{
	entities.PhaseSurvey:        lifecycle.ActionCompleteSurveyStep,
	entities.PhaseInstallation:  lifecycle.ActionCompleteInstallStep,
	entities.PhaseCommissioning: lifecycle.ActionCompleteCommissionStep,
	entities.PhaseLive:          lifecycle.ActionCompleteLiveStep,
}

// IWorkflowUseCase manages the per-phase step checklists.
//
// Completion is linearized per (customer, phase): a short lock plus a
// conditional in_progress update guarantee a step is completed exactly once
// even under concurrent calls.

type IWorkflowUseCase interface {
	InitializePhase(ctx context.Context, customerID string, phase entities.Phase) ([]entities.WorkflowStep, error)
	ListSteps(ctx context.Context, customerID string, phase entities.Phase) ([]entities.WorkflowStep, error)
	CompleteStep(ctx context.Context, customerID string, phase entities.Phase, stepID, actorID string, role entities.ActorRole) ([]entities.WorkflowStep, error)
}

type WorkflowUseCase struct {
	stepRepo     interfaces.IWorkflowStepRepository
	customerRepo interfaces.ICustomerRepository
	locker       interfaces.ILocker
	audit        interfaces.IAuditSink
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(stepRepo interfaces.IWorkflowStepRepository, customerRepo interfaces.ICustomerRepository, locker interfaces.ILocker, audit interfaces.IAuditSink) *WorkflowUseCase {
	return &WorkflowUseCase{stepRepo: stepRepo, customerRepo: customerRepo, locker: locker, audit: audit}
}

// InitializePhase seeds the phase checklist on first entry. When rows already
// exist the call is a no-op and returns them unchanged, so re-entering a phase
// (QC rework, retried requests) never resets progress.
func (u *WorkflowUseCase) InitializePhase(ctx context.Context, customerID string, phase entities.Phase) ([]entities.WorkflowStep, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	existing, err := u.stepRepo.ListByPhase(ctx, customerID, phase)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Printf("[workflow][usecase] phase already initialized customer_id=%s phase=%s steps=%d", customerID, phase, len(existing))
		return existing, nil
	}

	steps, err := lifecycle.SeedPhase(customerID, phase, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := u.stepRepo.SeedPhase(ctx, steps); err != nil {
		log.Printf("[workflow][usecase] seed failed customer_id=%s phase=%s err=%v", customerID, phase, err)
		return nil, err
	}
	log.Printf("[workflow][usecase] phase initialized customer_id=%s phase=%s steps=%d", customerID, phase, len(steps))
	return steps, nil
}

func (u *WorkflowUseCase) ListSteps(ctx context.Context, customerID string, phase entities.Phase) ([]entities.WorkflowStep, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	if _, err := lifecycle.PhaseTemplate(phase); err != nil {
		return nil, err
	}
	return u.stepRepo.ListByPhase(ctx, customerID, phase)
}

// CompleteStep completes the identified step, promotes its successor and, on
// the last step of a phase, applies the phase-completion status change to the
// customer.
func (u *WorkflowUseCase) CompleteStep(ctx context.Context, customerID string, phase entities.Phase, stepID, actorID string, role entities.ActorRole) ([]entities.WorkflowStep, error) {
	log.Printf("[workflow][usecase] complete step start customer_id=%q phase=%s step_id=%s role=%s", customerID, phase, stepID, role)
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return nil, lifecycle.ErrUnknownStep
	}
	action, ok := phaseCompleteActions[phase]
	if !ok {
		return nil, lifecycle.ErrUnknownPhase
	}

	c, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, ErrCustomerNotFound
	}
	if !lifecycle.CanPerform(lifecycle.Resolve(c), role, action) {
		log.Printf("[workflow][usecase] complete step denied customer_id=%s phase=%s status=%q role=%s", customerID, phase, lifecycle.Resolve(c), role)
		return nil, ErrActionNotAllowed
	}

	if u.locker != nil {
		lockKey := "steps:" + customerID + "#" + string(phase)
		acquired, err := u.locker.Acquire(ctx, lockKey, stepLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			log.Printf("[workflow][usecase] step completion in flight customer_id=%s phase=%s", customerID, phase)
			return nil, ErrStepUpdateConflict
		}
		defer func() {
			if err := u.locker.Release(ctx, lockKey); err != nil {
				log.Printf("[workflow][usecase] lock release failed customer_id=%s phase=%s err=%v", customerID, phase, err)
			}
		}()
	}

	steps, err := u.stepRepo.ListByPhase(ctx, customerID, phase)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ErrPhaseNotInitialized
	}

	// A completion that failed mid-sequence can leave the phase with no
	// in_progress row. Heal it under the lock so retries converge instead of
	// failing ErrNotInProgress forever.
	if cand, ok := lifecycle.RepairCandidate(steps); ok {
		promoted := cand
		promoted.Status = entities.StepStatusInProgress
		promoted.UpdatedAt = time.Now().UTC()
		applied, err := u.stepRepo.UpdateStatusIf(ctx, promoted, entities.StepStatusPending)
		if err != nil {
			return nil, err
		}
		if applied {
			log.Printf("[workflow][usecase] promoted orphaned step customer_id=%s phase=%s step_id=%s", customerID, phase, cand.StepID)
			for i := range steps {
				if steps[i].StepID == cand.StepID {
					steps[i] = promoted
				}
			}
		}
	}

	changed, phaseComplete, err := lifecycle.Advance(steps, stepID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotInProgress) && lifecycle.PhaseFinished(steps) && phaseCompletionPending(c, phase) {
			// The final completion committed earlier but its customer status
			// change was lost. Re-apply it and report the finished checklist.
			if err := u.applyPhaseCompletion(ctx, c, phase, actorID, role); err != nil {
				return nil, err
			}
			log.Printf("[workflow][usecase] replayed phase completion customer_id=%s phase=%s", customerID, phase)
			return steps, nil
		}
		log.Printf("[workflow][usecase] advance refused customer_id=%s phase=%s step_id=%s err=%v", customerID, phase, stepID, err)
		return nil, err
	}

	// First changed row is always the completed step; persist it conditionally
	// so a racing caller cannot complete it twice.
	applied, err := u.stepRepo.UpdateStatusIf(ctx, changed[0], entities.StepStatusInProgress)
	if err != nil {
		return nil, err
	}
	if !applied {
		log.Printf("[workflow][usecase] step already completed by concurrent caller customer_id=%s phase=%s step_id=%s", customerID, phase, stepID)
		return nil, lifecycle.ErrNotInProgress
	}
	for _, step := range changed[1:] {
		applied, err := u.stepRepo.UpdateStatusIf(ctx, step, entities.StepStatusPending)
		if err != nil {
			return nil, err
		}
		if !applied {
			log.Printf("[workflow][usecase] successor already promoted customer_id=%s phase=%s step_id=%s", customerID, phase, step.StepID)
		}
	}

	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: customerID,
		Entity:     "workflow_step",
		EntityID:   string(phase) + "#" + stepID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(entities.StepStatusInProgress),
		ToState:    string(entities.StepStatusCompleted),
	})

	if phaseComplete {
		if err := u.applyPhaseCompletion(ctx, c, phase, actorID, role); err != nil {
			return nil, err
		}
	}

	updated, err := u.stepRepo.ListByPhase(ctx, customerID, phase)
	if err != nil {
		return nil, err
	}
	log.Printf("[workflow][usecase] step completed customer_id=%s phase=%s step_id=%s phase_complete=%t", customerID, phase, stepID, phaseComplete)
	return updated, nil
}

// applyPhaseCompletion maps a finished checklist onto the customer's
// sub-statuses: SURVEY marks the survey done and opens quotation drafting,
// INSTALLATION hands over to QC, COMMISSIONING takes the system live.
func (u *WorkflowUseCase) applyPhaseCompletion(ctx context.Context, c entities.Customer, phase entities.Phase, actorID string, role entities.ActorRole) error {
	var patch interfaces.CustomerStatusPatch
	var from, to string

	switch phase {
	case entities.PhaseSurvey:
		survey := entities.SurveyStatusCompleted
		install := entities.InstallationStatusQuotationReady
		patch = interfaces.CustomerStatusPatch{SurveyStatus: &survey, InstallationStatus: &install}
		from, to = string(c.SurveyStatus), string(survey)
	case entities.PhaseInstallation:
		install := entities.InstallationStatusCompleted
		patch = interfaces.CustomerStatusPatch{InstallationStatus: &install}
		from, to = string(c.InstallationStatus), string(install)
	case entities.PhaseCommissioning:
		install := entities.InstallationStatusLive
		patch = interfaces.CustomerStatusPatch{InstallationStatus: &install}
		from, to = string(c.InstallationStatus), string(install)
	default:
		return nil
	}

	if _, err := u.customerRepo.ApplyStatusPatch(ctx, c.ID, patch); err != nil {
		log.Printf("[workflow][usecase] phase completion patch failed customer_id=%s phase=%s err=%v", c.ID, phase, err)
		return err
	}

	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: c.ID,
		Entity:     "customer",
		EntityID:   c.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  from,
		ToState:    to,
		Note:       "phase " + string(phase) + " completed",
	})

	// Going live opens the handover checklist.
	if phase == entities.PhaseCommissioning {
		if _, err := u.InitializePhase(ctx, c.ID, entities.PhaseLive); err != nil {
			return err
		}
	}
	log.Printf("[workflow][usecase] phase completed customer_id=%s phase=%s to=%s", c.ID, phase, to)
	return nil
}

// phaseCompletionPending reports whether a finished checklist never landed its
// status change on the customer: the sub-status still sits at the value the
// phase runs under.
func phaseCompletionPending(c entities.Customer, phase entities.Phase) bool {
	switch phase {
	case entities.PhaseSurvey:
		return c.SurveyStatus == entities.SurveyStatusAssigned
	case entities.PhaseInstallation:
		return c.InstallationStatus == entities.InstallationStatusStarted
	case entities.PhaseCommissioning:
		return c.InstallationStatus == entities.InstallationStatusCommissioning
	}
	return false
}
