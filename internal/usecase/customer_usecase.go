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

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrInvalidCustomerID      = errors.New("invalid customer id")
	ErrInvalidCustomerInput   = errors.New("invalid customer input")
	ErrInvalidSurveyorID      = errors.New("invalid surveyor id")
	ErrFinalMilestonePending  = errors.New("final milestone not paid")
	ErrTeamServiceUnavailable = errors.New("team assignment service unavailable")
)

// CustomerStatusView is the aggregated read model for a customer: the
// canonical status, the actions the caller's role may invoke right now and
// the derived payment plan.
type CustomerStatusView struct {
	Customer   entities.Customer           `json:"customer"`
	Status     lifecycle.CanonicalStatus   `json:"status"`
	Actions    []lifecycle.Action          `json:"actions"`
	Milestones []entities.PaymentMilestone `json:"milestones,omitempty"`
}

// ICustomerUseCase drives the customer through the installation lifecycle:
// onboarding, survey, installation scheduling, QC and commissioning. Quotation
// and payment specifics live in their own usecases; this one owns the
// customer's sub-status transitions.

type ICustomerUseCase interface {
	Onboard(ctx context.Context, name, phone, email, address, region string) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, region string) ([]entities.Customer, error)
	Status(ctx context.Context, customerID string, role entities.ActorRole) (CustomerStatusView, error)

	AssignSurvey(ctx context.Context, customerID, surveyorID, actorID string, role entities.ActorRole) (entities.Customer, error)
	ApproveSurvey(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)
	RejectSurvey(ctx context.Context, customerID, reason, actorID string, role entities.ActorRole) (entities.Customer, error)

	ScheduleInstallation(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)
	StartInstallation(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)
	StartQC(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)
	ApproveQC(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)
	RejectQC(ctx context.Context, customerID, reason, actorID string, role entities.ActorRole) (entities.Customer, error)
	ReworkQC(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)
	StartCommissioning(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo          interfaces.ICustomerRepository
	quotationRepo interfaces.IQuotationRepository
	paymentRepo   interfaces.IPaymentRepository
	teamService   interfaces.ITeamAssignmentService
	workflow      IWorkflowUseCase
	audit         interfaces.IAuditSink
	cfg           lifecycle.MilestoneConfig
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(
	repo interfaces.ICustomerRepository,
	quotationRepo interfaces.IQuotationRepository,
	paymentRepo interfaces.IPaymentRepository,
	teamService interfaces.ITeamAssignmentService,
	workflow IWorkflowUseCase,
	audit interfaces.IAuditSink,
	cfg lifecycle.MilestoneConfig,
) *CustomerUseCase {
	return &CustomerUseCase{
		repo:          repo,
		quotationRepo: quotationRepo,
		paymentRepo:   paymentRepo,
		teamService:   teamService,
		workflow:      workflow,
		audit:         audit,
		cfg:           cfg,
	}
}

func (u *CustomerUseCase) Onboard(ctx context.Context, name, phone, email, address, region string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:                 uuid.NewString(),
		Name:               name,
		Phone:              phone,
		Email:              strings.TrimSpace(email),
		Address:            strings.TrimSpace(address),
		Region:             strings.TrimSpace(region),
		SurveyStatus:       entities.SurveyStatusPending,
		InstallationStatus: entities.InstallationStatusOnboarded,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[customer][usecase] onboard failed name=%q err=%v", name, err)
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] onboarded customer_id=%s region=%s", created.ID, created.Region)
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, region string) ([]entities.Customer, error) {
	return u.repo.List(ctx, strings.TrimSpace(region))
}

// Status resolves the canonical status, the role's permitted actions and the
// payment plan in one read model. Milestones are omitted while no quotation
// exists; that is a normal early-lifecycle state, not an error.
func (u *CustomerUseCase) Status(ctx context.Context, customerID string, role entities.ActorRole) (CustomerStatusView, error) {
	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return CustomerStatusView{}, err
	}

	q, err := u.quotationRepo.GetLatestByCustomerID(ctx, c.ID)
	if err != nil {
		return CustomerStatusView{}, err
	}

	// The quotation store, not the mirror on the customer row, is the source
	// of truth for the latest status; a transition that failed after commit
	// can leave the mirror one state behind. Serve the real status and heal
	// the row.
	if q.ID != "" && c.LatestQuotationID == q.ID && c.LatestQuotationStatus != q.Status {
		log.Printf("[customer][usecase] stale quotation mirror customer_id=%s mirror=%s actual=%s", c.ID, c.LatestQuotationStatus, q.Status)
		c.LatestQuotationStatus = q.Status
		if _, err := u.repo.ApplyStatusPatch(ctx, c.ID, interfaces.CustomerStatusPatch{
			LatestQuotationID:     &q.ID,
			LatestQuotationStatus: &q.Status,
		}); err != nil {
			log.Printf("[customer][usecase] quotation mirror heal failed customer_id=%s err=%v", c.ID, err)
		}
	}

	view := CustomerStatusView{
		Customer: c,
		Status:   lifecycle.Resolve(c),
	}
	view.Actions = lifecycle.PermittedActions(view.Status, role)

	if q.ID != "" {
		payments, err := u.paymentRepo.ListByCustomerID(ctx, c.ID)
		if err != nil {
			return CustomerStatusView{}, err
		}
		view.Milestones = lifecycle.ComputeMilestones(u.cfg, q, c.SurveyStatus, c.InstallationStatus, payments)
	}
	return view, nil
}

func (u *CustomerUseCase) AssignSurvey(ctx context.Context, customerID, surveyorID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	surveyorID = strings.TrimSpace(surveyorID)
	if surveyorID == "" {
		return entities.Customer{}, ErrInvalidSurveyorID
	}

	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.SurveyStatus != entities.SurveyStatusPending {
		return entities.Customer{}, lifecycle.ErrInvalidTransition
	}
	if !lifecycle.CanPerform(lifecycle.Resolve(c), role, lifecycle.ActionAssignSurvey) {
		return entities.Customer{}, ErrActionNotAllowed
	}

	assigned := entities.SurveyStatusAssigned
	updated, err := u.repo.ApplyStatusPatch(ctx, c.ID, interfaces.CustomerStatusPatch{
		SurveyStatus:       &assigned,
		AssignedSurveyorID: &surveyorID,
	})
	if err != nil {
		return entities.Customer{}, err
	}

	if _, err := u.workflow.InitializePhase(ctx, c.ID, entities.PhaseSurvey); err != nil {
		return entities.Customer{}, err
	}

	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: c.ID,
		Entity:     "customer",
		EntityID:   c.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(c.SurveyStatus),
		ToState:    string(assigned),
		Note:       "surveyor " + surveyorID,
	})
	log.Printf("[customer][usecase] survey assigned customer_id=%s surveyor_id=%s", c.ID, surveyorID)
	return updated, nil
}

func (u *CustomerUseCase) ApproveSurvey(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.SurveyStatus != entities.SurveyStatusCompleted {
		return entities.Customer{}, lifecycle.ErrInvalidTransition
	}
	if !lifecycle.CanPerform(lifecycle.Resolve(c), role, lifecycle.ActionApproveSurvey) {
		return entities.Customer{}, ErrActionNotAllowed
	}

	approved := entities.SurveyStatusApproved
	updated, err := u.repo.ApplyStatusPatch(ctx, c.ID, interfaces.CustomerStatusPatch{SurveyStatus: &approved})
	if err != nil {
		return entities.Customer{}, err
	}
	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: c.ID,
		Entity:     "customer",
		EntityID:   c.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(c.SurveyStatus),
		ToState:    string(approved),
	})
	log.Printf("[customer][usecase] survey approved customer_id=%s", c.ID)
	return updated, nil
}

func (u *CustomerUseCase) RejectSurvey(ctx context.Context, customerID, reason, actorID string, role entities.ActorRole) (entities.Customer, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Customer{}, lifecycle.ErrReasonRequired
	}

	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.SurveyStatus != entities.SurveyStatusCompleted {
		return entities.Customer{}, lifecycle.ErrInvalidTransition
	}
	if !lifecycle.CanPerform(lifecycle.Resolve(c), role, lifecycle.ActionRejectSurvey) {
		return entities.Customer{}, ErrActionNotAllowed
	}

	// A rejected survey also withdraws quotation readiness, so the resolver
	// reports the rejection instead of "Survey Completed".
	rejected := entities.SurveyStatusRejected
	onboarded := entities.InstallationStatusOnboarded
	updated, err := u.repo.ApplyStatusPatch(ctx, c.ID, interfaces.CustomerStatusPatch{
		SurveyStatus:       &rejected,
		InstallationStatus: &onboarded,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: c.ID,
		Entity:     "customer",
		EntityID:   c.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(c.SurveyStatus),
		ToState:    string(rejected),
		Note:       reason,
	})
	log.Printf("[customer][usecase] survey rejected customer_id=%s", c.ID)
	return updated, nil
}

func (u *CustomerUseCase) ScheduleInstallation(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.InstallationStatus != entities.InstallationStatusReady {
		return entities.Customer{}, lifecycle.ErrInvalidTransition
	}
	if !lifecycle.CanPerform(lifecycle.Resolve(c), role, lifecycle.ActionAssignInstallTeam) {
		return entities.Customer{}, ErrActionNotAllowed
	}
	if u.teamService == nil {
		return entities.Customer{}, ErrTeamServiceUnavailable
	}

	teamID, err := u.teamService.AssignTeam(ctx, c.ID, c.Region)
	if err != nil {
		log.Printf("[customer][usecase] team assignment failed customer_id=%s err=%v", c.ID, err)
		return entities.Customer{}, err
	}

	scheduled := entities.InstallationStatusScheduled
	updated, err := u.repo.ApplyStatusPatch(ctx, c.ID, interfaces.CustomerStatusPatch{
		InstallationStatus: &scheduled,
		AssignedTeamID:     &teamID,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: c.ID,
		Entity:     "customer",
		EntityID:   c.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(c.InstallationStatus),
		ToState:    string(scheduled),
		Note:       "team " + teamID,
	})
	log.Printf("[customer][usecase] installation scheduled customer_id=%s team_id=%s", c.ID, teamID)
	return updated, nil
}

func (u *CustomerUseCase) StartInstallation(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	updated, err := u.moveInstallation(ctx, customerID, lifecycle.ActionStartInstallation,
		entities.InstallationStatusScheduled, entities.InstallationStatusStarted, "", actorID, role)
	if err != nil {
		return entities.Customer{}, err
	}
	if _, err := u.workflow.InitializePhase(ctx, updated.ID, entities.PhaseInstallation); err != nil {
		return entities.Customer{}, err
	}
	return updated, nil
}

func (u *CustomerUseCase) StartQC(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	return u.moveInstallation(ctx, customerID, lifecycle.ActionStartQC,
		entities.InstallationStatusCompleted, entities.InstallationStatusQCPending, "", actorID, role)
}

func (u *CustomerUseCase) ApproveQC(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	return u.moveInstallation(ctx, customerID, lifecycle.ActionApproveQC,
		entities.InstallationStatusQCPending, entities.InstallationStatusQCApproved, "", actorID, role)
}

func (u *CustomerUseCase) RejectQC(ctx context.Context, customerID, reason, actorID string, role entities.ActorRole) (entities.Customer, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Customer{}, lifecycle.ErrReasonRequired
	}
	return u.moveInstallation(ctx, customerID, lifecycle.ActionRejectQC,
		entities.InstallationStatusQCPending, entities.InstallationStatusQCRejected, reason, actorID, role)
}

func (u *CustomerUseCase) ReworkQC(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	return u.moveInstallation(ctx, customerID, lifecycle.ActionReworkQC,
		entities.InstallationStatusQCRejected, entities.InstallationStatusQCPending, "", actorID, role)
}

// StartCommissioning requires QC sign-off and the final milestone paid: the
// grid work only starts on a fully funded project.
func (u *CustomerUseCase) StartCommissioning(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error) {
	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.InstallationStatus != entities.InstallationStatusQCApproved {
		return entities.Customer{}, lifecycle.ErrInvalidTransition
	}
	if !lifecycle.CanPerform(lifecycle.Resolve(c), role, lifecycle.ActionStartCommissioning) {
		return entities.Customer{}, ErrActionNotAllowed
	}

	q, err := u.quotationRepo.GetLatestByCustomerID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	if q.ID == "" {
		return entities.Customer{}, ErrQuotationNotFound
	}
	payments, err := u.paymentRepo.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	milestones := lifecycle.ComputeMilestones(u.cfg, q, c.SurveyStatus, c.InstallationStatus, payments)
	final, ok := lifecycle.FindMilestone(milestones, entities.MilestoneM4)
	if !ok || final.Status != entities.MilestoneStatusPaid {
		log.Printf("[customer][usecase] commissioning blocked, final milestone unpaid customer_id=%s", c.ID)
		return entities.Customer{}, ErrFinalMilestonePending
	}

	commissioning := entities.InstallationStatusCommissioning
	updated, err := u.repo.ApplyStatusPatch(ctx, c.ID, interfaces.CustomerStatusPatch{InstallationStatus: &commissioning})
	if err != nil {
		return entities.Customer{}, err
	}
	if _, err := u.workflow.InitializePhase(ctx, c.ID, entities.PhaseCommissioning); err != nil {
		return entities.Customer{}, err
	}
	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: c.ID,
		Entity:     "customer",
		EntityID:   c.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(c.InstallationStatus),
		ToState:    string(commissioning),
	})
	log.Printf("[customer][usecase] commissioning started customer_id=%s", c.ID)
	return updated, nil
}

// moveInstallation applies a single guarded installation-status transition:
// the customer must currently sit at from, and the gate table must allow the
// action for the caller's role at the resolved status.
func (u *CustomerUseCase) moveInstallation(ctx context.Context, customerID string, action lifecycle.Action, from, to entities.InstallationStatus, note, actorID string, role entities.ActorRole) (entities.Customer, error) {
	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.InstallationStatus != from {
		return entities.Customer{}, lifecycle.ErrInvalidTransition
	}
	if !lifecycle.CanPerform(lifecycle.Resolve(c), role, action) {
		log.Printf("[customer][usecase] %s denied customer_id=%s status=%q role=%s", action, c.ID, lifecycle.Resolve(c), role)
		return entities.Customer{}, ErrActionNotAllowed
	}

	updated, err := u.repo.ApplyStatusPatch(ctx, c.ID, interfaces.CustomerStatusPatch{InstallationStatus: &to})
	if err != nil {
		return entities.Customer{}, err
	}
	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: c.ID,
		Entity:     "customer",
		EntityID:   c.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(from),
		ToState:    string(to),
		Note:       note,
	})
	log.Printf("[customer][usecase] installation status moved customer_id=%s from=%s to=%s", c.ID, from, to)
	return updated, nil
}
