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
	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrInvalidQuotationID    = errors.New("invalid quotation id")
	ErrInvalidQuotationTotal = errors.New("invalid quotation total")
	ErrQuotationStillActive  = errors.New("customer already has an active quotation")
	ErrActionNotAllowed      = errors.New("action not allowed for role")
)

// IQuotationUseCase drives a quotation through the four-stage approval chain.
//
// Concurrency model:
//   - every status change goes through a conditional update keyed on the
//     current status, so two racing approvals can never both win
//   - the loser of a race is re-read and classified as ErrAlreadyFinalized
//     (terminal) or ErrInvalidTransition (moved elsewhere)

type IQuotationUseCase interface {
	CreateDraft(ctx context.Context, customerID string, total int64, actorID string, role entities.ActorRole) (entities.Quotation, error)
	Submit(ctx context.Context, quotationID, actorID string, role entities.ActorRole) (entities.Quotation, error)
	Approve(ctx context.Context, quotationID, actorID string, role entities.ActorRole) (entities.Quotation, error)
	Reject(ctx context.Context, quotationID, reason, actorID string, role entities.ActorRole) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetLatestByCustomerID(ctx context.Context, customerID string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo         interfaces.IQuotationRepository
	customerRepo interfaces.ICustomerRepository
	audit        interfaces.IAuditSink
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, customerRepo interfaces.ICustomerRepository, audit interfaces.IAuditSink) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, customerRepo: customerRepo, audit: audit}
}

func (u *QuotationUseCase) CreateDraft(ctx context.Context, customerID string, total int64, actorID string, role entities.ActorRole) (entities.Quotation, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Quotation{}, ErrInvalidCustomerID
	}
	if total <= 0 {
		return entities.Quotation{}, ErrInvalidQuotationTotal
	}

	c, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if c.ID == "" {
		return entities.Quotation{}, ErrCustomerNotFound
	}

	status := lifecycle.Resolve(c)
	if !lifecycle.CanPerform(status, role, lifecycle.ActionCreateQuotation) {
		log.Printf("[quotation][usecase] create draft denied customer_id=%s status=%q role=%s", customerID, status, role)
		return entities.Quotation{}, ErrActionNotAllowed
	}
	// A rejected latest quotation may be superseded; an in-flight one may not.
	if c.LatestQuotationStatus != "" && c.LatestQuotationStatus != entities.QuotationStatusRejected {
		return entities.Quotation{}, ErrQuotationStillActive
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Total:      total,
		Status:     entities.QuotationStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quotation][usecase] create failed customer_id=%s err=%v", customerID, err)
		return entities.Quotation{}, err
	}

	if err := u.mirrorToCustomer(ctx, created); err != nil {
		log.Printf("[quotation][usecase] customer mirror failed customer_id=%s quotation_id=%s err=%v", customerID, created.ID, err)
		return entities.Quotation{}, err
	}

	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: customerID,
		Entity:     "quotation",
		EntityID:   created.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  "",
		ToState:    string(created.Status),
	})
	log.Printf("[quotation][usecase] draft created customer_id=%s quotation_id=%s total=%d", customerID, created.ID, total)
	return created, nil
}

func (u *QuotationUseCase) Submit(ctx context.Context, quotationID, actorID string, role entities.ActorRole) (entities.Quotation, error) {
	return u.transition(ctx, quotationID, actorID, role, "", func(current entities.QuotationStatus) (entities.QuotationStatus, error) {
		return lifecycle.Submit(current)
	})
}

func (u *QuotationUseCase) Approve(ctx context.Context, quotationID, actorID string, role entities.ActorRole) (entities.Quotation, error) {
	return u.transition(ctx, quotationID, actorID, role, "", func(current entities.QuotationStatus) (entities.QuotationStatus, error) {
		return lifecycle.Approve(current, role)
	})
}

func (u *QuotationUseCase) Reject(ctx context.Context, quotationID, reason, actorID string, role entities.ActorRole) (entities.Quotation, error) {
	reason = strings.TrimSpace(reason)
	return u.transition(ctx, quotationID, actorID, role, reason, func(current entities.QuotationStatus) (entities.QuotationStatus, error) {
		return lifecycle.Reject(current, reason)
	})
}

// transition loads the quotation, resolves the next status via the approval
// chain and commits it with a conditional update. resolve is pure; storage is
// the arbiter when two callers race.
func (u *QuotationUseCase) transition(ctx context.Context, quotationID, actorID string, role entities.ActorRole, reason string, resolve func(entities.QuotationStatus) (entities.QuotationStatus, error)) (entities.Quotation, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	next, err := resolve(q.Status)
	if err != nil {
		// An earlier transition may have committed and then failed before
		// mirroring, which is why this retry finds the quotation already
		// moved. Heal the customer row before refusing.
		if errors.Is(err, lifecycle.ErrInvalidTransition) || errors.Is(err, lifecycle.ErrAlreadyFinalized) {
			u.reconcileMirror(ctx, q)
		}
		log.Printf("[quotation][usecase] transition refused quotation_id=%s status=%s role=%s err=%v", quotationID, q.Status, role, err)
		return entities.Quotation{}, err
	}

	updated, err := u.repo.UpdateStatusIf(ctx, quotationID, q.Status, next, reason)
	if err != nil {
		log.Printf("[quotation][usecase] conditional update failed quotation_id=%s from=%s to=%s err=%v", quotationID, q.Status, next, err)
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		// Lost the race: somebody moved the quotation first. Re-read to tell
		// "already terminal" apart from "moved to another live status", and
		// heal the mirror in case the winner failed before writing it.
		cur, rerr := u.repo.GetByID(ctx, quotationID)
		if rerr != nil {
			return entities.Quotation{}, rerr
		}
		u.reconcileMirror(ctx, cur)
		if cur.Status.IsTerminal() {
			return entities.Quotation{}, lifecycle.ErrAlreadyFinalized
		}
		return entities.Quotation{}, lifecycle.ErrInvalidTransition
	}

	if err := u.mirrorToCustomer(ctx, updated); err != nil {
		log.Printf("[quotation][usecase] customer mirror failed customer_id=%s quotation_id=%s err=%v", updated.CustomerID, updated.ID, err)
		return entities.Quotation{}, err
	}

	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: updated.CustomerID,
		Entity:     "quotation",
		EntityID:   updated.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(q.Status),
		ToState:    string(updated.Status),
		Note:       reason,
	})
	log.Printf("[quotation][usecase] transition applied quotation_id=%s from=%s to=%s role=%s", quotationID, q.Status, updated.Status, role)
	return updated, nil
}

// reconcileMirror re-applies the latest-quotation linkage when the customer
// row lags the quotation, which happens when an earlier transition committed
// and then failed before mirroring. Best effort: reconcile failures are
// logged, not propagated, since the caller is already on an error path.
func (u *QuotationUseCase) reconcileMirror(ctx context.Context, q entities.Quotation) {
	c, err := u.customerRepo.GetByID(ctx, q.CustomerID)
	if err != nil || c.ID == "" {
		return
	}
	// Never overwrite the linkage of a newer quotation.
	if c.LatestQuotationID != q.ID || c.LatestQuotationStatus == q.Status {
		return
	}
	if err := u.mirrorToCustomer(ctx, q); err != nil {
		log.Printf("[quotation][usecase] mirror reconcile failed customer_id=%s quotation_id=%s err=%v", q.CustomerID, q.ID, err)
		return
	}
	log.Printf("[quotation][usecase] mirror reconciled customer_id=%s quotation_id=%s status=%s", q.CustomerID, q.ID, q.Status)
}

// mirrorToCustomer keeps the latest-quotation linkage on the customer row in
// step with the quotation, so the status resolver works from a single read.
func (u *QuotationUseCase) mirrorToCustomer(ctx context.Context, q entities.Quotation) error {
	patch := interfaces.CustomerStatusPatch{
		LatestQuotationID:     &q.ID,
		LatestQuotationStatus: &q.Status,
	}
	_, err := u.customerRepo.ApplyStatusPatch(ctx, q.CustomerID, patch)
	return err
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) GetLatestByCustomerID(ctx context.Context, customerID string) (entities.Quotation, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Quotation{}, ErrInvalidCustomerID
	}
	q, err := u.repo.GetLatestByCustomerID(ctx, customerID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
