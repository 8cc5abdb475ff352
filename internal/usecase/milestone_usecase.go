package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/domain/lifecycle"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidMilestoneID = errors.New("invalid milestone id")
	ErrInvalidPayload     = errors.New("invalid payment payload")
	ErrPaymentInFlight    = errors.New("payment already in flight")
	ErrPaymentNotFound    = errors.New("payment not found")
)

// paymentLockTTL bounds how long a crashed caller can hold a milestone lock.
const paymentLockTTL = 30 * time.Second

// IMilestoneUseCase computes the derived payment plan and records milestone
// payments.
//
// Idempotency model, three layers deep:
//   - a per-(customer, milestone) lock serializes concurrent callers
//   - the ledger key is deterministic, so a conditional put turns a retry
//     into ErrDuplicatePayment instead of a second charge
//   - recomputation marks a milestone PAID from the ledger alone, so a paid
//     milestone can never regress

type IMilestoneUseCase interface {
	ComputeMilestones(ctx context.Context, customerID string) ([]entities.PaymentMilestone, error)
	RecordPayment(ctx context.Context, customerID string, milestoneID entities.MilestoneID, amount int64, payload json.RawMessage, actorID string, role entities.ActorRole) (entities.Payment, error)
	ListPayments(ctx context.Context, customerID string) ([]entities.Payment, error)
}

type MilestoneUseCase struct {
	paymentRepo   interfaces.IPaymentRepository
	quotationRepo interfaces.IQuotationRepository
	customerRepo  interfaces.ICustomerRepository
	gateway       interfaces.IPaymentGateway
	locker        interfaces.ILocker
	audit         interfaces.IAuditSink
	cfg           lifecycle.MilestoneConfig
}

var _ IMilestoneUseCase = (*MilestoneUseCase)(nil)

func NewMilestoneUseCase(
	paymentRepo interfaces.IPaymentRepository,
	quotationRepo interfaces.IQuotationRepository,
	customerRepo interfaces.ICustomerRepository,
	gateway interfaces.IPaymentGateway,
	locker interfaces.ILocker,
	audit interfaces.IAuditSink,
	cfg lifecycle.MilestoneConfig,
) *MilestoneUseCase {
	return &MilestoneUseCase{
		paymentRepo:   paymentRepo,
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		gateway:       gateway,
		locker:        locker,
		audit:         audit,
		cfg:           cfg,
	}
}

func (u *MilestoneUseCase) ComputeMilestones(ctx context.Context, customerID string) ([]entities.PaymentMilestone, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	c, q, payments, err := u.loadPlanInputs(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return lifecycle.ComputeMilestones(u.cfg, q, c.SurveyStatus, c.InstallationStatus, payments), nil
}

func (u *MilestoneUseCase) RecordPayment(ctx context.Context, customerID string, milestoneID entities.MilestoneID, amount int64, payload json.RawMessage, actorID string, role entities.ActorRole) (entities.Payment, error) {
	log.Printf("[milestone][usecase] record payment start customer_id=%q milestone_id=%s amount=%d", customerID, milestoneID, amount)
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Payment{}, ErrInvalidCustomerID
	}
	if !validMilestoneID(milestoneID) {
		return entities.Payment{}, ErrInvalidMilestoneID
	}
	if len(payload) > 0 && !json.Valid(payload) {
		return entities.Payment{}, ErrInvalidPayload
	}

	paymentID := entities.PaymentID(customerID, milestoneID)
	if u.locker != nil {
		acquired, err := u.locker.Acquire(ctx, "payment:"+paymentID, paymentLockTTL)
		if err != nil {
			log.Printf("[milestone][usecase] lock acquire failed payment_id=%s err=%v", paymentID, err)
			return entities.Payment{}, err
		}
		if !acquired {
			log.Printf("[milestone][usecase] payment in flight payment_id=%s", paymentID)
			return entities.Payment{}, ErrPaymentInFlight
		}
		defer func() {
			if err := u.locker.Release(ctx, "payment:"+paymentID); err != nil {
				log.Printf("[milestone][usecase] lock release failed payment_id=%s err=%v", paymentID, err)
			}
		}()
	}

	c, q, payments, err := u.loadPlanInputs(ctx, customerID)
	if err != nil {
		return entities.Payment{}, err
	}

	milestones := lifecycle.ComputeMilestones(u.cfg, q, c.SurveyStatus, c.InstallationStatus, payments)
	m, ok := lifecycle.FindMilestone(milestones, milestoneID)
	if !ok {
		return entities.Payment{}, ErrInvalidMilestoneID
	}
	switch m.Status {
	case entities.MilestoneStatusPaid:
		log.Printf("[milestone][usecase] duplicate payment customer_id=%s milestone_id=%s", customerID, milestoneID)
		return entities.Payment{}, lifecycle.ErrDuplicatePayment
	case entities.MilestoneStatusLocked:
		log.Printf("[milestone][usecase] milestone not due customer_id=%s milestone_id=%s", customerID, milestoneID)
		return entities.Payment{}, lifecycle.ErrMilestoneNotDue
	}
	if amount != m.Amount {
		log.Printf("[milestone][usecase] amount mismatch customer_id=%s milestone_id=%s got=%d want=%d", customerID, milestoneID, amount, m.Amount)
		return entities.Payment{}, lifecycle.ErrAmountMismatch
	}

	providerPaymentID, providerStatus, providerResp, err := u.charge(ctx, paymentID, amount, payload)
	if err != nil {
		log.Printf("[milestone][usecase] gateway charge failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, err
	}

	p := entities.Payment{
		ID:                 paymentID,
		CustomerID:         customerID,
		QuotationID:        q.ID,
		MilestoneID:        milestoneID,
		Amount:             amount,
		PaidAt:             time.Now().UTC(),
		ProviderPaymentID:  providerPaymentID,
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
	}

	created, err := u.paymentRepo.Append(ctx, p)
	if err != nil {
		log.Printf("[milestone][usecase] ledger append failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, err
	}

	// The first milestone funds the project: its payment flips the customer
	// from quotation-ready to installation-ready.
	if milestoneID == entities.MilestoneM1 && c.InstallationStatus == entities.InstallationStatusQuotationReady {
		next := entities.InstallationStatusReady
		if _, err := u.customerRepo.ApplyStatusPatch(ctx, customerID, interfaces.CustomerStatusPatch{InstallationStatus: &next}); err != nil {
			log.Printf("[milestone][usecase] installation-ready patch failed customer_id=%s err=%v", customerID, err)
			return entities.Payment{}, err
		}
		emitAudit(ctx, u.audit, entities.AuditEvent{
			CustomerID: customerID,
			Entity:     "customer",
			EntityID:   customerID,
			ActorID:    actorID,
			ActorRole:  role,
			FromState:  string(entities.InstallationStatusQuotationReady),
			ToState:    string(entities.InstallationStatusReady),
		})
	}

	emitAudit(ctx, u.audit, entities.AuditEvent{
		CustomerID: customerID,
		Entity:     "payment",
		EntityID:   created.ID,
		ActorID:    actorID,
		ActorRole:  role,
		FromState:  string(entities.MilestoneStatusDue),
		ToState:    string(entities.MilestoneStatusPaid),
		Note:       string(milestoneID),
	})
	log.Printf("[milestone][usecase] payment recorded payment_id=%s amount=%d provider_status=%s", created.ID, amount, providerStatus)
	return created, nil
}

func (u *MilestoneUseCase) ListPayments(ctx context.Context, customerID string) ([]entities.Payment, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.paymentRepo.ListByCustomerID(ctx, customerID)
}

// loadPlanInputs fetches the three inputs of the milestone computation. The
// latest quotation is required: without one there is no total to split.
func (u *MilestoneUseCase) loadPlanInputs(ctx context.Context, customerID string) (entities.Customer, entities.Quotation, []entities.Payment, error) {
	c, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, entities.Quotation{}, nil, err
	}
	if c.ID == "" {
		return entities.Customer{}, entities.Quotation{}, nil, ErrCustomerNotFound
	}

	q, err := u.quotationRepo.GetLatestByCustomerID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, entities.Quotation{}, nil, err
	}
	if q.ID == "" {
		return entities.Customer{}, entities.Quotation{}, nil, ErrQuotationNotFound
	}

	payments, err := u.paymentRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, entities.Quotation{}, nil, err
	}
	return c, q, payments, nil
}

// charge runs the payment through the external gateway, or synthesizes an
// approved response in mock mode so local flows work without credentials.
func (u *MilestoneUseCase) charge(ctx context.Context, paymentID string, amount int64, payload json.RawMessage) (string, string, json.RawMessage, error) {
	if isPaymentGatewayMockEnabled() || u.gateway == nil {
		log.Printf("[milestone][usecase] mock mode enabled; skipping external payment gateway payment_id=%s", paymentID)
		now := time.Now().UTC()
		providerPaymentID := strconv.FormatInt(now.UnixNano(), 10)
		mockResp := map[string]any{}
		if len(payload) > 0 && json.Valid(payload) {
			_ = json.Unmarshal(payload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now.Format(time.RFC3339Nano)
		mockResp["date_approved"] = now.Format(time.RFC3339Nano)
		mockResp["external_reference"] = paymentID
		mockResp["transaction_amount"] = amount
		b, err := json.Marshal(mockResp)
		if err != nil {
			return "", "", nil, err
		}
		return providerPaymentID, "approved", b, nil
	}

	// Link the charge back to the ledger row; the server-computed amount is
	// the source of truth regardless of what the caller sent.
	reqMap := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &reqMap); err != nil {
			return "", "", nil, ErrInvalidPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = paymentID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Milestone payment %s", paymentID)
	}
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return "", "", nil, err
	}
	return u.gateway.CreatePayment(ctx, enriched)
}

func validMilestoneID(id entities.MilestoneID) bool {
	for _, known := range entities.MilestoneIDs {
		if id == known {
			return true
		}
	}
	return false
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
