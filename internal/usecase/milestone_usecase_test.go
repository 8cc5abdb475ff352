package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/domain/lifecycle"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"
	mock_interfaces "github.com/Rehan72/sol-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func planCustomer(install entities.InstallationStatus) entities.Customer {
	return entities.Customer{
		ID:                 "cust-1",
		SurveyStatus:       entities.SurveyStatusCompleted,
		InstallationStatus: install,
	}
}

func planQuotation(total int64) entities.Quotation {
	return entities.Quotation{
		ID:         "q-1",
		CustomerID: "cust-1",
		Total:      total,
		Status:     entities.QuotationStatusFinalApproved,
		CreatedAt:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func paidLedger(ids ...entities.MilestoneID) []entities.Payment {
	var out []entities.Payment
	for _, id := range ids {
		out = append(out, entities.Payment{
			ID:          entities.PaymentID("cust-1", id),
			CustomerID:  "cust-1",
			MilestoneID: id,
		})
	}
	return out
}

func newMilestoneUC(t *testing.T, ctrl *gomock.Controller) (*MilestoneUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIQuotationRepository, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockILocker, *mock_interfaces.MockIAuditSink) {
	t.Helper()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	locker := mock_interfaces.NewMockILocker(ctrl)
	audit := mock_interfaces.NewMockIAuditSink(ctrl)
	uc := NewMilestoneUseCase(payments, quotations, customers, gateway, locker, audit, lifecycle.DefaultMilestoneConfig())
	return uc, payments, quotations, customers, gateway, locker, audit
}

func TestMilestoneUseCase_ComputeMilestones(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewMilestoneUseCase(nil, nil, nil, nil, nil, nil, lifecycle.DefaultMilestoneConfig())
		_, err := uc.ComputeMilestones(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("no quotation yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quotations, customers, _, _, _ := newMilestoneUC(t, ctrl)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusQuotationReady), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(entities.Quotation{}, nil)

		_, err := uc.ComputeMilestones(context.Background(), "cust-1")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("standard split with M1 due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, quotations, customers, _, _, _ := newMilestoneUC(t, ctrl)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusQuotationReady), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(planQuotation(300000), nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(nil, nil)

		ms, err := uc.ComputeMilestones(context.Background(), "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantAmounts := []int64{75000, 120000, 75000, 30000}
		for i, m := range ms {
			if m.Amount != wantAmounts[i] {
				t.Fatalf("milestone %s amount = %d, want %d", m.ID, m.Amount, wantAmounts[i])
			}
		}
		if ms[0].Status != entities.MilestoneStatusDue {
			t.Fatalf("expected M1 DUE, got %s", ms[0].Status)
		}
		for _, m := range ms[1:] {
			if m.Status != entities.MilestoneStatusLocked {
				t.Fatalf("expected %s LOCKED, got %s", m.ID, m.Status)
			}
		}
	})
}

func TestMilestoneUseCase_RecordPayment(t *testing.T) {
	lockKey := "payment:" + entities.PaymentID("cust-1", entities.MilestoneM1)

	t.Run("invalid milestone id", func(t *testing.T) {
		uc := NewMilestoneUseCase(nil, nil, nil, nil, nil, nil, lifecycle.DefaultMilestoneConfig())
		_, err := uc.RecordPayment(context.Background(), "cust-1", "M9", 100, nil, "cust", entities.RoleCustomer)
		if !errors.Is(err, ErrInvalidMilestoneID) {
			t.Fatalf("expected ErrInvalidMilestoneID, got %v", err)
		}
	})

	t.Run("lock contention", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, locker, _ := newMilestoneUC(t, ctrl)

		locker.EXPECT().Acquire(gomock.Any(), lockKey, gomock.Any()).Return(false, nil)

		_, err := uc.RecordPayment(context.Background(), "cust-1", entities.MilestoneM1, 75000, nil, "cust", entities.RoleCustomer)
		if !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight, got %v", err)
		}
	})

	t.Run("locked milestone refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, quotations, customers, _, locker, _ := newMilestoneUC(t, ctrl)

		key := "payment:" + entities.PaymentID("cust-1", entities.MilestoneM3)
		locker.EXPECT().Acquire(gomock.Any(), key, gomock.Any()).Return(true, nil)
		locker.EXPECT().Release(gomock.Any(), key).Return(nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusStarted), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(planQuotation(300000), nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(paidLedger(entities.MilestoneM1, entities.MilestoneM2), nil)

		// M3 needs the installation physically completed; it is still LOCKED.
		_, err := uc.RecordPayment(context.Background(), "cust-1", entities.MilestoneM3, 75000, nil, "cust", entities.RoleCustomer)
		if !errors.Is(err, lifecycle.ErrMilestoneNotDue) {
			t.Fatalf("expected ErrMilestoneNotDue, got %v", err)
		}
	})

	t.Run("duplicate payment refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, quotations, customers, _, locker, _ := newMilestoneUC(t, ctrl)

		locker.EXPECT().Acquire(gomock.Any(), lockKey, gomock.Any()).Return(true, nil)
		locker.EXPECT().Release(gomock.Any(), lockKey).Return(nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusReady), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(planQuotation(300000), nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(paidLedger(entities.MilestoneM1), nil)

		_, err := uc.RecordPayment(context.Background(), "cust-1", entities.MilestoneM1, 75000, nil, "cust", entities.RoleCustomer)
		if !errors.Is(err, lifecycle.ErrDuplicatePayment) {
			t.Fatalf("expected ErrDuplicatePayment, got %v", err)
		}
	})

	t.Run("amount mismatch refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, quotations, customers, _, locker, _ := newMilestoneUC(t, ctrl)

		locker.EXPECT().Acquire(gomock.Any(), lockKey, gomock.Any()).Return(true, nil)
		locker.EXPECT().Release(gomock.Any(), lockKey).Return(nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusQuotationReady), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(planQuotation(300000), nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(nil, nil)

		_, err := uc.RecordPayment(context.Background(), "cust-1", entities.MilestoneM1, 74999, nil, "cust", entities.RoleCustomer)
		if !errors.Is(err, lifecycle.ErrAmountMismatch) {
			t.Fatalf("expected ErrAmountMismatch, got %v", err)
		}
	})

	t.Run("first payment funds installation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, quotations, customers, gateway, locker, audit := newMilestoneUC(t, ctrl)

		locker.EXPECT().Acquire(gomock.Any(), lockKey, gomock.Any()).Return(true, nil)
		locker.EXPECT().Release(gomock.Any(), lockKey).Return(nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusQuotationReady), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(planQuotation(300000), nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("prov-1", "approved", []byte(`{"status":"approved"}`), nil)
		payments.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != entities.PaymentID("cust-1", entities.MilestoneM1) {
					t.Fatalf("expected deterministic payment id, got %q", p.ID)
				}
				if p.Amount != 75000 || p.QuotationID != "q-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		customers.EXPECT().ApplyStatusPatch(gomock.Any(), "cust-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch interfaces.CustomerStatusPatch) (entities.Customer, error) {
				if patch.InstallationStatus == nil || *patch.InstallationStatus != entities.InstallationStatusReady {
					t.Fatalf("expected INSTALLATION_READY patch, got %+v", patch)
				}
				return entities.Customer{ID: "cust-1"}, nil
			},
		)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		p, err := uc.RecordPayment(context.Background(), "cust-1", entities.MilestoneM1, 75000, []byte(`{"payment_method_id":"pix"}`), "cust", entities.RoleCustomer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ProviderPaymentID != "prov-1" || p.ProviderStatus != "approved" {
			t.Fatalf("unexpected provider fields: %+v", p)
		}
	})

	t.Run("later payment leaves installation status alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, quotations, customers, gateway, locker, audit := newMilestoneUC(t, ctrl)

		key := "payment:" + entities.PaymentID("cust-1", entities.MilestoneM2)
		locker.EXPECT().Acquire(gomock.Any(), key, gomock.Any()).Return(true, nil)
		locker.EXPECT().Release(gomock.Any(), key).Return(nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusScheduled), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(planQuotation(300000), nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(paidLedger(entities.MilestoneM1), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("prov-2", "approved", []byte(`{}`), nil)
		payments.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.RecordPayment(context.Background(), "cust-1", entities.MilestoneM2, 120000, nil, "cust", entities.RoleCustomer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ledger conditional-put duplicate propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, quotations, customers, gateway, locker, _ := newMilestoneUC(t, ctrl)

		locker.EXPECT().Acquire(gomock.Any(), lockKey, gomock.Any()).Return(true, nil)
		locker.EXPECT().Release(gomock.Any(), lockKey).Return(nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(planCustomer(entities.InstallationStatusQuotationReady), nil)
		quotations.EXPECT().GetLatestByCustomerID(gomock.Any(), "cust-1").Return(planQuotation(300000), nil)
		payments.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("prov-1", "approved", []byte(`{}`), nil)
		payments.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.Payment{}, lifecycle.ErrDuplicatePayment)

		_, err := uc.RecordPayment(context.Background(), "cust-1", entities.MilestoneM1, 75000, nil, "cust", entities.RoleCustomer)
		if !errors.Is(err, lifecycle.ErrDuplicatePayment) {
			t.Fatalf("expected ErrDuplicatePayment, got %v", err)
		}
	})
}
