package lifecycle

import (
	"testing"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

func testQuotation(total int64) entities.Quotation {
	return entities.Quotation{
		ID:         "q-1",
		CustomerID: "cust-1",
		Total:      total,
		Status:     entities.QuotationStatusFinalApproved,
		CreatedAt:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func paidPayments(ids ...entities.MilestoneID) []entities.Payment {
	var payments []entities.Payment
	for _, id := range ids {
		payments = append(payments, entities.Payment{
			ID:          entities.PaymentID("cust-1", id),
			CustomerID:  "cust-1",
			MilestoneID: id,
		})
	}
	return payments
}

func TestSplitAmounts(t *testing.T) {
	cfg := DefaultMilestoneConfig()

	t.Run("standard plan 300000", func(t *testing.T) {
		amounts := SplitAmounts(300000, cfg.Weights)
		want := [4]int64{75000, 120000, 75000, 30000}
		if amounts != want {
			t.Fatalf("expected %v, got %v", want, amounts)
		}
	})

	t.Run("no rounding drift", func(t *testing.T) {
		for _, total := range []int64{1, 3, 7, 99, 99999, 123457, 300000, 1234567, 98765431} {
			amounts := SplitAmounts(total, cfg.Weights)
			var sum int64
			for _, a := range amounts {
				sum += a
			}
			if sum != total {
				t.Fatalf("total %d: amounts %v sum to %d", total, amounts, sum)
			}
		}
	})
}

func TestMilestoneConfigValidate(t *testing.T) {
	if err := DefaultMilestoneConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bad := MilestoneConfig{Weights: [4]float64{0.5, 0.3, 0.1, 0.2}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for weights summing to 1.1")
	}

	zero := MilestoneConfig{Weights: [4]float64{1, 0, 0, 0}}
	if err := zero.Validate(); err == nil {
		t.Fatalf("expected error for zero weight")
	}
}

func TestComputeMilestones(t *testing.T) {
	cfg := DefaultMilestoneConfig()

	t.Run("survey completed unlocks only M1", func(t *testing.T) {
		ms := ComputeMilestones(cfg, testQuotation(300000),
			entities.SurveyStatusCompleted, entities.InstallationStatusQuotationReady, nil)

		if len(ms) != 4 {
			t.Fatalf("expected 4 milestones, got %d", len(ms))
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

	t.Run("M1 paid and installation started unlocks M2", func(t *testing.T) {
		ms := ComputeMilestones(cfg, testQuotation(300000),
			entities.SurveyStatusApproved, entities.InstallationStatusStarted,
			paidPayments(entities.MilestoneM1))

		if ms[0].Status != entities.MilestoneStatusPaid {
			t.Fatalf("expected M1 PAID, got %s", ms[0].Status)
		}
		if ms[1].Status != entities.MilestoneStatusDue {
			t.Fatalf("expected M2 DUE, got %s", ms[1].Status)
		}
		if ms[2].Status != entities.MilestoneStatusLocked || ms[3].Status != entities.MilestoneStatusLocked {
			t.Fatalf("expected M3/M4 LOCKED, got %s/%s", ms[2].Status, ms[3].Status)
		}
	})

	t.Run("nothing due before survey completion", func(t *testing.T) {
		ms := ComputeMilestones(cfg, testQuotation(300000),
			entities.SurveyStatusAssigned, entities.InstallationStatusOnboarded, nil)
		for _, m := range ms {
			if m.Status != entities.MilestoneStatusLocked {
				t.Fatalf("expected %s LOCKED, got %s", m.ID, m.Status)
			}
		}
	})

	t.Run("M4 needs QC approval", func(t *testing.T) {
		paid := paidPayments(entities.MilestoneM1, entities.MilestoneM2, entities.MilestoneM3)

		ms := ComputeMilestones(cfg, testQuotation(300000),
			entities.SurveyStatusApproved, entities.InstallationStatusQCPending, paid)
		if ms[3].Status != entities.MilestoneStatusLocked {
			t.Fatalf("expected M4 LOCKED at QC_PENDING, got %s", ms[3].Status)
		}

		ms = ComputeMilestones(cfg, testQuotation(300000),
			entities.SurveyStatusApproved, entities.InstallationStatusQCApproved, paid)
		if ms[3].Status != entities.MilestoneStatusDue {
			t.Fatalf("expected M4 DUE at QC_APPROVED, got %s", ms[3].Status)
		}
	})

	t.Run("paid never re-locks", func(t *testing.T) {
		// Ledger says M1 and M2 are paid even though the current progress
		// would not unlock them; PAID is permanent.
		ms := ComputeMilestones(cfg, testQuotation(300000),
			entities.SurveyStatusAssigned, entities.InstallationStatusOnboarded,
			paidPayments(entities.MilestoneM1, entities.MilestoneM2))
		if ms[0].Status != entities.MilestoneStatusPaid || ms[1].Status != entities.MilestoneStatusPaid {
			t.Fatalf("expected M1/M2 PAID, got %s/%s", ms[0].Status, ms[1].Status)
		}
	})

	t.Run("no skipping", func(t *testing.T) {
		// M2 gate is open but M1 is unpaid: nothing past M1 may be DUE.
		ms := ComputeMilestones(cfg, testQuotation(300000),
			entities.SurveyStatusApproved, entities.InstallationStatusStarted, nil)
		if ms[0].Status != entities.MilestoneStatusDue {
			t.Fatalf("expected M1 DUE, got %s", ms[0].Status)
		}
		for _, m := range ms[1:] {
			if m.Status == entities.MilestoneStatusDue {
				t.Fatalf("%s DUE while M1 unpaid", m.ID)
			}
		}
	})

	t.Run("at most one due across progressions", func(t *testing.T) {
		surveys := []entities.SurveyStatus{
			entities.SurveyStatusPending, entities.SurveyStatusAssigned,
			entities.SurveyStatusCompleted, entities.SurveyStatusApproved,
		}
		installs := []entities.InstallationStatus{
			entities.InstallationStatusOnboarded, entities.InstallationStatusQuotationReady,
			entities.InstallationStatusReady, entities.InstallationStatusScheduled,
			entities.InstallationStatusStarted, entities.InstallationStatusCompleted,
			entities.InstallationStatusQCPending, entities.InstallationStatusQCApproved,
			entities.InstallationStatusQCRejected, entities.InstallationStatusCommissioning,
			entities.InstallationStatusLive,
		}
		ledgers := [][]entities.Payment{
			nil,
			paidPayments(entities.MilestoneM1),
			paidPayments(entities.MilestoneM1, entities.MilestoneM2),
			paidPayments(entities.MilestoneM1, entities.MilestoneM2, entities.MilestoneM3),
			paidPayments(entities.MilestoneIDs...),
		}

		for _, ss := range surveys {
			for _, is := range installs {
				for _, ledger := range ledgers {
					ms := ComputeMilestones(cfg, testQuotation(300000), ss, is, ledger)
					due := 0
					for _, m := range ms {
						if m.Status == entities.MilestoneStatusDue {
							due++
						}
					}
					if due > 1 {
						t.Fatalf("survey=%s install=%s ledger=%d: %d milestones DUE", ss, is, len(ledger), due)
					}
					for i, m := range ms {
						if (m.Status == entities.MilestoneStatusDue || m.Status == entities.MilestoneStatusPaid) && i > 0 {
							for j := 0; j < i; j++ {
								if ms[j].Status != entities.MilestoneStatusPaid {
									t.Fatalf("survey=%s install=%s: %s is %s while %s is %s",
										ss, is, m.ID, m.Status, ms[j].ID, ms[j].Status)
								}
							}
						}
					}
				}
			}
		}
	})

	t.Run("due dates anchored to quotation creation", func(t *testing.T) {
		q := testQuotation(300000)
		ms := ComputeMilestones(cfg, q, entities.SurveyStatusCompleted, entities.InstallationStatusQuotationReady, nil)
		if !ms[0].DueDate.Equal(q.CreatedAt) {
			t.Fatalf("expected M1 due at creation, got %s", ms[0].DueDate)
		}
		if !ms[3].DueDate.Equal(q.CreatedAt.AddDate(0, 0, 60)) {
			t.Fatalf("expected M4 due +60d, got %s", ms[3].DueDate)
		}
	})
}
