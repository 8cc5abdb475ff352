package lifecycle

import (
	"errors"
	"fmt"
	"math"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// MilestoneConfig carries the payment-plan shape. Weights and due-day offsets
// are configuration inputs, not hard-coded literals; the defaults reproduce
// the standard 25/40/25/10 plan with due dates 0/15/45/60 days from the
// quotation.
type MilestoneConfig struct {
	Weights    [4]float64 `yaml:"weights"`
	DueOffsets [4]int     `yaml:"due_offset_days"`
}

// DefaultMilestoneConfig returns the standard plan.
func DefaultMilestoneConfig() MilestoneConfig {
	return MilestoneConfig{
		Weights:    [4]float64{0.25, 0.40, 0.25, 0.10},
		DueOffsets: [4]int{0, 15, 45, 60},
	}
}

// Validate rejects weight sets that do not sum to 1.00.
func (c MilestoneConfig) Validate() error {
	sum := 0.0
	for i, w := range c.Weights {
		if w <= 0 {
			return fmt.Errorf("milestone weight %d must be positive, got %v", i+1, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return errors.New("milestone weights must sum to 1.00")
	}
	return nil
}

// SplitAmounts distributes a quotation total across the four milestones in
// integer currency units. Each amount is round(total*weight); the last
// milestone absorbs the rounding remainder so the four sum exactly to total.
func SplitAmounts(total int64, weights [4]float64) [4]int64 {
	var amounts [4]int64
	var allocated int64
	for i := 0; i < 3; i++ {
		amounts[i] = int64(math.Round(float64(total) * weights[i]))
		allocated += amounts[i]
	}
	amounts[3] = total - allocated
	return amounts
}

// Gating conditions per milestone. M1 unlocks on
// survey completion, M2 once installation is funded/underway, M3 once the
// physical installation is done, M4 once QC has signed off.
var (
	m2Statuses = map[entities.InstallationStatus]bool{
		entities.InstallationStatusReady:         true,
		entities.InstallationStatusScheduled:     true,
		entities.InstallationStatusStarted:       true,
		entities.InstallationStatusCompleted:     true,
		entities.InstallationStatusQCPending:     true,
		entities.InstallationStatusQCApproved:    true,
		entities.InstallationStatusQCRejected:    true,
		entities.InstallationStatusCommissioning: true,
		entities.InstallationStatusLive:          true,
	}
	m3Statuses = map[entities.InstallationStatus]bool{
		entities.InstallationStatusCompleted:     true,
		entities.InstallationStatusQCPending:     true,
		entities.InstallationStatusQCApproved:    true,
		entities.InstallationStatusQCRejected:    true,
		entities.InstallationStatusCommissioning: true,
		entities.InstallationStatusLive:          true,
	}
	m4Statuses = map[entities.InstallationStatus]bool{
		entities.InstallationStatusQCApproved:    true,
		entities.InstallationStatusCommissioning: true,
		entities.InstallationStatusLive:          true,
	}
)

func milestoneGateOpen(ordinal int, surveyStatus entities.SurveyStatus, installStatus entities.InstallationStatus) bool {
	switch ordinal {
	case 0:
		return surveyStatus == entities.SurveyStatusCompleted ||
			surveyStatus == entities.SurveyStatusApproved ||
			installStatus == entities.InstallationStatusQuotationReady
	case 1:
		return m2Statuses[installStatus]
	case 2:
		return m3Statuses[installStatus]
	case 3:
		return m4Statuses[installStatus]
	}
	return false
}

// ComputeMilestones derives the four ordered milestones from the quotation,
// the customer's progress and the payment ledger.
//
// Invariants honored:
//   - PAID is permanent: a ledger record marks the milestone PAID regardless
//     of the current gating state (idempotent recomputation never re-locks).
//   - at most one milestone is DUE: only the first unpaid milestone is ever a
//     candidate, and only when its gate is open.
func ComputeMilestones(
	cfg MilestoneConfig,
	quotation entities.Quotation,
	surveyStatus entities.SurveyStatus,
	installStatus entities.InstallationStatus,
	payments []entities.Payment,
) []entities.PaymentMilestone {
	amounts := SplitAmounts(quotation.Total, cfg.Weights)

	paid := map[entities.MilestoneID]bool{}
	for _, p := range payments {
		if p.CustomerID == quotation.CustomerID {
			paid[p.MilestoneID] = true
		}
	}

	firstUnpaid := -1
	for i, id := range entities.MilestoneIDs {
		if !paid[id] {
			firstUnpaid = i
			break
		}
	}

	milestones := make([]entities.PaymentMilestone, 0, len(entities.MilestoneIDs))
	for i, id := range entities.MilestoneIDs {
		status := entities.MilestoneStatusLocked
		switch {
		case paid[id]:
			status = entities.MilestoneStatusPaid
		case i == firstUnpaid && milestoneGateOpen(i, surveyStatus, installStatus):
			status = entities.MilestoneStatusDue
		}
		milestones = append(milestones, entities.PaymentMilestone{
			ID:      id,
			Ordinal: i + 1,
			Amount:  amounts[i],
			Status:  status,
			DueDate: quotation.CreatedAt.AddDate(0, 0, cfg.DueOffsets[i]),
		})
	}
	return milestones
}

// FindMilestone returns the computed milestone with the given id.
func FindMilestone(milestones []entities.PaymentMilestone, id entities.MilestoneID) (entities.PaymentMilestone, bool) {
	for _, m := range milestones {
		if m.ID == id {
			return m, true
		}
	}
	return entities.PaymentMilestone{}, false
}
