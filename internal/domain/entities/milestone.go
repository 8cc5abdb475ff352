package entities

import "time"

// MilestoneID is the ordinal identity of one of the four payment milestones.

type MilestoneID string

const (
	MilestoneM1 MilestoneID = "M1"
	MilestoneM2 MilestoneID = "M2"
	MilestoneM3 MilestoneID = "M3"
	MilestoneM4 MilestoneID = "M4"
)

// MilestoneIDs lists the milestones in payment order.
var MilestoneIDs = []MilestoneID{MilestoneM1, MilestoneM2, MilestoneM3, MilestoneM4}

// MilestoneStatus is monotonic: a milestone never regresses from PAID.

type MilestoneStatus string

const (
	MilestoneStatusLocked MilestoneStatus = "LOCKED"
	MilestoneStatusDue    MilestoneStatus = "DUE"
	MilestoneStatusPaid   MilestoneStatus = "PAID"
)

// PaymentMilestone is a derived view, not an independently persisted row.
// It is recomputed from the quotation total, the customer's progress and the
// payment ledger on every read; PAID facts come from the ledger alone.

type PaymentMilestone struct {
	ID      MilestoneID     `json:"id"`
	Ordinal int             `json:"ordinal"`
	Amount  int64           `json:"amount"`
	Status  MilestoneStatus `json:"status"`
	DueDate time.Time       `json:"due_date"`
}
