package entities

import "time"

// QuotationStatus represents the approval-chain position of a quotation.
//
// Domain notes:
//   - DRAFT → SUBMITTED → PLANT_APPROVED → REGION_APPROVED → FINAL_APPROVED,
//     with a REJECTED branch from any non-terminal status.
//   - FINAL_APPROVED and REJECTED are terminal; further transitions fail.
//   - A SUPER_ADMIN may finalize directly from PLANT_APPROVED, skipping the
//     region step. This is an intentional administrative override.

type QuotationStatus string

const (
	QuotationStatusDraft          QuotationStatus = "DRAFT"
	QuotationStatusSubmitted      QuotationStatus = "SUBMITTED"
	QuotationStatusPlantApproved  QuotationStatus = "PLANT_APPROVED"
	QuotationStatusRegionApproved QuotationStatus = "REGION_APPROVED"
	QuotationStatusFinalApproved  QuotationStatus = "FINAL_APPROVED"
	QuotationStatusRejected       QuotationStatus = "REJECTED"
)

// IsTerminal reports whether no further approval-chain transition is legal.
func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusFinalApproved || s == QuotationStatusRejected
}

// Quotation is the cost quotation persisted for a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Monetary representation:
//   - Total is in whole currency units (rupees). Milestone amounts are derived
//     from it with integer rounding; the ledger never stores fractions.
//
// At most one quotation is "latest" per customer; the customer row carries the
// mirror. CreatedAt anchors milestone due dates.

type Quotation struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	Total        int64           `json:"total"`
	Status       QuotationStatus `json:"status"`
	RejectReason string          `json:"reject_reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
