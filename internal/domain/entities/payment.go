package entities

import (
	"encoding/json"
	"time"
)

// Payment is an immutable ledger record: the single source of truth for
// "milestone paid" facts.
//
// Storage model (DynamoDB):
//   - PK: id (deterministic: "<customer_id>#<milestone_id>")
//   - GSI1 (customer_id-index): customer_id
//
// The deterministic id makes RecordPayment idempotent per
// (customer, milestone): a retried network call hits the conditional put and
// surfaces as a duplicate instead of a second charge.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit. Different provider integrations may vary in schema.

type Payment struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	QuotationID string      `json:"quotation_id"`
	MilestoneID MilestoneID `json:"milestone_id"`
	Amount      int64       `json:"amount"`
	PaidAt      time.Time   `json:"paid_at"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderStatus     string          `json:"provider_status,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// PaymentID builds the deterministic ledger key for a milestone payment.
func PaymentID(customerID string, milestoneID MilestoneID) string {
	return customerID + "#" + string(milestoneID)
}
