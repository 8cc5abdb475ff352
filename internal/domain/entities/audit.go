package entities

import "time"

// AuditEvent records one state transition for the external audit trail.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Audit is fire-and-forget: a failed write must never roll back the underlying
// transition, only surface as a warning.

type AuditEvent struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id"`
	ActorRole  ActorRole `json:"actor_role"`
	FromState  string    `json:"from_state"`
	ToState    string    `json:"to_state"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
