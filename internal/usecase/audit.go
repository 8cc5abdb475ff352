package usecase

import (
	"context"
	"log"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// emitAudit records a state transition on the audit sink. Audit is
// fire-and-forget: failures are logged as warnings and never propagate to the
// caller, so a broken sink cannot roll back a committed transition.
func emitAudit(ctx context.Context, sink interfaces.IAuditSink, ev entities.AuditEvent) {
	if sink == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if err := sink.Record(ctx, ev); err != nil {
		log.Printf("[audit][usecase] record failed entity=%s entity_id=%s from=%s to=%s err=%v",
			ev.Entity, ev.EntityID, ev.FromState, ev.ToState, err)
	}
}
