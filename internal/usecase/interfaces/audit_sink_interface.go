package interfaces

import (
	"context"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// IAuditSink receives one event per successful state transition.
//
// Audit is fire-and-forget from the caller's point of view: a failed Record
// must be logged as a warning but never rolls back the transition it
// describes.
type IAuditSink interface {
	Record(ctx context.Context, event entities.AuditEvent) error
}
