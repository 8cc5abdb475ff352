package interfaces

import (
	"context"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// IPaymentRepository abstracts the append-only payment ledger.
//
// Append must be conditional on the deterministic payment id not existing yet;
// implementations surface a duplicate as lifecycle.ErrDuplicatePayment so a
// retried call can never double-charge.

type IPaymentRepository interface {
	Append(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error)
}
