package interfaces

import (
	"context"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// IQuotationRepository abstracts persistence for Quotation records.
//
// UpdateStatusIf performs a conditional transition: the write succeeds only
// when the stored status still equals from. On a lost race it returns a
// zero-value Quotation and a nil error; the caller re-reads and maps the
// conflict. This is what makes approval linearizable per quotation.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetLatestByCustomerID(ctx context.Context, customerID string) (entities.Quotation, error)
	UpdateStatusIf(ctx context.Context, id string, from, to entities.QuotationStatus, rejectReason string) (entities.Quotation, error)
}
