package response

import (
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

type QuotationResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	Total        int64     `json:"total"`
	Status       string    `json:"status"`
	RejectReason string    `json:"reject_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:           q.ID,
		CustomerID:   q.CustomerID,
		Total:        q.Total,
		Status:       string(q.Status),
		RejectReason: q.RejectReason,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}
