package response

import (
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

type MilestoneResponse struct {
	ID      string    `json:"id"`
	Ordinal int       `json:"ordinal"`
	Amount  int64     `json:"amount"`
	Status  string    `json:"status"`
	DueDate time.Time `json:"due_date"`
}

func FromMilestones(list []entities.PaymentMilestone) []MilestoneResponse {
	if len(list) == 0 {
		return nil
	}
	out := make([]MilestoneResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MilestoneResponse{
			ID:      string(m.ID),
			Ordinal: m.Ordinal,
			Amount:  m.Amount,
			Status:  string(m.Status),
			DueDate: m.DueDate,
		})
	}
	return out
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer_id"`
	QuotationID       string    `json:"quotation_id"`
	MilestoneID       string    `json:"milestone_id"`
	Amount            int64     `json:"amount"`
	PaidAt            time.Time `json:"paid_at"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	ProviderStatus    string    `json:"provider_status,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		CustomerID:        p.CustomerID,
		QuotationID:       p.QuotationID,
		MilestoneID:       string(p.MilestoneID),
		Amount:            p.Amount,
		PaidAt:            p.PaidAt,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
