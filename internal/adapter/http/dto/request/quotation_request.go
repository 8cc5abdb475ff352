package request

// CreateQuotationRequest drafts a quotation for a surveyed customer. Total is
// in whole currency units; fractions are never accepted on the wire.
type CreateQuotationRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Total      int64  `json:"total" binding:"required"`
}
