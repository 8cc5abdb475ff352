package request

import "encoding/json"

// RecordPaymentRequest pays a single milestone. Amount must equal the derived
// milestone amount exactly; partial payments are refused. ProviderPayload is
// forwarded to the payment gateway untouched.
type RecordPaymentRequest struct {
	Amount          int64           `json:"amount" binding:"required"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

func (r RecordPaymentRequest) ResolvePayload() json.RawMessage {
	if len(r.ProviderPayload) == 0 {
		return json.RawMessage("{}")
	}
	return r.ProviderPayload
}
