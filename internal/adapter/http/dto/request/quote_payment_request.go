package request

import "encoding/json"

// QuotePaymentCreateRequest is the payload for the deposit capture route.
//
// `payment_payload` is stored as-is (raw JSON) to support varying payment
// provider schemas.

type QuotePaymentCreateRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}
