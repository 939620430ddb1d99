package request

import "strings"

// QuoteStatusRequest is the payload for PUT /quotes/{quote_id}/status.
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r QuoteStatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
