package response

import (
	"time"

	"quoteforge/internal/domain/entities"
)

// QuoteResultResponse is the payload returned right after a pipeline run.
type QuoteResultResponse struct {
	QuoteID          string                    `json:"quote_id"`
	DrawingID        string                    `json:"drawing_id,omitempty"`
	BaseCost         float64                   `json:"base_cost"`
	MarketAdjustment entities.MarketAdjustment `json:"market_adjustment"`
	FinalPrice       float64                   `json:"final_price"`
	Breakdown        entities.CostBreakdown    `json:"breakdown"`
	ConfidenceScore  float64                   `json:"confidence_score"`
	ExtractedSpecs   entities.DrawingSpecs     `json:"extracted_specs"`
	Analysis         string                    `json:"analysis"`
}

func FromQuoteResult(r entities.QuoteResult, drawingID string) QuoteResultResponse {
	return QuoteResultResponse{
		QuoteID:          r.QuoteID,
		DrawingID:        drawingID,
		BaseCost:         r.BaseCost,
		MarketAdjustment: r.MarketAdjustment,
		FinalPrice:       r.FinalPrice,
		Breakdown:        r.Breakdown,
		ConfidenceScore:  r.ConfidenceScore,
		ExtractedSpecs:   r.ExtractedSpecs,
		Analysis:         r.Analysis,
	}
}

// BulkQuotesResponse wraps a batch run. Failed items are omitted from Quotes,
// so len(Quotes) may be smaller than the number of uploaded drawings.
type BulkQuotesResponse struct {
	Message string                `json:"message"`
	Quotes  []QuoteResultResponse `json:"quotes"`
}

// QuoteResponse is the payload for a persisted quote.
type QuoteResponse struct {
	QuoteID          string                    `json:"quote_id"`
	ID               string                    `json:"id"`
	DrawingID        string                    `json:"drawing_id,omitempty"`
	BaseCost         float64                   `json:"base_cost"`
	MaterialCost     float64                   `json:"material_cost"`
	LaborCost        float64                   `json:"labor_cost"`
	OverheadCost     float64                   `json:"overhead_cost"`
	MarketAdjustment entities.MarketAdjustment `json:"market_adjustment"`
	FinalPrice       float64                   `json:"final_price"`
	Currency         string                    `json:"currency"`
	ConfidenceScore  float64                   `json:"confidence_score"`
	Breakdown        entities.CostBreakdown    `json:"breakdown"`
	Status           string                    `json:"status"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:          q.ID,
		ID:               q.ID,
		DrawingID:        q.DrawingID,
		BaseCost:         q.BaseCost,
		MaterialCost:     q.MaterialCost,
		LaborCost:        q.LaborCost,
		OverheadCost:     q.OverheadCost,
		MarketAdjustment: q.MarketAdjustment,
		FinalPrice:       q.FinalPrice,
		Currency:         q.Currency,
		ConfidenceScore:  q.ConfidenceScore,
		Breakdown:        q.Breakdown,
		Status:           string(q.Status),
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}
