package entities

import "time"

// QuoteStatus represents the lifecycle of a generated quotation.
//
// Domain notes:
//   - Quotes are created as "generated" by the pipeline; every later status is
//     set by a reviewer through the status endpoint.
//   - quoteStatusTransitions is the strict forward order. Permissive mode
//     (legacy behavior) accepts any reviewer status from any state and is kept
//     only for backward compatibility.

type QuoteStatus string

const (
	QuoteStatusGenerated QuoteStatus = "generated"
	QuoteStatusReviewed  QuoteStatus = "reviewed"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusFinalized QuoteStatus = "finalized"
)

var quoteStatusTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusGenerated: {QuoteStatusReviewed},
	QuoteStatusReviewed:  {QuoteStatusApproved, QuoteStatusRejected},
	QuoteStatusApproved:  {QuoteStatusFinalized},
	QuoteStatusRejected:  {QuoteStatusFinalized},
	QuoteStatusFinalized: {},
}

// IsReviewerStatus reports whether s is a value a caller may request through
// the status endpoint. "generated" is reserved for creation.
func (s QuoteStatus) IsReviewerStatus() bool {
	switch s {
	case QuoteStatusReviewed, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusFinalized:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal forward step from s.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaterialCost is the material line item of a cost breakdown.
type MaterialCost struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
	TotalCost   float64 `json:"total_cost"`
}

// LaborCost is the labor line item of a cost breakdown.
type LaborCost struct {
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	TotalCost  float64 `json:"total_cost"`
}

// OverheadCost is the overhead line item of a cost breakdown.
type OverheadCost struct {
	Percentage float64 `json:"percentage"`
	TotalCost  float64 `json:"total_cost"`
}

// CostBreakdown itemizes the deterministic base cost of a quote.
// Invariant: BaseCost = Material.TotalCost + Labor.TotalCost + Overhead.TotalCost.
type CostBreakdown struct {
	Material MaterialCost `json:"material"`
	Labor    LaborCost    `json:"labor"`
	Overhead OverheadCost `json:"overhead"`
	BaseCost float64      `json:"base_cost"`
}

// MarketAdjustment is the multiplicative price correction derived from
// commodity trend data. Factor 1.0 means no adjustment.
type MarketAdjustment struct {
	Factor     float64 `json:"factor"`
	Reason     string  `json:"reason"`
	DataSource string  `json:"data_source"`
}

// QuoteResult is the complete output of one pipeline run.
// FinalPrice = BaseCost * MarketAdjustment.Factor, exactly.
type QuoteResult struct {
	QuoteID          string           `json:"quote_id"`
	BaseCost         float64          `json:"base_cost"`
	MarketAdjustment MarketAdjustment `json:"market_adjustment"`
	FinalPrice       float64          `json:"final_price"`
	Breakdown        CostBreakdown    `json:"breakdown"`
	ConfidenceScore  float64          `json:"confidence_score"`
	ExtractedSpecs   DrawingSpecs     `json:"extracted_specs"`
	Analysis         string           `json:"analysis"`
}

// Quote is the quotation record persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - DrawingID references the originating drawing record.
type Quote struct {
	ID               string           `json:"id"`
	DrawingID        string           `json:"drawing_id"`
	BaseCost         float64          `json:"base_cost"`
	MaterialCost     float64          `json:"material_cost"`
	LaborCost        float64          `json:"labor_cost"`
	OverheadCost     float64          `json:"overhead_cost"`
	MarketAdjustment MarketAdjustment `json:"market_adjustment"`
	FinalPrice       float64          `json:"final_price"`
	Currency         string           `json:"currency"`
	ConfidenceScore  float64          `json:"confidence_score"`
	Breakdown        CostBreakdown    `json:"breakdown"`
	Status           QuoteStatus      `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
