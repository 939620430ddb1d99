package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"
)

// MarketAdjustmentEngine turns commodity trend data into a multiplicative
// price factor plus a human-readable justification.
//
// It never fails: missing market data and provider errors both collapse into
// the neutral factor 1.0.
type MarketAdjustmentEngine struct {
	provider interfaces.IMarketDataProvider
}

func NewMarketAdjustmentEngine(provider interfaces.IMarketDataProvider) *MarketAdjustmentEngine {
	return &MarketAdjustmentEngine{provider: provider}
}

// ComputeAdjustment looks the material up in the commodity table and converts
// its signed trend percentage into factor = 1 + trend/100.
func (e *MarketAdjustmentEngine) ComputeAdjustment(ctx context.Context, material string) entities.MarketAdjustment {
	commodity := strings.Join(strings.Fields(strings.ToLower(material)), "_")

	neutral := entities.MarketAdjustment{
		Factor:     1.0,
		Reason:     "No market data available",
		DataSource: "NONE",
	}
	if e.provider == nil || commodity == "" {
		return neutral
	}

	price, found, err := e.provider.GetCommodityPrice(ctx, commodity)
	if err != nil {
		log.Printf("[market][engine] provider failed commodity=%s err=%v", commodity, err)
		return entities.MarketAdjustment{
			Factor:     1.0,
			Reason:     "Error fetching market data",
			DataSource: "ERROR",
		}
	}
	if !found {
		return neutral
	}

	var reason string
	switch {
	case price.Trend > 0:
		reason = fmt.Sprintf("%s prices up %v%% from baseline", price.Commodity, trimTrend(price.Trend))
	case price.Trend < 0:
		reason = fmt.Sprintf("%s prices down %v%% from baseline", price.Commodity, trimTrend(math.Abs(price.Trend)))
	default:
		reason = fmt.Sprintf("%s prices stable", price.Commodity)
	}

	return entities.MarketAdjustment{
		Factor:     1 + price.Trend/100,
		Reason:     reason,
		DataSource: price.Source,
	}
}

// trimTrend renders whole-number trends without a trailing ".0".
func trimTrend(trend float64) interface{} {
	if trend == math.Trunc(trend) {
		return int(trend)
	}
	return trend
}
