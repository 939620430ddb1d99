package market

import (
	"context"
	"strings"
	"sync"

	"quoteforge/internal/usecase/interfaces"
)

// MockMarketDataProvider serves commodity prices from an in-memory table.
// It stands in for real feeds (CRB, LME) until one is integrated; the engine
// only consumes {trend, source}, so swapping the provider is contained here.
type MockMarketDataProvider struct {
	mu     sync.RWMutex
	prices map[string]interfaces.CommodityPrice
}

var _ interfaces.IMarketDataProvider = (*MockMarketDataProvider)(nil)

func NewMockMarketDataProvider() *MockMarketDataProvider {
	prices := map[string]struct {
		price float64
		trend float64
	}{
		"aluminum": {3.5, 5},
		"steel":    {1.2, -2},
		"copper":   {8.5, 3},
		"titanium": {15.0, 0},
		"plastic":  {0.8, 1},
	}

	table := make(map[string]interfaces.CommodityPrice, len(prices))
	for commodity, p := range prices {
		table[commodity] = interfaces.CommodityPrice{
			Commodity: commodity,
			Price:     p.price,
			Unit:      "USD/kg",
			Trend:     p.trend,
			Source:    "MOCK_DATA",
		}
	}
	return &MockMarketDataProvider{prices: table}
}

func (p *MockMarketDataProvider) GetCommodityPrice(_ context.Context, commodity string) (interfaces.CommodityPrice, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	price, ok := p.prices[strings.ToLower(strings.TrimSpace(commodity))]
	return price, ok, nil
}

// SetPrice overrides one commodity row. Used by tests.
func (p *MockMarketDataProvider) SetPrice(commodity string, price, trend float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	commodity = strings.ToLower(strings.TrimSpace(commodity))
	p.prices[commodity] = interfaces.CommodityPrice{
		Commodity: commodity,
		Price:     price,
		Unit:      "USD/kg",
		Trend:     trend,
		Source:    "MOCK_DATA",
	}
}
