package interfaces

import "context"

// CommodityPrice is one row of market data for a commodity.
type CommodityPrice struct {
	Commodity string
	Price     float64
	Unit      string
	Trend     float64 // signed percentage change from baseline
	Source    string
}

// IMarketDataProvider serves commodity price/trend data.
//
// found=false is the normal "no market data" branch, not an error.
type IMarketDataProvider interface {
	GetCommodityPrice(ctx context.Context, commodity string) (price CommodityPrice, found bool, err error)
}
