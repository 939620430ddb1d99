package market

import (
	"context"
	"testing"
)

func TestMockMarketDataProvider_GetCommodityPrice(t *testing.T) {
	provider := NewMockMarketDataProvider()

	t.Run("known commodities", func(t *testing.T) {
		expected := map[string]struct {
			price float64
			trend float64
		}{
			"aluminum": {3.5, 5},
			"steel":    {1.2, -2},
			"copper":   {8.5, 3},
			"titanium": {15.0, 0},
			"plastic":  {0.8, 1},
		}

		for commodity, want := range expected {
			price, found, err := provider.GetCommodityPrice(context.Background(), commodity)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", commodity, err)
			}
			if !found {
				t.Fatalf("%s: expected commodity in table", commodity)
			}
			if price.Price != want.price || price.Trend != want.trend {
				t.Fatalf("%s: expected {%v, %v}, got {%v, %v}", commodity, want.price, want.trend, price.Price, price.Trend)
			}
			if price.Source != "MOCK_DATA" {
				t.Fatalf("%s: expected MOCK_DATA source, got %q", commodity, price.Source)
			}
		}
	})

	t.Run("unknown commodity", func(t *testing.T) {
		_, found, err := provider.GetCommodityPrice(context.Background(), "unobtainium")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatalf("expected unknown commodity to be missing")
		}
	})

	t.Run("lookup ignores case and surrounding spaces", func(t *testing.T) {
		price, found, err := provider.GetCommodityPrice(context.Background(), "  Aluminum ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || price.Commodity != "aluminum" {
			t.Fatalf("expected aluminum row, got found=%v price=%+v", found, price)
		}
	})

	t.Run("set price overrides a row", func(t *testing.T) {
		provider.SetPrice("aluminum", 4.0, -10)

		price, found, err := provider.GetCommodityPrice(context.Background(), "aluminum")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || price.Price != 4.0 || price.Trend != -10 {
			t.Fatalf("expected overridden row, got found=%v price=%+v", found, price)
		}
	})
}
