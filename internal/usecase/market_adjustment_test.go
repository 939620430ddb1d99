package usecase

import (
	"context"
	"errors"
	"testing"

	"quoteforge/internal/usecase/interfaces"
	mock_interfaces "quoteforge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMarketAdjustmentEngine_ComputeAdjustment(t *testing.T) {
	t.Run("upward trend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIMarketDataProvider(ctrl)
		engine := NewMarketAdjustmentEngine(provider)

		provider.EXPECT().GetCommodityPrice(gomock.Any(), "aluminum").Return(interfaces.CommodityPrice{
			Commodity: "aluminum",
			Price:     3.5,
			Unit:      "kg",
			Trend:     5,
			Source:    "MOCK_DATA",
		}, true, nil)

		adj := engine.ComputeAdjustment(context.Background(), "Aluminum")
		if adj.Factor != 1.05 {
			t.Fatalf("expected factor 1.05, got %v", adj.Factor)
		}
		if adj.Reason != "aluminum prices up 5% from baseline" {
			t.Fatalf("unexpected reason: %q", adj.Reason)
		}
		if adj.DataSource != "MOCK_DATA" {
			t.Fatalf("expected MOCK_DATA source, got %q", adj.DataSource)
		}
	})

	t.Run("downward trend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIMarketDataProvider(ctrl)
		engine := NewMarketAdjustmentEngine(provider)

		provider.EXPECT().GetCommodityPrice(gomock.Any(), "steel").Return(interfaces.CommodityPrice{
			Commodity: "steel",
			Price:     1.2,
			Unit:      "kg",
			Trend:     -2,
			Source:    "MOCK_DATA",
		}, true, nil)

		adj := engine.ComputeAdjustment(context.Background(), "steel")
		if adj.Factor != 0.98 {
			t.Fatalf("expected factor 0.98, got %v", adj.Factor)
		}
		if adj.Reason != "steel prices down 2% from baseline" {
			t.Fatalf("unexpected reason: %q", adj.Reason)
		}
	})

	t.Run("stable trend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIMarketDataProvider(ctrl)
		engine := NewMarketAdjustmentEngine(provider)

		provider.EXPECT().GetCommodityPrice(gomock.Any(), "titanium").Return(interfaces.CommodityPrice{
			Commodity: "titanium",
			Price:     15,
			Unit:      "kg",
			Trend:     0,
			Source:    "MOCK_DATA",
		}, true, nil)

		adj := engine.ComputeAdjustment(context.Background(), "titanium")
		if adj.Factor != 1.0 {
			t.Fatalf("expected factor 1.0, got %v", adj.Factor)
		}
		if adj.Reason != "titanium prices stable" {
			t.Fatalf("unexpected reason: %q", adj.Reason)
		}
	})

	t.Run("unknown commodity is neutral", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIMarketDataProvider(ctrl)
		engine := NewMarketAdjustmentEngine(provider)

		provider.EXPECT().GetCommodityPrice(gomock.Any(), "unobtainium").Return(interfaces.CommodityPrice{}, false, nil)

		adj := engine.ComputeAdjustment(context.Background(), "unobtainium")
		if adj.Factor != 1.0 {
			t.Fatalf("expected neutral factor, got %v", adj.Factor)
		}
		if adj.Reason != "No market data available" || adj.DataSource != "NONE" {
			t.Fatalf("unexpected neutral adjustment: %+v", adj)
		}
	})

	t.Run("provider error is absorbed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIMarketDataProvider(ctrl)
		engine := NewMarketAdjustmentEngine(provider)

		provider.EXPECT().GetCommodityPrice(gomock.Any(), "copper").Return(interfaces.CommodityPrice{}, false, errors.New("feed down"))

		adj := engine.ComputeAdjustment(context.Background(), "copper")
		if adj.Factor != 1.0 {
			t.Fatalf("expected neutral factor, got %v", adj.Factor)
		}
		if adj.DataSource != "ERROR" {
			t.Fatalf("expected ERROR source, got %q", adj.DataSource)
		}
	})

	t.Run("empty material is neutral without provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIMarketDataProvider(ctrl)
		engine := NewMarketAdjustmentEngine(provider)

		adj := engine.ComputeAdjustment(context.Background(), "   ")
		if adj.Factor != 1.0 || adj.DataSource != "NONE" {
			t.Fatalf("unexpected adjustment: %+v", adj)
		}
	})

	t.Run("fractional trend keeps decimals in reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIMarketDataProvider(ctrl)
		engine := NewMarketAdjustmentEngine(provider)

		provider.EXPECT().GetCommodityPrice(gomock.Any(), "brass").Return(interfaces.CommodityPrice{
			Commodity: "brass",
			Trend:     2.5,
			Source:    "MOCK_DATA",
		}, true, nil)

		adj := engine.ComputeAdjustment(context.Background(), "brass")
		if adj.Reason != "brass prices up 2.5% from baseline" {
			t.Fatalf("unexpected reason: %q", adj.Reason)
		}
	})
}
