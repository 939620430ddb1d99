package entities

import "testing"

func TestDrawingSpecs_Normalized(t *testing.T) {
	t.Run("empty specs get defaults", func(t *testing.T) {
		got := DrawingSpecs{}.Normalized()

		if got.Material != "Unknown" {
			t.Fatalf("expected Unknown material, got %q", got.Material)
		}
		if got.MaterialQuantity != 1 {
			t.Fatalf("expected quantity 1, got %v", got.MaterialQuantity)
		}
		if got.MaterialUnit != "kg" {
			t.Fatalf("expected kg, got %q", got.MaterialUnit)
		}
		if got.Dimensions.Unit != "mm" {
			t.Fatalf("expected mm, got %q", got.Dimensions.Unit)
		}
		if got.Complexity != 5 {
			t.Fatalf("expected complexity 5, got %d", got.Complexity)
		}
		if got.ManufacturingProcess == nil || got.SpecialRequirements == nil {
			t.Fatalf("expected empty slices, got nil")
		}
	})

	t.Run("complexity is clamped to 1..10", func(t *testing.T) {
		if got := (DrawingSpecs{Complexity: -3}).Normalized(); got.Complexity != 1 {
			t.Fatalf("expected 1, got %d", got.Complexity)
		}
		if got := (DrawingSpecs{Complexity: 42}).Normalized(); got.Complexity != 10 {
			t.Fatalf("expected 10, got %d", got.Complexity)
		}
		if got := (DrawingSpecs{Complexity: 7}).Normalized(); got.Complexity != 7 {
			t.Fatalf("expected 7, got %d", got.Complexity)
		}
	})

	t.Run("confidence is clamped to 0..1", func(t *testing.T) {
		if got := (DrawingSpecs{Confidence: 1.7}).Normalized(); got.Confidence != 1 {
			t.Fatalf("expected 1, got %v", got.Confidence)
		}
		if got := (DrawingSpecs{Confidence: -0.2}).Normalized(); got.Confidence != 0 {
			t.Fatalf("expected 0, got %v", got.Confidence)
		}
	})

	t.Run("existing values survive", func(t *testing.T) {
		in := DrawingSpecs{
			Material:             "titanium",
			MaterialQuantity:     2.5,
			MaterialUnit:         "lb",
			ManufacturingProcess: []string{"milling"},
			Complexity:           8,
			Confidence:           0.85,
		}
		got := in.Normalized()
		if got.Material != "titanium" || got.MaterialQuantity != 2.5 || got.MaterialUnit != "lb" {
			t.Fatalf("unexpected normalization: %+v", got)
		}
		if got.Complexity != 8 || got.Confidence != 0.85 {
			t.Fatalf("unexpected normalization: %+v", got)
		}
	})
}

func TestDrawingSpecs_NormalizedMaterial(t *testing.T) {
	cases := map[string]string{
		"Aluminum":          "aluminum",
		"Stainless Steel":   "stainless_steel",
		"  stainless STEEL": "stainless_steel",
		"3D   printed ABS":  "3d_printed_abs",
		"":                  "",
	}
	for in, want := range cases {
		if got := (DrawingSpecs{Material: in}).NormalizedMaterial(); got != want {
			t.Fatalf("material %q: expected %q, got %q", in, want, got)
		}
	}
}
