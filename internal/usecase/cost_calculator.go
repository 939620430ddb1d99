package usecase

import (
	"errors"
	"strings"

	"quoteforge/internal/domain/entities"
)

var ErrInvalidMaterialQuantity = errors.New("invalid material quantity")

// CostTables are the fixed lookup tables the calculator prices against.
// They are injected at construction so tests can supply their own rates.
type CostTables struct {
	// MaterialCosts maps normalized material name to $/kg.
	MaterialCosts map[string]float64
	// LaborRates maps normalized process name to $/hour.
	LaborRates map[string]float64
	// ComplexityHours maps the 1-10 complexity rating to base labor hours.
	ComplexityHours map[int]float64

	DefaultMaterialCost float64
	DefaultLaborRate    float64
	DefaultHours        float64
	OverheadPercentage  float64
}

// DefaultCostTables returns the generic manufacturing cost database.
func DefaultCostTables() CostTables {
	return CostTables{
		MaterialCosts: map[string]float64{
			"aluminum":        3.5,
			"steel":           1.2,
			"stainless_steel": 5.0,
			"copper":          8.5,
			"plastic":         0.8,
			"titanium":        15.0,
			"brass":           6.0,
		},
		LaborRates: map[string]float64{
			"cnc":         50,
			"welding":     45,
			"casting":     35,
			"milling":     48,
			"turning":     40,
			"assembly":    30,
			"3d_printing": 60,
		},
		ComplexityHours: map[int]float64{
			1:  0.5,
			2:  0.75,
			3:  1.0,
			4:  1.25,
			5:  1.5,
			6:  2.0,
			7:  2.5,
			8:  3.5,
			9:  4.5,
			10: 6.0,
		},
		DefaultMaterialCost: 5,
		DefaultLaborRate:    45,
		DefaultHours:        2,
		OverheadPercentage:  30,
	}
}

// CostCalculator derives a deterministic cost breakdown from drawing specs.
// Same specs in, same breakdown out, always.
type CostCalculator struct {
	tables CostTables
}

func NewCostCalculator(tables CostTables) *CostCalculator {
	return &CostCalculator{tables: tables}
}

// ComputeCost prices the specs: material quantity * unit cost, labor hours
// (by complexity) * mean process rate, plus a fixed overhead percentage of
// the direct costs.
func (c *CostCalculator) ComputeCost(specs entities.DrawingSpecs) (entities.CostBreakdown, error) {
	if specs.MaterialQuantity <= 0 {
		return entities.CostBreakdown{}, ErrInvalidMaterialQuantity
	}

	unitCost, ok := c.tables.MaterialCosts[specs.NormalizedMaterial()]
	if !ok {
		unitCost = c.tables.DefaultMaterialCost
	}
	materialTotal := specs.MaterialQuantity * unitCost

	hours, ok := c.tables.ComplexityHours[specs.Complexity]
	if !ok {
		hours = c.tables.DefaultHours
	}

	hourlyRate := c.tables.DefaultLaborRate
	if len(specs.ManufacturingProcess) > 0 {
		sum := 0.0
		for _, process := range specs.ManufacturingProcess {
			rate, ok := c.tables.LaborRates[normalizeProcess(process)]
			if !ok {
				rate = c.tables.DefaultLaborRate
			}
			sum += rate
		}
		hourlyRate = sum / float64(len(specs.ManufacturingProcess))
	}
	laborTotal := hours * hourlyRate

	overheadTotal := (materialTotal + laborTotal) * c.tables.OverheadPercentage / 100

	return entities.CostBreakdown{
		Material: entities.MaterialCost{
			Description: specs.Material,
			Quantity:    specs.MaterialQuantity,
			UnitCost:    unitCost,
			TotalCost:   materialTotal,
		},
		Labor: entities.LaborCost{
			Hours:      hours,
			HourlyRate: hourlyRate,
			TotalCost:  laborTotal,
		},
		Overhead: entities.OverheadCost{
			Percentage: c.tables.OverheadPercentage,
			TotalCost:  overheadTotal,
		},
		BaseCost: materialTotal + laborTotal + overheadTotal,
	}, nil
}

func normalizeProcess(process string) string {
	return strings.Join(strings.Fields(strings.ToLower(process)), "_")
}
