package entities

import (
	"strings"
	"time"
)

// DrawingStatus tracks the processing lifecycle of an uploaded drawing.
//
// Flow: uploaded -> processing -> analyzed | failed.
// The quote pipeline moves a drawing to analyzed (with its validated specs)
// after a successful run, or to failed when generation aborts.

type DrawingStatus string

const (
	DrawingStatusUploaded   DrawingStatus = "uploaded"
	DrawingStatusProcessing DrawingStatus = "processing"
	DrawingStatusAnalyzed   DrawingStatus = "analyzed"
	DrawingStatusFailed     DrawingStatus = "failed"
)

// Dimensions are the key measurements read off a drawing.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// DrawingSpecs are the structured manufacturing attributes extracted from an
// engineering drawing by the vision service and refined by the validation
// service. Once the cost stage starts, the pipeline treats them as immutable.
//
// Confidence is always on the [0,1] scale inside this module. The extraction
// adapter converts the model's 0-100 self-report at the boundary.
type DrawingSpecs struct {
	Material             string     `json:"material"`
	MaterialQuantity     float64    `json:"material_quantity"`
	MaterialUnit         string     `json:"material_unit"`
	Dimensions           Dimensions `json:"dimensions"`
	ManufacturingProcess []string   `json:"manufacturing_process"`
	Complexity           int        `json:"complexity"`
	SpecialRequirements  []string   `json:"special_requirements"`
	Confidence           float64    `json:"confidence"`
}

// Normalized fills defaults for missing fields and clamps numeric ranges.
// Complexity lands in [1,10], confidence in [0,1].
func (s DrawingSpecs) Normalized() DrawingSpecs {
	if strings.TrimSpace(s.Material) == "" {
		s.Material = "Unknown"
	}
	if s.MaterialQuantity <= 0 {
		s.MaterialQuantity = 1
	}
	if s.MaterialUnit == "" {
		s.MaterialUnit = "kg"
	}
	if s.Dimensions.Unit == "" {
		s.Dimensions.Unit = "mm"
	}
	if s.Complexity == 0 {
		s.Complexity = 5
	}
	s.Complexity = clampInt(s.Complexity, 1, 10)
	s.Confidence = clampFloat(s.Confidence, 0, 1)
	if s.ManufacturingProcess == nil {
		s.ManufacturingProcess = []string{}
	}
	if s.SpecialRequirements == nil {
		s.SpecialRequirements = []string{}
	}
	return s
}

// NormalizedMaterial returns the material key used by the cost and market
// lookup tables: lowercase with spaces collapsed to underscores.
func (s DrawingSpecs) NormalizedMaterial() string {
	return strings.Join(strings.Fields(strings.ToLower(s.Material)), "_")
}

// Drawing is the uploaded drawing record persisted in DynamoDB.
//
// Storage model:
//   - PK: id
type Drawing struct {
	ID             string        `json:"id"`
	FileName       string        `json:"file_name"`
	FileType       string        `json:"file_type"`
	FilePath       string        `json:"file_path"`
	Status         DrawingStatus `json:"status"`
	ExtractedSpecs *DrawingSpecs `json:"extracted_specs,omitempty"`
	UploadedAt     time.Time     `json:"uploaded_at"`
	CreatedAt      time.Time     `json:"created_at"`
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
