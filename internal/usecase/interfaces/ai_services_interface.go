package interfaces

import (
	"context"

	"quoteforge/internal/domain/entities"
)

// ISpecExtractionService reads structured manufacturing specs out of raw
// drawing bytes. Implementations must tolerate partially readable drawings
// and return normalized specs (see entities.DrawingSpecs.Normalized).
type ISpecExtractionService interface {
	ExtractSpecs(ctx context.Context, drawing []byte, mediaType string) (entities.DrawingSpecs, error)
}

// ISpecValidationService corrects candidate specs and attaches a confidence
// value. Must be idempotent for identical input.
type ISpecValidationService interface {
	ValidateSpecs(ctx context.Context, specs entities.DrawingSpecs) (entities.DrawingSpecs, error)
}

// IAnalysisService turns validated specs plus a cost breakdown into a short
// free-text justification. Callers substitute a fallback string on failure.
type IAnalysisService interface {
	GenerateCostAnalysis(ctx context.Context, specs entities.DrawingSpecs, breakdown entities.CostBreakdown) (string, error)
}
