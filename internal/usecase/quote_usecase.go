package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteStatus    = errors.New("invalid quote status")
	ErrQuoteStatusTransition = errors.New("quote status transition not allowed")
	ErrEmptyDrawing          = errors.New("empty drawing")
	ErrSpecExtractionFailed  = errors.New("spec extraction failed")
	ErrSpecValidationFailed  = errors.New("spec validation failed")
	ErrCostCalculationFailed = errors.New("cost calculation failed")
)

const analysisFallback = "analysis unavailable"

// DrawingSource is one drawing submitted for quotation. DrawingID is optional;
// when set, the pipeline updates the drawing record after the run.
type DrawingSource struct {
	DrawingID string
	FileName  string
	MediaType string
	Data      []byte
}

// IQuoteUseCase exposes the quotation pipeline operations.
//
//   - GenerateQuote runs the full pipeline for one drawing.
//   - GenerateBulkQuotes fans the pipeline out over many drawings with
//     per-item failure isolation.
//   - UpdateQuoteStatus drives the reviewer lifecycle.

type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, source DrawingSource) (entities.QuoteResult, error)
	GenerateBulkQuotes(ctx context.Context, sources []DrawingSource) []entities.QuoteResult
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id string, status string) (entities.Quote, error)
}

// QuoteUseCase orchestrates extraction, validation, costing, market
// adjustment, analysis and persistence.
//
// Failure taxonomy:
//   - extraction/validation/cost errors are fatal for the quote being built;
//   - missing market data and analysis failures are absorbed with defaults;
//   - persistence failures are logged and never surface to the caller.
type QuoteUseCase struct {
	extractor  interfaces.ISpecExtractionService
	validator  interfaces.ISpecValidationService
	analyzer   interfaces.IAnalysisService
	calculator *CostCalculator
	market     *MarketAdjustmentEngine
	quoteRepo  interfaces.IQuoteRepository
	drawings   interfaces.IDrawingRepository

	// permissiveStatus restores the legacy behavior of accepting any reviewer
	// status regardless of the current one.
	permissiveStatus bool
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	extractor interfaces.ISpecExtractionService,
	validator interfaces.ISpecValidationService,
	analyzer interfaces.IAnalysisService,
	calculator *CostCalculator,
	market *MarketAdjustmentEngine,
	quoteRepo interfaces.IQuoteRepository,
	drawings interfaces.IDrawingRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		extractor:        extractor,
		validator:        validator,
		analyzer:         analyzer,
		calculator:       calculator,
		market:           market,
		quoteRepo:        quoteRepo,
		drawings:         drawings,
		permissiveStatus: isPermissiveStatusFlowEnabled(),
	}
}

// GenerateQuote runs the fixed-order pipeline:
// extract -> validate -> cost -> market -> compose -> analyze -> persist.
func (u *QuoteUseCase) GenerateQuote(ctx context.Context, source DrawingSource) (entities.QuoteResult, error) {
	start := time.Now()
	quoteID := uuid.NewString()
	log.Printf("[quote][usecase] generate start quote_id=%s drawing_id=%s file=%s", quoteID, source.DrawingID, source.FileName)

	if len(source.Data) == 0 {
		return entities.QuoteResult{}, ErrEmptyDrawing
	}

	extracted, err := u.extractor.ExtractSpecs(ctx, source.Data, source.MediaType)
	if err != nil {
		log.Printf("[quote][usecase] extraction failed quote_id=%s err=%v", quoteID, err)
		u.markDrawingFailed(ctx, source.DrawingID)
		return entities.QuoteResult{}, fmt.Errorf("%w: %v", ErrSpecExtractionFailed, err)
	}

	validated, err := u.validator.ValidateSpecs(ctx, extracted)
	if err != nil {
		log.Printf("[quote][usecase] validation failed quote_id=%s err=%v", quoteID, err)
		u.markDrawingFailed(ctx, source.DrawingID)
		return entities.QuoteResult{}, fmt.Errorf("%w: %v", ErrSpecValidationFailed, err)
	}
	if validated.Confidence == 0 {
		validated.Confidence = extracted.Confidence
		if validated.Confidence == 0 {
			validated.Confidence = 0.5
		}
	}
	validated = validated.Normalized()

	breakdown, err := u.calculator.ComputeCost(validated)
	if err != nil {
		log.Printf("[quote][usecase] cost calculation failed quote_id=%s err=%v", quoteID, err)
		u.markDrawingFailed(ctx, source.DrawingID)
		return entities.QuoteResult{}, fmt.Errorf("%w: %v", ErrCostCalculationFailed, err)
	}

	adjustment := u.market.ComputeAdjustment(ctx, validated.Material)

	finalPrice := breakdown.BaseCost * adjustment.Factor

	analysis, err := u.analyzer.GenerateCostAnalysis(ctx, validated, breakdown)
	if err != nil || strings.TrimSpace(analysis) == "" {
		log.Printf("[quote][usecase] analysis unavailable quote_id=%s err=%v", quoteID, err)
		analysis = analysisFallback
	}

	// The quote reports the extraction-stage confidence, deliberately not an
	// aggregate over later stages.
	result := entities.QuoteResult{
		QuoteID:          quoteID,
		BaseCost:         breakdown.BaseCost,
		MarketAdjustment: adjustment,
		FinalPrice:       finalPrice,
		Breakdown:        breakdown,
		ConfidenceScore:  extracted.Confidence,
		ExtractedSpecs:   validated,
		Analysis:         analysis,
	}

	u.persistQuote(ctx, source.DrawingID, result, validated)

	log.Printf("[quote][usecase] generate success quote_id=%s final_price=%.4f elapsed=%s", quoteID, finalPrice, time.Since(start))
	return result, nil
}

// persistQuote is a best-effort side effect: the computed quote is the primary
// contract, durability is secondary. Failures are logged and swallowed.
func (u *QuoteUseCase) persistQuote(ctx context.Context, drawingID string, result entities.QuoteResult, specs entities.DrawingSpecs) {
	if u.quoteRepo == nil {
		return
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:               result.QuoteID,
		DrawingID:        drawingID,
		BaseCost:         result.BaseCost,
		MaterialCost:     result.Breakdown.Material.TotalCost,
		LaborCost:        result.Breakdown.Labor.TotalCost,
		OverheadCost:     result.Breakdown.Overhead.TotalCost,
		MarketAdjustment: result.MarketAdjustment,
		FinalPrice:       result.FinalPrice,
		Currency:         "USD",
		ConfidenceScore:  result.ConfidenceScore,
		Breakdown:        result.Breakdown,
		Status:           entities.QuoteStatusGenerated,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := u.quoteRepo.Create(ctx, q); err != nil {
		log.Printf("[quote][usecase] persist failed quote_id=%s err=%v", result.QuoteID, err)
		return
	}

	if drawingID != "" && u.drawings != nil {
		if _, err := u.drawings.MarkAnalyzed(ctx, drawingID, specs); err != nil {
			log.Printf("[quote][usecase] drawing update failed drawing_id=%s err=%v", drawingID, err)
		}
	}
}

func (u *QuoteUseCase) markDrawingFailed(ctx context.Context, drawingID string) {
	if drawingID == "" || u.drawings == nil {
		return
	}
	if _, err := u.drawings.UpdateStatus(ctx, drawingID, entities.DrawingStatusFailed); err != nil {
		log.Printf("[quote][usecase] drawing status update failed drawing_id=%s err=%v", drawingID, err)
	}
}

// GenerateBulkQuotes processes sources independently. A fatal failure on one
// source is logged and its result omitted; survivors keep input order.
func (u *QuoteUseCase) GenerateBulkQuotes(ctx context.Context, sources []DrawingSource) []entities.QuoteResult {
	results := make([]entities.QuoteResult, 0, len(sources))
	for i, source := range sources {
		result, err := u.GenerateQuote(ctx, source)
		if err != nil {
			log.Printf("[quote][usecase] bulk item failed index=%d file=%s err=%v", i, source.FileName, err)
			continue
		}
		results = append(results, result)
	}
	return results
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// UpdateQuoteStatus applies a reviewer status to a persisted quote.
//
// Only reviewed/approved/rejected/finalized are accepted as input; anything
// else is a request-validation error. In strict mode (the default) the update
// must also follow the forward transition table.
func (u *QuoteUseCase) UpdateQuoteStatus(ctx context.Context, id string, status string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	next := entities.QuoteStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.IsReviewerStatus() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	current, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if !u.permissiveStatus && !current.Status.CanTransitionTo(next) {
		log.Printf("[quote][usecase] status transition rejected quote_id=%s from=%s to=%s", id, current.Status, next)
		return entities.Quote{}, ErrQuoteStatusTransition
	}

	updated, err := u.quoteRepo.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func isPermissiveStatusFlowEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("QUOTE_STATUS_PERMISSIVE")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
