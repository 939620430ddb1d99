package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var ErrMissingAnthropicAPIKey = errors.New("missing ANTHROPIC_API_KEY")

const (
	defaultModel      = "claude-3-5-haiku-latest"
	extractMaxTokens  = 1024
	validateMaxTokens = 500
	analysisMaxTokens = 300
)

// ClaudeService implements the three AI boundaries of the quote pipeline:
// vision spec extraction, spec validation/correction, and cost analysis.
//
// One service (and one underlying SDK client) is built per process and
// injected into the use cases as interfaces.
type ClaudeService struct {
	client sdk.Client
	model  string
}

var (
	_ interfaces.ISpecExtractionService = (*ClaudeService)(nil)
	_ interfaces.ISpecValidationService = (*ClaudeService)(nil)
	_ interfaces.IAnalysisService       = (*ClaudeService)(nil)
)

func NewClaudeService(apiKey, model string) (*ClaudeService, error) {
	if apiKey == "" {
		log.Printf("[ai][claude] missing ANTHROPIC_API_KEY")
		return nil, ErrMissingAnthropicAPIKey
	}
	if model == "" {
		model = defaultModel
	}
	log.Printf("[ai][claude] client initialized model=%s", model)
	return &ClaudeService{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// specsPayload is the JSON shape the prompts ask the model for.
type specsPayload struct {
	Material         string  `json:"material"`
	MaterialQuantity float64 `json:"materialQuantity"`
	MaterialUnit     string  `json:"materialUnit"`
	Dimensions       struct {
		Length float64 `json:"length"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Unit   string  `json:"unit"`
	} `json:"dimensions"`
	ManufacturingProcess []string `json:"manufacturingProcess"`
	Complexity           int      `json:"complexity"`
	SpecialRequirements  []string `json:"specialRequirements"`
	Confidence           float64  `json:"confidence"`
}

func (p specsPayload) toSpecs() entities.DrawingSpecs {
	return entities.DrawingSpecs{
		Material:         p.Material,
		MaterialQuantity: p.MaterialQuantity,
		MaterialUnit:     p.MaterialUnit,
		Dimensions: entities.Dimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
			Unit:   p.Dimensions.Unit,
		},
		ManufacturingProcess: p.ManufacturingProcess,
		Complexity:           p.Complexity,
		SpecialRequirements:  p.SpecialRequirements,
		Confidence:           p.Confidence,
	}
}

const extractionPrompt = `You are an expert manufacturing engineer analyzing technical drawings.

Extract the following information from this engineering drawing:

1. MATERIAL: What material(s) are used? (e.g., aluminum, steel, plastic)
2. QUANTITY: How much material is needed? (provide number and unit)
3. DIMENSIONS: What are the key dimensions? (length, width, height in appropriate units)
4. MANUFACTURING PROCESS: What processes are required? (e.g., CNC machining, welding, casting, 3D printing)
5. COMPLEXITY: Rate the complexity from 1-10 (1=simple, 10=extremely complex)
6. SPECIAL REQUIREMENTS: Any special requirements? (e.g., surface finish, tolerance, certifications)

Respond in JSON format ONLY, no other text:
{
  "material": "material name",
  "materialQuantity": number,
  "materialUnit": "kg/lb/m3/etc",
  "dimensions": {"length": number, "width": number, "height": number, "unit": "mm/cm/inch/etc"},
  "manufacturingProcess": ["process1", "process2"],
  "complexity": number,
  "specialRequirements": ["requirement1", "requirement2"],
  "confidence": number
}

If any field cannot be determined, use null or empty array.
Confidence should be 0-100 indicating how confident you are in the extraction.`

// ExtractSpecs sends the drawing to the model as an image or PDF document
// block and parses the structured reply. The model's 0-100 confidence is
// converted to the module's [0,1] scale here, at the boundary.
func (s *ClaudeService) ExtractSpecs(ctx context.Context, drawing []byte, mediaType string) (entities.DrawingSpecs, error) {
	encoded := base64.StdEncoding.EncodeToString(drawing)

	var drawingBlock sdk.ContentBlockParamUnion
	if mediaType == "application/pdf" {
		drawingBlock = sdk.NewDocumentBlock(sdk.Base64PDFSourceParam{Data: encoded})
	} else {
		drawingBlock = sdk.NewImageBlockBase64(normalizeImageMediaType(mediaType), encoded)
	}

	msg, err := s.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(s.model),
		MaxTokens: extractMaxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(drawingBlock, sdk.NewTextBlock(extractionPrompt)),
		},
	})
	if err != nil {
		return entities.DrawingSpecs{}, fmt.Errorf("claude extract: %w", err)
	}

	var payload specsPayload
	if err := decodeJSONReply(responseText(msg), &payload); err != nil {
		return entities.DrawingSpecs{}, fmt.Errorf("claude extract: %w", err)
	}

	specs := payload.toSpecs()
	specs.Confidence = normalizeConfidence(specs.Confidence)
	if specs.Confidence == 0 {
		specs.Confidence = 0.5
	}
	return specs.Normalized(), nil
}

const validationPromptFmt = `You are a manufacturing expert. Validate and correct these extracted drawing specifications if needed.

Raw Specifications:
%s

Return ONLY valid JSON in this exact format, correcting any obvious errors:
{
  "material": "corrected material name",
  "materialQuantity": number,
  "materialUnit": "unit",
  "dimensions": {"length": number, "width": number, "height": number, "unit": "unit"},
  "manufacturingProcess": ["process1", "process2"],
  "complexity": number between 1-10,
  "specialRequirements": ["requirement1"],
  "confidence": number between 0 and 1
}`

// ValidateSpecs asks the model to correct the candidate specs. An unreachable
// model is an error (fatal upstream); an unparseable reply falls back to the
// input specs so one malformed completion does not abort the quote.
func (s *ClaudeService) ValidateSpecs(ctx context.Context, specs entities.DrawingSpecs) (entities.DrawingSpecs, error) {
	raw, err := json.MarshalIndent(specs, "", "  ")
	if err != nil {
		return entities.DrawingSpecs{}, err
	}

	msg, err := s.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(s.model),
		MaxTokens: validateMaxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(fmt.Sprintf(validationPromptFmt, raw))),
		},
	})
	if err != nil {
		return entities.DrawingSpecs{}, fmt.Errorf("claude validate: %w", err)
	}

	var payload specsPayload
	if err := decodeJSONReply(responseText(msg), &payload); err != nil {
		log.Printf("[ai][claude] validation reply not parseable, keeping input specs err=%v", err)
		fallback := specs
		if fallback.Confidence == 0 {
			fallback.Confidence = 0.5
		}
		return fallback.Normalized(), nil
	}

	validated := payload.toSpecs()
	if validated.Confidence == 0 {
		validated.Confidence = 0.8
	}
	return validated.Normalized(), nil
}

const analysisPromptFmt = `You are a manufacturing cost analyst. Based on the following product specifications and cost breakdown, provide a brief professional analysis (2-3 sentences) of why this cost estimate is reasonable.

Product Specifications:
- Material: %s (%v %s)
- Dimensions: %vx%vx%v %s
- Manufacturing Processes: %s
- Complexity Level: %d/10
- Special Requirements: %s

Cost Breakdown:
- Material Cost: $%.2f
- Labor Cost: $%.2f (%v hours @ $%v/hr)
- Overhead (%v%%): $%.2f
- Total Base Cost: $%.2f

Provide a brief, professional justification for this cost estimate.`

func (s *ClaudeService) GenerateCostAnalysis(ctx context.Context, specs entities.DrawingSpecs, breakdown entities.CostBreakdown) (string, error) {
	requirements := strings.Join(specs.SpecialRequirements, ", ")
	if requirements == "" {
		requirements = "None"
	}

	prompt := fmt.Sprintf(analysisPromptFmt,
		specs.Material, specs.MaterialQuantity, specs.MaterialUnit,
		specs.Dimensions.Length, specs.Dimensions.Width, specs.Dimensions.Height, specs.Dimensions.Unit,
		strings.Join(specs.ManufacturingProcess, ", "),
		specs.Complexity,
		requirements,
		breakdown.Material.TotalCost,
		breakdown.Labor.TotalCost, breakdown.Labor.Hours, breakdown.Labor.HourlyRate,
		breakdown.Overhead.Percentage, breakdown.Overhead.TotalCost,
		breakdown.BaseCost,
	)

	msg, err := s.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(s.model),
		MaxTokens: analysisMaxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude analysis: %w", err)
	}

	return strings.TrimSpace(responseText(msg)), nil
}

func responseText(msg *sdk.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// decodeJSONReply pulls the outermost JSON object out of a model reply that
// may be wrapped in prose or code fences.
func decodeJSONReply(reply string, v any) error {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return errors.New("no JSON object in model reply")
	}
	return json.Unmarshal([]byte(reply[start:end+1]), v)
}

// normalizeConfidence maps the extraction model's 0-100 self-report onto the
// module's canonical [0,1] scale. Values already at or below 1 pass through.
func normalizeConfidence(confidence float64) float64 {
	if confidence > 1 {
		confidence = confidence / 100
	}
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

func normalizeImageMediaType(mediaType string) string {
	switch mediaType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return mediaType
	}
	return "image/jpeg"
}
