package interfaces

import (
	"context"

	"quoteforge/internal/domain/entities"
)

// IDrawingRepository abstracts DynamoDB persistence for Drawing.

type IDrawingRepository interface {
	Create(ctx context.Context, d entities.Drawing) (entities.Drawing, error)
	GetByID(ctx context.Context, id string) (entities.Drawing, error)
	UpdateStatus(ctx context.Context, id string, status entities.DrawingStatus) (entities.Drawing, error)
	MarkAnalyzed(ctx context.Context, id string, specs entities.DrawingSpecs) (entities.Drawing, error)
}
