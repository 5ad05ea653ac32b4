package usecase

import (
	"context"

	treasuredto "kitra-backend/internal/treasure/dto"
)

// TreasureUsecase is the geospatial query engine: given a validated query
// it returns every treasure within the radius class, one result per
// treasure, in no guaranteed order.
type TreasureUsecase interface {
	FindNear(ctx context.Context, q *treasuredto.TreasureQuery) ([]treasuredto.TreasureResult, error)
}
