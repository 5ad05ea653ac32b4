package usecase

import (
	"context"

	treasuredomain "kitra-backend/internal/treasure/domain"
	treasuredto "kitra-backend/internal/treasure/dto"
	"kitra-backend/internal/treasure/repository"
	"kitra-backend/pkg/geo"
)

// treasureUsecase implements TreasureUsecase interface
type treasureUsecase struct {
	treasureRepo repository.TreasureRepository
}

// NewTreasureUsecase creates a new instance of treasureUsecase
func NewTreasureUsecase(treasureRepo repository.TreasureRepository) TreasureUsecase {
	return &treasureUsecase{
		treasureRepo: treasureRepo,
	}
}

func (u *treasureUsecase) FindNear(ctx context.Context, q *treasuredto.TreasureQuery) ([]treasuredto.TreasureResult, error) {
	radiusMeters := float64(q.Distance) * 1000
	box := geo.NewBoundingBox(q.Latitude, q.Longitude, radiusMeters)

	var (
		rows []treasuredomain.TreasureWithPrize
		err  error
	)
	if q.PrizeValue != nil {
		rows, err = u.treasureRepo.FindWithPrizeValue(ctx, box, *q.PrizeValue)
	} else {
		rows, err = u.treasureRepo.FindWithMinPrize(ctx, box)
	}
	if err != nil {
		return nil, err
	}

	// The box is only a prefilter; apply the exact great-circle bound.
	results := make([]treasuredto.TreasureResult, 0, len(rows))
	for _, row := range rows {
		if geo.Distance(q.Latitude, q.Longitude, row.Latitude, row.Longitude) > radiusMeters {
			continue
		}
		results = append(results, treasuredto.TreasureResult{
			ID:         row.ID,
			Name:       row.Name,
			Latitude:   row.Latitude,
			Longitude:  row.Longitude,
			PrizeValue: row.PrizeValue,
		})
	}
	return results, nil
}
