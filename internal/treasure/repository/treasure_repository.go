package repository

import (
	"context"

	treasuredomain "kitra-backend/internal/treasure/domain"
	"kitra-backend/pkg/geo"

	"gorm.io/gorm"
)

// TreasureRepository exposes the distance-bounded treasure lookups. The
// bounding box is a coarse prefilter sized by the caller; the exact
// great-circle predicate is applied above this layer. Both lookups join
// money_values, so treasures without prize entries never appear.
type TreasureRepository interface {
	// FindWithMinPrize returns one row per treasure inside the box,
	// carrying the minimum prize amount among its entries.
	FindWithMinPrize(ctx context.Context, box geo.BoundingBox) ([]treasuredomain.TreasureWithPrize, error)
	// FindWithPrizeValue returns one row per treasure inside the box
	// holding at least one prize entry of exactly prizeValue; the row
	// carries that amount.
	FindWithPrizeValue(ctx context.Context, box geo.BoundingBox, prizeValue int) ([]treasuredomain.TreasureWithPrize, error)
}

// treasureRepository implements TreasureRepository interface
type treasureRepository struct {
	db *gorm.DB
}

// NewTreasureRepository creates a new instance of treasureRepository
func NewTreasureRepository(db *gorm.DB) TreasureRepository {
	return &treasureRepository{
		db: db,
	}
}

func (r *treasureRepository) FindWithMinPrize(ctx context.Context, box geo.BoundingBox) ([]treasuredomain.TreasureWithPrize, error) {
	var rows []treasuredomain.TreasureWithPrize
	err := r.db.WithContext(ctx).
		Table("treasures").
		Select("treasures.id, treasures.name, treasures.latitude, treasures.longitude, MIN(money_values.amt) AS prize_value").
		Joins("JOIN money_values ON money_values.treasure_id = treasures.id").
		Where("treasures.latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("treasures.longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Group("treasures.id, treasures.name, treasures.latitude, treasures.longitude").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *treasureRepository) FindWithPrizeValue(ctx context.Context, box geo.BoundingBox, prizeValue int) ([]treasuredomain.TreasureWithPrize, error) {
	var rows []treasuredomain.TreasureWithPrize
	err := r.db.WithContext(ctx).
		Table("treasures").
		Select("treasures.id, treasures.name, treasures.latitude, treasures.longitude, money_values.amt AS prize_value").
		Joins("JOIN money_values ON money_values.treasure_id = treasures.id").
		Where("treasures.latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("treasures.longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Where("money_values.amt = ?", prizeValue).
		Group("treasures.id, treasures.name, treasures.latitude, treasures.longitude, money_values.amt").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
