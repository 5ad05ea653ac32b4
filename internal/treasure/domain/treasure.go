package domain

// Treasure is a row in the externally managed treasures table; read-only
// from this service's perspective.
type Treasure struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (Treasure) TableName() string {
	return "treasures"
}

// PrizeEntry is one monetary amount attached to a treasure; a treasure
// may carry several.
type PrizeEntry struct {
	ID         uint `gorm:"primaryKey"`
	TreasureID uint
	Amount     int `gorm:"column:amt"`
}

func (PrizeEntry) TableName() string {
	return "money_values"
}

// TreasureWithPrize is the read model produced by the joined lookups: one
// row per treasure with a single resolved prize amount.
type TreasureWithPrize struct {
	ID         uint
	Name       string
	Latitude   float64
	Longitude  float64
	PrizeValue int
}
