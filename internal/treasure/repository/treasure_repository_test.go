package repository

import (
	"context"
	"errors"
	"testing"

	"kitra-backend/pkg/geo"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestFindWithMinPrize_JoinsAndGroups(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTreasureRepository(db)

	box := geo.BoundingBox{MinLat: 14.4, MaxLat: 14.7, MinLng: 120.9, MaxLng: 121.1}

	mock.ExpectQuery(`SELECT treasures\.id, treasures\.name, treasures\.latitude, treasures\.longitude, MIN\(money_values\.amt\) AS prize_value FROM "treasures" JOIN money_values ON money_values\.treasure_id = treasures\.id`).
		WithArgs(box.MinLat, box.MaxLat, box.MinLng, box.MaxLng).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude", "prize_value"}).
			AddRow(1, "Golden Chest", 14.55, 121.01, 10).
			AddRow(2, "Silver Urn", 14.56, 121.02, 20))

	rows, err := repo.FindWithMinPrize(context.Background(), box)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, uint(1), rows[0].ID)
	require.Equal(t, "Golden Chest", rows[0].Name)
	require.Equal(t, 10, rows[0].PrizeValue)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindWithPrizeValue_FiltersOnAmount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTreasureRepository(db)

	box := geo.BoundingBox{MinLat: 14.4, MaxLat: 14.7, MinLng: 120.9, MaxLng: 121.1}

	mock.ExpectQuery(`SELECT treasures\.id, treasures\.name, treasures\.latitude, treasures\.longitude, money_values\.amt AS prize_value FROM "treasures" JOIN money_values ON money_values\.treasure_id = treasures\.id`).
		WithArgs(box.MinLat, box.MaxLat, box.MinLng, box.MaxLng, 15).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude", "prize_value"}).
			AddRow(3, "Bronze Coffer", 14.6, 121.05, 15))

	rows, err := repo.FindWithPrizeValue(context.Background(), box, 15)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 15, rows[0].PrizeValue)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindWithMinPrize_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTreasureRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "treasures"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude", "prize_value"}))

	rows, err := repo.FindWithMinPrize(context.Background(), geo.BoundingBox{})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestFindWithMinPrize_QueryFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTreasureRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "treasures"`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindWithMinPrize(context.Background(), geo.BoundingBox{})
	require.Error(t, err)
}
