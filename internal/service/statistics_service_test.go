package service

import (
	"testing"
	"time"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStatistics(t *testing.T) (StatisticsService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewStatisticsService(repository.NewStatisticsRepo(db))
	return svc, db
}

func seedStatsProducts(t *testing.T, db *gorm.DB) {
	t.Helper()
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	inThreeDays := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	inTwoMonths := time.Now().AddDate(0, 2, 0).Format("2006-01-02")

	seed := []model.Product{
		{Name: "Milch", ExpiryDate: yesterday, Quantity: 2, Price: 1.19, Location: "Kühlschrank", Category: "Milchprodukte"},
		{Name: "Joghurt", ExpiryDate: inThreeDays, Quantity: 4, Price: 0.59, Location: "Kühlschrank", Category: "Milchprodukte"},
		{Name: "Reis", ExpiryDate: inTwoMonths, Quantity: 1, Price: 2.49, Location: "Vorratsschrank", Category: "Grundnahrung"},
		{Name: "Salz", Quantity: 1, Location: "Vorratsschrank"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}
}

func TestGetStatistics(t *testing.T) {
	svc, db := newTestStatistics(t)
	seedStatsProducts(t, db)

	stats, err := svc.GetStatistics()
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalProducts)
	assert.Equal(t, int64(8), stats.TotalItems)
	// 2*1.19 + 4*0.59 + 1*2.49 = 7.23
	assert.InDelta(t, 7.23, stats.TotalValue, 0.001)
	assert.Equal(t, int64(1), stats.ExpiringSoon)
	assert.Equal(t, int64(1), stats.Expired)
	assert.Equal(t, int64(4), stats.RecentAdditionsCount)
	assert.InDelta(t, 7.23, stats.RecentAdditionsValue, 0.001)

	byLocation := map[string]model.LocationStats{}
	for _, l := range stats.ByLocation {
		byLocation[l.Location] = l
	}
	require.Len(t, byLocation, 2)
	assert.Equal(t, int64(2), byLocation["Kühlschrank"].Products)
	assert.Equal(t, int64(6), byLocation["Kühlschrank"].Items)
	assert.Equal(t, int64(2), byLocation["Vorratsschrank"].Products)
	assert.Equal(t, int64(2), byLocation["Vorratsschrank"].Items)
}

func TestGetStatistics_EmptyDatabase(t *testing.T) {
	svc, _ := newTestStatistics(t)

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalProducts)
	assert.Equal(t, int64(0), stats.TotalItems)
	assert.Equal(t, 0.0, stats.TotalValue)
	assert.Empty(t, stats.ByLocation)
}

func TestGetStatistics_EmptyExpiryIsNotExpired(t *testing.T) {
	svc, db := newTestStatistics(t)
	require.NoError(t, db.Create(&model.Product{Name: "Honig", Quantity: 1}).Error)

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Expired)
	assert.Equal(t, int64(0), stats.ExpiringSoon)
}

func TestGetAdvancedStatistics(t *testing.T) {
	svc, db := newTestStatistics(t)
	seedStatsProducts(t, db)

	history := []model.BarcodeHistory{
		{EAN: "4006381333931", Name: "Schokolade", ScanCount: 7, LastScanned: time.Now()},
		{EAN: "40123456", Name: "Joghurt", ScanCount: 3, LastScanned: time.Now()},
	}
	for i := range history {
		require.NoError(t, db.Create(&history[i]).Error)
	}

	stats, err := svc.GetAdvancedStatistics()
	require.NoError(t, err)

	// only the expired Milch row counts as waste: 2 * 1.19
	assert.Equal(t, int64(1), stats.Waste.Count)
	assert.InDelta(t, 2.38, stats.Waste.Value, 0.001)

	// Salz has no category and is excluded
	byCategory := map[string]model.CategoryStats{}
	for _, c := range stats.ByCategory {
		byCategory[c.Category] = c
	}
	require.Len(t, byCategory, 2)
	assert.Equal(t, int64(2), byCategory["Milchprodukte"].Count)
	assert.Equal(t, int64(6), byCategory["Milchprodukte"].Items)
	assert.Equal(t, int64(1), byCategory["Grundnahrung"].Count)

	require.Len(t, stats.TopScanned, 2)
	assert.Equal(t, "Schokolade", stats.TopScanned[0].Name)
	assert.Equal(t, 7, stats.TopScanned[0].Count)
	assert.Equal(t, "Joghurt", stats.TopScanned[1].Name)

	assert.Equal(t, int64(4), stats.WeeklyAdditions)

	avg := map[string]float64{}
	for _, a := range stats.AvgByCategory {
		avg[a.Category] = a.AvgPrice
	}
	require.Len(t, avg, 2)
	// (1.19 + 0.59) / 2
	assert.InDelta(t, 0.89, avg["Milchprodukte"], 0.001)
	assert.InDelta(t, 2.49, avg["Grundnahrung"], 0.001)
}

func TestGetAdvancedStatistics_ZeroPriceExcludedFromAverages(t *testing.T) {
	svc, db := newTestStatistics(t)

	require.NoError(t, db.Create(&model.Product{Name: "Gratis", Quantity: 1, Category: "Proben"}).Error)

	stats, err := svc.GetAdvancedStatistics()
	require.NoError(t, err)
	assert.Empty(t, stats.AvgByCategory)
	// the category itself still shows up in the breakdown
	require.Len(t, stats.ByCategory, 1)
	assert.Equal(t, "Proben", stats.ByCategory[0].Category)
}

func TestGetAdvancedStatistics_TopScannedLimit(t *testing.T) {
	svc, db := newTestStatistics(t)

	for i := 0; i < 7; i++ {
		entry := model.BarcodeHistory{
			EAN:         string(rune('a'+i)) + "0000000",
			Name:        "P",
			ScanCount:   i + 1,
			LastScanned: time.Now(),
		}
		require.NoError(t, db.Create(&entry).Error)
	}

	stats, err := svc.GetAdvancedStatistics()
	require.NoError(t, err)
	require.Len(t, stats.TopScanned, 5)
	assert.Equal(t, 7, stats.TopScanned[0].Count)
	assert.Equal(t, 3, stats.TopScanned[4].Count)
}
