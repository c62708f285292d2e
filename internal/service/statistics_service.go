package service

import (
	"math"
	"time"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/repository"
)

type StatisticsService interface {
	GetStatistics() (*model.Statistics, error)
	GetAdvancedStatistics() (*model.AdvancedStatistics, error)
}

type statisticsService struct {
	statsRepo repository.StatisticsRepository
}

func NewStatisticsService(statsRepo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{statsRepo: statsRepo}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *statisticsService) GetStatistics() (*model.Statistics, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	weekFromNow := now.AddDate(0, 0, 7).Format("2006-01-02")

	products, items, value, err := s.statsRepo.Totals()
	if err != nil {
		return nil, err
	}

	expiring, err := s.statsRepo.CountExpiringBetween(today, weekFromNow)
	if err != nil {
		return nil, err
	}

	expired, err := s.statsRepo.CountExpiredBefore(today)
	if err != nil {
		return nil, err
	}

	byLocation, err := s.statsRepo.ByLocation()
	if err != nil {
		return nil, err
	}

	recentCount, recentValue, err := s.statsRepo.AdditionsSince(now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &model.Statistics{
		TotalProducts:        products,
		TotalItems:           items,
		TotalValue:           round2(value),
		ExpiringSoon:         expiring,
		Expired:              expired,
		ByLocation:           byLocation,
		RecentAdditionsCount: recentCount,
		RecentAdditionsValue: round2(recentValue),
	}, nil
}

func (s *statisticsService) GetAdvancedStatistics() (*model.AdvancedStatistics, error) {
	now := time.Now()
	today := now.Format("2006-01-02")

	waste, err := s.statsRepo.Waste(today)
	if err != nil {
		return nil, err
	}
	waste.Value = round2(waste.Value)

	byCategory, err := s.statsRepo.ByCategory()
	if err != nil {
		return nil, err
	}

	topScanned, err := s.statsRepo.TopScanned(5)
	if err != nil {
		return nil, err
	}

	weekly, _, err := s.statsRepo.AdditionsSince(now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	avgByCategory, err := s.statsRepo.AvgPriceByCategory()
	if err != nil {
		return nil, err
	}
	for i := range avgByCategory {
		avgByCategory[i].AvgPrice = round2(avgByCategory[i].AvgPrice)
	}

	return &model.AdvancedStatistics{
		Waste:           waste,
		ByCategory:      byCategory,
		TopScanned:      topScanned,
		WeeklyAdditions: weekly,
		AvgByCategory:   avgByCategory,
	}, nil
}
