package model

import "time"

type LocationStats struct {
	Location string `json:"location"`
	Products int64  `json:"products"`
	Items    int64  `json:"items"`
}

type Statistics struct {
	TotalProducts        int64           `json:"total_products"`
	TotalItems           int64           `json:"total_items"`
	TotalValue           float64         `json:"total_value"`
	ExpiringSoon         int64           `json:"expiring_soon"`
	Expired              int64           `json:"expired"`
	ByLocation           []LocationStats `json:"by_location"`
	RecentAdditionsCount int64           `json:"recent_additions_count"`
	RecentAdditionsValue float64         `json:"recent_additions_value"`
}

type WasteStats struct {
	Count int64   `json:"count"`
	Value float64 `json:"value"`
}

type CategoryStats struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
	Items    int64  `json:"items"`
}

type TopScannedEntry struct {
	Name        string    `json:"name"`
	Count       int       `json:"count"`
	LastScanned time.Time `json:"last_scanned"`
}

type CategoryAvgPrice struct {
	Category string  `json:"category"`
	AvgPrice float64 `json:"avg_price"`
}

type AdvancedStatistics struct {
	Waste           WasteStats         `json:"waste"`
	ByCategory      []CategoryStats    `json:"by_category"`
	TopScanned      []TopScannedEntry  `json:"top_scanned"`
	WeeklyAdditions int64              `json:"weekly_additions"`
	AvgByCategory   []CategoryAvgPrice `json:"avg_by_category"`
}
