package entities

import "math"

// AssetKind categorizes an owned asset for depreciation purposes.
type AssetKind string

const (
	AssetHouse AssetKind = "house"
	AssetCar   AssetKind = "car"
	AssetOther AssetKind = "other"
)

// Yearly depreciation rates. Houses hold value far better than
// vehicles and everything else. Total depreciation never exceeds 60%.
const (
	houseDepreciationRate = 0.02
	otherDepreciationRate = 0.15
	maxDepreciation       = 0.6
)

// Asset is an owned possession with a resale market. The purchase
// value is stored; the resale value is always derived from age and
// condition, never stored.
type Asset struct {
	ID            string    `json:"id"`
	Kind          AssetKind `json:"kind"`
	Name          string    `json:"name"`
	Value         int64     `json:"value"`
	Condition     *int      `json:"condition,omitempty"`
	YearPurchased int       `json:"year_purchased"`
}

// ResaleValue returns what the asset sells for at the given character
// age: floor(value × (1 − depreciation) × condition/100), where
// depreciation is min(yearsOwned × rate, 0.6) and an absent condition
// counts as 100.
func (a *Asset) ResaleValue(currentAge int) int64 {
	yearsOwned := currentAge - a.YearPurchased
	if yearsOwned < 0 {
		yearsOwned = 0
	}

	rate := otherDepreciationRate
	if a.Kind == AssetHouse {
		rate = houseDepreciationRate
	}

	depreciation := math.Min(float64(yearsOwned)*rate, maxDepreciation)

	condition := 100
	if a.Condition != nil {
		condition = *a.Condition
	}

	return int64(math.Floor(float64(a.Value) * (1 - depreciation) * float64(condition) / 100))
}
