package entities

// Business is an owned company. Multiple businesses coexist; each
// contributes its annual revenue on every turn advance.
type Business struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Value      int64  `json:"value"`
	Revenue    int64  `json:"revenue"`
	Employees  int    `json:"employees"`
	Reputation int    `json:"reputation"`
	YearsOwned int    `json:"years_owned"`
}

// UpgradeCost is what the next upgrade costs: half the current value.
func (b *Business) UpgradeCost() int64 {
	return b.Value / 2
}

// Upgrade reinvests the upgrade cost into the business: value grows by
// the cost, revenue by 30%, reputation by 10 (capped), staff by two.
// The caller is responsible for debiting the cost first.
func (b *Business) Upgrade() {
	cost := b.UpgradeCost()
	b.Value += cost
	b.Revenue += b.Revenue * 30 / 100
	b.Reputation = ClampStat(b.Reputation + 10)
	b.Employees += 2
}

// SalePrice is what the business fetches today: value scaled by
// reputation with a 20% premium for a going concern.
func (b *Business) SalePrice() int64 {
	return b.Value * int64(b.Reputation) * 12 / 1000
}
