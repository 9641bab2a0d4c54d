package entities

// ShopItem is an authored purchasable. Items in the vehicles and
// realestate categories also create an Asset on purchase; everything
// else only applies its stat effects.
type ShopItem struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string    `json:"category" yaml:"category"`
	Price       int64     `json:"price" yaml:"price"`
	MinAge      int       `json:"min_age,omitempty" yaml:"min_age,omitempty"`
	Effects     StatDelta `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Shop categories whose purchases become owned assets.
const (
	ShopCategoryVehicles   = "vehicles"
	ShopCategoryRealEstate = "realestate"
)

// AssetKind returns the asset category a purchase creates, or false
// when the item is consumed on purchase.
func (i ShopItem) AssetKind() (AssetKind, bool) {
	switch i.Category {
	case ShopCategoryVehicles:
		return AssetCar, true
	case ShopCategoryRealEstate:
		return AssetHouse, true
	}
	return "", false
}

// Requirements expresses the purchase gates as a structured set.
func (i ShopItem) Requirements() Requirements {
	reqs := Requirements{
		{Kind: RequireMinMoney, Value: i.Price},
	}
	if i.MinAge > 0 {
		reqs = append(reqs, Requirement{Kind: RequireMinAge, Value: int64(i.MinAge)})
	}
	return reqs
}
