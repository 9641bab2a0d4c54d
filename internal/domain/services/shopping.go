package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// ShoppingService handles shop purchases and asset resale.
type ShoppingService struct {
	items []entities.ShopItem
}

// NewShoppingService creates a new ShoppingService over the given
// shop catalog.
func NewShoppingService(items []entities.ShopItem) *ShoppingService {
	return &ShoppingService{items: items}
}

// List returns the full shop catalog.
func (s *ShoppingService) List() []entities.ShopItem {
	return s.items
}

// Find returns the shop item with the given ID.
func (s *ShoppingService) Find(id string) (entities.ShopItem, error) {
	for _, i := range s.items {
		if i.ID == id {
			return i, nil
		}
	}
	return entities.ShopItem{}, fmt.Errorf("shop item %q: %w", id, entities.ErrNotFound)
}

// Buy purchases a shop item: age gate, then an all-or-nothing debit.
// Vehicle and real-estate purchases become owned assets in pristine
// condition; everything else just applies its effects.
func (s *ShoppingService) Buy(g *entities.GameState, itemID string) (*entities.Asset, error) {
	item, err := s.Find(itemID)
	if err != nil {
		return nil, err
	}
	if item.MinAge > 0 && g.Stats.Age < item.MinAge {
		return nil, fmt.Errorf("must be at least %d years old: %w", item.MinAge, entities.ErrIneligible)
	}
	if err := g.SpendMoney(item.Price); err != nil {
		return nil, err
	}

	g.ApplyStatDelta(item.Effects)

	var asset *entities.Asset
	if kind, ok := item.AssetKind(); ok {
		condition := 100
		a := entities.Asset{
			ID:            newID(),
			Kind:          kind,
			Name:          item.Name,
			Value:         item.Price,
			Condition:     &condition,
			YearPurchased: g.Stats.Age,
		}
		g.Assets = append(g.Assets, a)
		asset = &a
	}

	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Bought %s for $%d", item.Name, item.Price))
	return asset, nil
}

// SellAsset sells an owned asset at its depreciated resale value.
func (s *ShoppingService) SellAsset(g *entities.GameState, assetID string) (int64, error) {
	a, ok := g.FindAsset(assetID)
	if !ok {
		return 0, fmt.Errorf("asset %q: %w", assetID, entities.ErrNotFound)
	}
	price := a.ResaleValue(g.Stats.Age)
	name := a.Name
	g.RemoveAsset(assetID)
	g.AddMoney(price)
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Sold %s for $%d", name, price))
	return price, nil
}
