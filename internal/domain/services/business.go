package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// BusinessService handles founding, upgrading and selling businesses.
type BusinessService struct {
	types []entities.BusinessType
}

// NewBusinessService creates a new BusinessService over the given
// business-type catalog.
func NewBusinessService(types []entities.BusinessType) *BusinessService {
	return &BusinessService{types: types}
}

// List returns the full business-type catalog.
func (s *BusinessService) List() []entities.BusinessType {
	return s.types
}

// Find returns the business type with the given ID.
func (s *BusinessService) Find(id string) (entities.BusinessType, error) {
	for _, t := range s.types {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.BusinessType{}, fmt.Errorf("business type %q: %w", id, entities.ErrNotFound)
}

// Start founds a business of the given type, debiting the startup
// cost. Multiple businesses can run at once; each pays its revenue on
// every year advance.
func (s *BusinessService) Start(g *entities.GameState, typeID string) (*entities.Business, error) {
	t, err := s.Find(typeID)
	if err != nil {
		return nil, err
	}
	if unmet := t.Requirements().Unmet(g.Stats, g.Education); unmet != nil {
		return nil, fmt.Errorf("%s: %w", unmet.Describe(), entities.ErrIneligible)
	}
	if err := g.SpendMoney(t.StartupCost); err != nil {
		return nil, err
	}

	b := t.Found(newID())
	g.Businesses = append(g.Businesses, b)
	recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Started a business: %s", b.Name))
	return &b, nil
}

// Upgrade reinvests half the business's value into it.
func (s *BusinessService) Upgrade(g *entities.GameState, businessID string) error {
	b, ok := g.FindBusiness(businessID)
	if !ok {
		return fmt.Errorf("business %q: %w", businessID, entities.ErrNotFound)
	}
	if err := g.SpendMoney(b.UpgradeCost()); err != nil {
		return err
	}
	b.Upgrade()
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Upgraded %s", b.Name))
	return nil
}

// Sell liquidates a business at its reputation-scaled price.
func (s *BusinessService) Sell(g *entities.GameState, businessID string) (int64, error) {
	b, ok := g.FindBusiness(businessID)
	if !ok {
		return 0, fmt.Errorf("business %q: %w", businessID, entities.ErrNotFound)
	}
	price := b.SalePrice()
	name := b.Name
	g.RemoveBusiness(businessID)
	g.AddMoney(price)
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Sold %s for $%d", name, price))
	return price, nil
}
