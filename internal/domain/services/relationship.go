package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
)

// Costs and tuning for the relationship actions.
const (
	datingMinAge = 16
	datingCost   = 50
	proposalCost = 5000

	proposalBondThreshold = 70
	marriageHappiness     = 30
	rejectionHappiness    = 20
	breakupBondPenalty    = 50
	breakupHappiness      = 15

	partnerGiftCost = 200
	regularGiftCost = 100
	giftBond        = 15
	giftHappiness   = 15
)

// Names handed to event- and action-spawned people.
var randomNames = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Casey", "Riley", "Morgan",
	"Jamie", "Avery", "Quinn", "Skyler", "Reese", "Dakota", "Emerson",
}

// RelationshipService handles the social actions: dating, marriage,
// friendship, and the day-to-day interactions that move bonds around.
type RelationshipService struct {
	rng ports.Rand
}

// NewRelationshipService creates a new RelationshipService.
func NewRelationshipService(rng ports.Rand) *RelationshipService {
	return &RelationshipService{rng: rng}
}

func (s *RelationshipService) randomName() string {
	return randomNames[s.rng.IntN(len(randomNames))]
}

func (s *RelationshipService) find(g *entities.GameState, id string) (*entities.Relationship, error) {
	rel, ok := g.FindRelationship(id)
	if !ok {
		return nil, fmt.Errorf("relationship %q: %w", id, entities.ErrNotFound)
	}
	return rel, nil
}

// StartDating finds a new romantic partner. Requires age 16+, no
// current partner, and a $50 first date. The starting bond is uniform
// in [30, 69].
func (s *RelationshipService) StartDating(g *entities.GameState) (*entities.Relationship, error) {
	if g.Stats.Age < datingMinAge {
		return nil, fmt.Errorf("must be at least %d to date: %w", datingMinAge, entities.ErrIneligible)
	}
	if _, ok := g.Partner(); ok {
		return nil, fmt.Errorf("already in a relationship: %w", entities.ErrIneligible)
	}
	if err := g.SpendMoney(datingCost); err != nil {
		return nil, err
	}

	name := s.randomName()
	rel := entities.Relationship{
		ID:    newID(),
		Name:  name,
		Type:  entities.RelationPartner,
		Bond:  30 + s.rng.IntN(40),
		Alive: true,
	}
	g.Relationships = append(g.Relationships, rel)
	g.ApplyStatDelta(entities.StatDelta{Happiness: 10})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Started dating %s", rel.Name))
	return &rel, nil
}

// Propose asks the current partner to marry. The ring and the wedding
// deposit cost $5,000 either way; acceptance needs bond 70+.
func (s *RelationshipService) Propose(g *entities.GameState) (accepted bool, err error) {
	partner, ok := g.Partner()
	if !ok {
		return false, fmt.Errorf("nobody to propose to: %w", entities.ErrNotFound)
	}
	if partner.Type == entities.RelationSpouse {
		return false, fmt.Errorf("already married: %w", entities.ErrIneligible)
	}
	if err := g.SpendMoney(proposalCost); err != nil {
		return false, err
	}

	if partner.Bond >= proposalBondThreshold {
		partner.Type = entities.RelationSpouse
		g.ApplyStatDelta(entities.StatDelta{Happiness: marriageHappiness})
		g.UnlockAchievement(entities.AchievementMarried)
		recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Married %s", partner.Name))
		return true, nil
	}

	g.ApplyStatDelta(entities.StatDelta{Happiness: -rejectionHappiness})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("%s turned down the proposal", partner.Name))
	return false, nil
}

// BreakUp ends the current romance. The partner becomes an ex rather
// than disappearing.
func (s *RelationshipService) BreakUp(g *entities.GameState) error {
	partner, ok := g.Partner()
	if !ok {
		return fmt.Errorf("nobody to break up with: %w", entities.ErrNotFound)
	}
	partner.Type = entities.RelationEx
	partner.AdjustBond(-breakupBondPenalty)
	g.ApplyStatDelta(entities.StatDelta{Happiness: -breakupHappiness})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Broke up with %s", partner.Name))
	return nil
}

// QualityTime spends an afternoon with someone.
func (s *RelationshipService) QualityTime(g *entities.GameState, id string) error {
	rel, err := s.find(g, id)
	if err != nil {
		return err
	}
	rel.AdjustBond(10)
	g.ApplyStatDelta(entities.StatDelta{Happiness: 5})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Spent quality time with %s", rel.Name))
	return nil
}

// Converse has a conversation with someone.
func (s *RelationshipService) Converse(g *entities.GameState, id string) error {
	rel, err := s.find(g, id)
	if err != nil {
		return err
	}
	rel.AdjustBond(5)
	g.ApplyStatDelta(entities.StatDelta{Happiness: 3})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Had a conversation with %s", rel.Name))
	return nil
}

// Compliment flatters someone.
func (s *RelationshipService) Compliment(g *entities.GameState, id string) error {
	rel, err := s.find(g, id)
	if err != nil {
		return err
	}
	rel.AdjustBond(7)
	g.ApplyStatDelta(entities.StatDelta{Happiness: 2})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Complimented %s", rel.Name))
	return nil
}

// GiveGift buys someone a present. Romantic partners expect the
// expensive kind.
func (s *RelationshipService) GiveGift(g *entities.GameState, id string) error {
	rel, err := s.find(g, id)
	if err != nil {
		return err
	}
	cost := int64(regularGiftCost)
	if rel.IsPartner() {
		cost = partnerGiftCost
	}
	if err := g.SpendMoney(cost); err != nil {
		return err
	}
	rel.AdjustBond(giftBond)
	g.ApplyStatDelta(entities.StatDelta{Happiness: giftHappiness})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Gave %s a gift", rel.Name))
	return nil
}

// AskForMoney asks someone for a handout. Generous close friends pay
// out; everyone resents being asked.
func (s *RelationshipService) AskForMoney(g *entities.GameState, id string) (int64, error) {
	rel, err := s.find(g, id)
	if err != nil {
		return 0, err
	}

	generosity := 50
	if rel.Generosity != nil {
		generosity = *rel.Generosity
	}
	chance := (float64(generosity)*0.5 + float64(rel.Bond)*0.5) / 100

	if s.rng.Float64() < chance {
		amount := int64(100 + s.rng.IntN(501))
		g.AddMoney(amount)
		rel.AdjustBond(-5)
		recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Asked %s for money and got $%d", rel.Name, amount))
		return amount, nil
	}

	rel.AdjustBond(-(10 + s.rng.IntN(16)))
	g.ApplyStatDelta(entities.StatDelta{Happiness: -10})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Asked %s for money and was refused", rel.Name))
	return 0, nil
}

// Argue picks a fight with someone.
func (s *RelationshipService) Argue(g *entities.GameState, id string) error {
	rel, err := s.find(g, id)
	if err != nil {
		return err
	}
	rel.AdjustBond(-(10 + s.rng.IntN(21)))
	g.ApplyStatDelta(entities.StatDelta{Happiness: -8})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Argued with %s", rel.Name))
	return nil
}

// MakeFriend meets someone new. Starting bond is uniform in [40, 69]
// and the personality axes are rolled uniform in [0, 99].
func (s *RelationshipService) MakeFriend(g *entities.GameState) *entities.Relationship {
	generosity := s.rng.IntN(100)
	craziness := s.rng.IntN(100)
	petulance := s.rng.IntN(100)
	name := s.randomName()

	rel := entities.Relationship{
		ID:         newID(),
		Name:       name,
		Type:       entities.RelationFriend,
		Bond:       40 + s.rng.IntN(30),
		Generosity: &generosity,
		Craziness:  &craziness,
		Petulance:  &petulance,
		Alive:      true,
	}
	g.Relationships = append(g.Relationships, rel)
	g.ApplyStatDelta(entities.StatDelta{Happiness: 5})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Became friends with %s", rel.Name))
	return &rel
}

// NewSibling adds a newborn sibling to the family.
func (s *RelationshipService) NewSibling(g *entities.GameState) *entities.Relationship {
	age := 0
	rel := entities.Relationship{
		ID:    newID(),
		Name:  s.randomName(),
		Type:  entities.RelationSibling,
		Bond:  50,
		Age:   &age,
		Alive: true,
	}
	g.Relationships = append(g.Relationships, rel)
	g.ApplyStatDelta(entities.StatDelta{Happiness: 8})
	recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Got a new sibling, %s", rel.Name))
	return &rel
}
