package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
)

// Windfall applied when a business-luck directive pays off, and the
// happiness hit when it doesn't.
const (
	businessWindfallMoney     = 100000
	businessWindfallHappiness = 30
	businessFlopHappiness     = 20
)

// ChoiceResolver applies the consequences of picking one choice of a
// pending event.
type ChoiceResolver struct {
	rng ports.Rand
}

// NewChoiceResolver creates a new ChoiceResolver.
func NewChoiceResolver(rng ports.Rand) *ChoiceResolver {
	return &ChoiceResolver{rng: rng}
}

// ResolveResult reports the probabilistic outcomes of a resolved
// choice so the caller can narrate them.
type ResolveResult struct {
	Arrested    bool
	GambleWon   bool
	BusinessHit *bool // nil when the choice had no business-luck directive
}

// Resolve applies choice index i of the event to the state. The money
// gate is checked first and atomically: on insufficient funds it
// returns ErrInsufficientFunds with no state change at all. After the
// gate passes, directives apply in a fixed order; probabilistic ones
// draw from the injected Rand.
func (r *ChoiceResolver) Resolve(g *entities.GameState, event entities.Event, i int) (*ResolveResult, error) {
	if i < 0 || i >= len(event.Choices) {
		return nil, fmt.Errorf("choice %d out of range for event %s", i, event.ID)
	}
	c := event.Choices[i]

	if c.RequireMoney > 0 {
		if err := g.SpendMoney(c.RequireMoney); err != nil {
			return nil, err
		}
	}

	result := &ResolveResult{}

	g.ApplyStatDelta(c.Effects)

	if c.JobOffer != nil {
		g.SetJob(&entities.Job{
			ID:       newID(),
			Title:    c.JobOffer.Title,
			Salary:   c.JobOffer.Salary,
			Category: c.JobOffer.Category,
		})
	}
	if c.SalaryIncrease > 0 && g.Job != nil {
		g.Job.Salary += c.SalaryIncrease
	}
	if c.JobRemove {
		g.Job = nil
	}
	if c.Education != nil {
		g.Education = entities.Education{
			Level: c.Education.Level,
			Major: c.Education.Major,
		}
	}
	if c.AddRel != nil {
		g.Relationships = append(g.Relationships, entities.Relationship{
			ID:    newID(),
			Name:  c.AddRel.Name,
			Type:  c.AddRel.Type,
			Bond:  50,
			Alive: true,
		})
	}
	if c.UpdateRel != nil {
		if rel, ok := g.ResolveRelationship(c.UpdateRel.Target); ok {
			rel.AdjustBond(c.UpdateRel.BondDelta)
			if c.UpdateRel.NewType != "" {
				rel.Type = c.UpdateRel.NewType
			}
		}
	}
	if c.RemoveRel != nil {
		if rel, ok := g.ResolveRelationship(*c.RemoveRel); ok {
			g.RemoveRelationship(rel.ID)
		}
	}
	if c.AddAsset != nil {
		g.Assets = append(g.Assets, entities.Asset{
			ID:            newID(),
			Kind:          c.AddAsset.Kind,
			Name:          c.AddAsset.Name,
			Value:         c.AddAsset.Value,
			YearPurchased: g.Stats.Age,
		})
	}
	if c.CrimeAdd != "" {
		g.Crimes = append(g.Crimes, c.CrimeAdd)
		if c.ArrestChance > 0 && r.rng.Float64() < c.ArrestChance {
			result.Arrested = true
			g.ApplyStatDelta(entities.StatDelta{
				Happiness: -entities.ArrestHappinessPenalty,
				Money:     -entities.ArrestFine,
			})
		}
	}
	if c.GambleWin > 0 && r.rng.Float64() < c.GambleWin {
		result.GambleWon = true
		g.AddMoney(c.GambleAmount)
	}
	if c.BusinessLuck > 0 {
		hit := r.rng.Float64() < c.BusinessLuck
		result.BusinessHit = &hit
		if hit {
			g.ApplyStatDelta(entities.StatDelta{
				Money:     businessWindfallMoney,
				Happiness: businessWindfallHappiness,
			})
		} else {
			g.ApplyStatDelta(entities.StatDelta{Happiness: -businessFlopHappiness})
		}
	}

	recordHistory(g, entities.HistoryEvent, fmt.Sprintf("%s %s", event.Text, c.Text))
	return result, nil
}
