package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
)

// ActivityService runs the activities menu: workouts, salon visits,
// surgery, crimes, gambling, pet adoption, travel, doctor visits and
// social-media signups.
type ActivityService struct {
	activities []entities.Activity
	rng        ports.Rand
}

// NewActivityService creates a new ActivityService over the given
// activity catalog.
func NewActivityService(activities []entities.Activity, rng ports.Rand) *ActivityService {
	return &ActivityService{
		activities: activities,
		rng:        rng,
	}
}

// List returns the full activity catalog.
func (s *ActivityService) List() []entities.Activity {
	return s.activities
}

// Find returns the activity with the given ID.
func (s *ActivityService) Find(id string) (entities.Activity, error) {
	for _, a := range s.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return entities.Activity{}, fmt.Errorf("activity %q: %w", id, entities.ErrNotFound)
}

// ActivityResult reports what an activity did, for narration.
type ActivityResult struct {
	Text       string
	Caught     bool
	GambleWon  bool
	MoneyDelta int64
}

// Do performs one activity. Gates run first (age, then the cost as an
// all-or-nothing debit); the behavior payload decides the rest.
func (s *ActivityService) Do(g *entities.GameState, activityID string) (*ActivityResult, error) {
	activity, err := s.Find(activityID)
	if err != nil {
		return nil, err
	}
	if activity.MinAge > 0 && g.Stats.Age < activity.MinAge {
		return nil, fmt.Errorf("must be at least %d years old: %w", activity.MinAge, entities.ErrIneligible)
	}

	var result *ActivityResult
	switch {
	case activity.Crime != nil:
		result = s.doCrime(g, activity)
	case activity.Gamble != nil:
		result, err = s.doGamble(g, activity)
	case activity.Pet != nil:
		result, err = s.doAdopt(g, activity)
	case activity.SocialPlatform != "":
		result, err = s.doSocialMedia(g, activity)
	default:
		result, err = s.doPlain(g, activity)
	}
	if err != nil {
		return nil, err
	}

	g.ActivitiesDone = append(g.ActivitiesDone, activity.ID)
	return result, nil
}

// doCrime runs a crime attempt. The attempt is always recorded; a
// draw below the catch chance means caught, applying the penalty
// effects and debiting the fine when affordable (an unaffordable fine
// is skipped whole, never partially collected).
func (s *ActivityService) doCrime(g *entities.GameState, activity entities.Activity) *ActivityResult {
	crime := activity.Crime
	g.Crimes = append(g.Crimes, crime.Label)

	if s.rng.Float64() < crime.CatchChance {
		g.ApplyStatDelta(crime.CaughtEffects)
		var fined int64
		if crime.Fine > 0 && g.SpendMoney(crime.Fine) == nil {
			fined = crime.Fine
		}
		recordHistory(g, entities.HistoryActivity, crime.CaughtText)
		return &ActivityResult{Text: crime.CaughtText, Caught: true, MoneyDelta: -fined}
	}

	g.AddMoney(crime.Loot)
	g.ApplyStatDelta(crime.SuccessEffects)
	recordHistory(g, entities.HistoryActivity, crime.SuccessText)
	return &ActivityResult{Text: crime.SuccessText, MoneyDelta: crime.Loot}
}

// doGamble stakes the activity cost on a single draw.
func (s *ActivityService) doGamble(g *entities.GameState, activity entities.Activity) (*ActivityResult, error) {
	if err := g.SpendMoney(activity.Cost); err != nil {
		return nil, err
	}
	gamble := activity.Gamble

	if s.rng.Float64() < gamble.WinChance {
		g.AddMoney(gamble.Payout)
		g.ApplyStatDelta(gamble.WinEffects)
		recordHistory(g, entities.HistoryActivity, gamble.WinText)
		return &ActivityResult{Text: gamble.WinText, GambleWon: true, MoneyDelta: gamble.Payout - activity.Cost}, nil
	}

	g.ApplyStatDelta(gamble.LoseEffects)
	recordHistory(g, entities.HistoryActivity, gamble.LoseText)
	return &ActivityResult{Text: gamble.LoseText, MoneyDelta: -activity.Cost}, nil
}

// doAdopt brings home a new pet. The pet joins both the pets
// collection and the relationship list, so pet-gated events can fire.
func (s *ActivityService) doAdopt(g *entities.GameState, activity entities.Activity) (*ActivityResult, error) {
	if err := g.SpendMoney(activity.Cost); err != nil {
		return nil, err
	}
	spec := activity.Pet

	g.Pets = append(g.Pets, entities.Pet{
		ID:        newID(),
		Name:      spec.Name,
		Species:   spec.Species,
		Breed:     spec.Breed,
		Health:    100,
		Happiness: 100,
	})
	g.Relationships = append(g.Relationships, entities.Relationship{
		ID:    newID(),
		Name:  spec.Name,
		Type:  entities.RelationPet,
		Bond:  50,
		Alive: true,
	})
	g.ApplyStatDelta(activity.Effects)
	recordHistory(g, entities.HistoryActivity, activity.HistoryText)
	return &ActivityResult{Text: activity.HistoryText, MoneyDelta: -activity.Cost}, nil
}

// doSocialMedia creates an account, once per platform.
func (s *ActivityService) doSocialMedia(g *entities.GameState, activity entities.Activity) (*ActivityResult, error) {
	if g.HasSocialMedia(activity.SocialPlatform) {
		return nil, fmt.Errorf("already on %s: %w", activity.SocialPlatform, entities.ErrIneligible)
	}
	g.SocialMedia = append(g.SocialMedia, entities.SocialMedia{Platform: activity.SocialPlatform})
	g.ApplyStatDelta(activity.Effects)
	recordHistory(g, entities.HistoryActivity, activity.HistoryText)
	return &ActivityResult{Text: activity.HistoryText}, nil
}

func (s *ActivityService) doPlain(g *entities.GameState, activity entities.Activity) (*ActivityResult, error) {
	if activity.Cost > 0 {
		if err := g.SpendMoney(activity.Cost); err != nil {
			return nil, err
		}
	}
	g.ApplyStatDelta(activity.Effects)
	recordHistory(g, entities.HistoryActivity, activity.HistoryText)
	return &ActivityResult{Text: activity.HistoryText, MoneyDelta: -activity.Cost}, nil
}
