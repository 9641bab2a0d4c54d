package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/mocks"
)

func eventWith(c entities.Choice) entities.Event {
	return entities.Event{ID: "test", Text: "Something happened.", Choices: []entities.Choice{c}}
}

func TestChoiceResolver_Resolve_OutOfRange(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()
	e := eventWith(entities.Choice{Text: "ok"})

	_, err := r.Resolve(g, e, 1)
	assert.Error(t, err)
	_, err = r.Resolve(g, e, -1)
	assert.Error(t, err)
}

func TestChoiceResolver_Resolve_MoneyGateAtomic(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()
	g.Stats.Money = 99
	g.Stats.Happiness = 50

	e := eventWith(entities.Choice{
		Text:         "buy",
		RequireMoney: 100,
		Effects:      entities.StatDelta{Happiness: 10},
		AddAsset:     &entities.AssetAdd{Kind: entities.AssetCar, Name: "Bike", Value: 100},
	})

	_, err := r.Resolve(g, e, 0)
	assert.ErrorIs(t, err, entities.ErrInsufficientFunds)
	assert.Equal(t, int64(99), g.Stats.Money, "no partial debit")
	assert.Equal(t, 50, g.Stats.Happiness, "no effects on rejection")
	assert.Empty(t, g.Assets, "no asset on rejection")
	assert.Empty(t, g.History, "no history on rejection")
}

func TestChoiceResolver_Resolve_EffectsAndAsset(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()
	g.Stats.Age = 25
	g.Stats.Money = 5000

	e := eventWith(entities.Choice{
		Text:         "buy",
		RequireMoney: 4000,
		AddAsset:     &entities.AssetAdd{Kind: entities.AssetCar, Name: "Used Hatchback", Value: 4000},
	})

	_, err := r.Resolve(g, e, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), g.Stats.Money)
	require.Len(t, g.Assets, 1)
	assert.Equal(t, entities.AssetCar, g.Assets[0].Kind)
	assert.Equal(t, 25, g.Assets[0].YearPurchased)
	assert.NotEmpty(t, g.Assets[0].ID)
}

func TestChoiceResolver_Resolve_JobDirectives(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()

	_, err := r.Resolve(g, eventWith(entities.Choice{
		Text:     "take it",
		JobOffer: &entities.JobOffer{Title: "Store Clerk", Salary: 18000, Category: "Retail"},
	}), 0)
	require.NoError(t, err)
	require.NotNil(t, g.Job)
	assert.Equal(t, "Store Clerk", g.Job.Title)
	assert.Equal(t, int64(18000), g.Job.Salary)

	_, err = r.Resolve(g, eventWith(entities.Choice{Text: "grind", SalaryIncrease: 5000}), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(23000), g.Job.Salary)

	_, err = r.Resolve(g, eventWith(entities.Choice{Text: "laid off", JobRemove: true}), 0)
	require.NoError(t, err)
	assert.Nil(t, g.Job)
}

func TestChoiceResolver_Resolve_SalaryIncreaseWithoutJob(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()

	_, err := r.Resolve(g, eventWith(entities.Choice{Text: "raise", SalaryIncrease: 5000}), 0)
	assert.NoError(t, err, "a raise with no job is a no-op, not an error")
	assert.Nil(t, g.Job)
}

func TestChoiceResolver_Resolve_RelationshipAdd(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()

	_, err := r.Resolve(g, eventWith(entities.Choice{
		Text:   "keep it",
		AddRel: &entities.RelationshipAdd{Name: "Mittens", Type: entities.RelationPet},
	}), 0)
	require.NoError(t, err)
	require.Len(t, g.Relationships, 1)
	assert.Equal(t, 50, g.Relationships[0].Bond)
	assert.True(t, g.Relationships[0].Alive)
}

func TestChoiceResolver_Resolve_RelationshipUpdateTargetsID(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()
	g.Relationships = []entities.Relationship{
		{ID: "r1", Name: "Ann", Type: entities.RelationFriend, Bond: 50},
		{ID: "r2", Name: "Bob", Type: entities.RelationFriend, Bond: 50},
	}

	_, err := r.Resolve(g, eventWith(entities.Choice{
		Text:      "fight",
		UpdateRel: &entities.RelationshipEdit{Target: entities.RelationshipRef{ID: "r2"}, BondDelta: -10},
	}), 0)
	require.NoError(t, err)
	assert.Equal(t, 50, g.Relationships[0].Bond)
	assert.Equal(t, 40, g.Relationships[1].Bond, "explicit ID wins over first match")
}

func TestChoiceResolver_Resolve_RelationshipUpdateFallsBackToFirst(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()
	g.Relationships = []entities.Relationship{
		{ID: "r1", Name: "Ann", Type: entities.RelationFriend, Bond: 50},
		{ID: "r2", Name: "Bob", Type: entities.RelationFriend, Bond: 50},
	}

	_, err := r.Resolve(g, eventWith(entities.Choice{
		Text:      "drift apart",
		RemoveRel: &entities.RelationshipRef{},
	}), 0)
	require.NoError(t, err)
	require.Len(t, g.Relationships, 1)
	assert.Equal(t, "Bob", g.Relationships[0].Name)
}

func TestChoiceResolver_Resolve_MissingRelationshipTargetIsNoop(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()

	_, err := r.Resolve(g, eventWith(entities.Choice{
		Text:      "fight",
		UpdateRel: &entities.RelationshipEdit{Target: entities.RelationshipRef{ID: "ghost"}, BondDelta: -10},
	}), 0)
	assert.NoError(t, err)
}

func TestChoiceResolver_Resolve_ArrestDirection(t *testing.T) {
	// With catch chance 0.4, a draw of 0.3 is caught and 0.5 walks.
	choice := entities.Choice{Text: "steal", CrimeAdd: "Petty Theft", ArrestChance: 0.4}

	g := entities.NewGameState()
	g.Stats.Happiness = 50
	r := NewChoiceResolver(&mocks.Rand{Floats: []float64{0.3}})
	result, err := r.Resolve(g, eventWith(choice), 0)
	require.NoError(t, err)
	assert.True(t, result.Arrested)
	assert.Equal(t, 30, g.Stats.Happiness)
	assert.Equal(t, int64(-1000), g.Stats.Money)
	assert.Equal(t, []string{"Petty Theft"}, g.Crimes)

	g = entities.NewGameState()
	g.Stats.Happiness = 50
	r = NewChoiceResolver(&mocks.Rand{Floats: []float64{0.5}})
	result, err = r.Resolve(g, eventWith(choice), 0)
	require.NoError(t, err)
	assert.False(t, result.Arrested)
	assert.Equal(t, 50, g.Stats.Happiness)
	assert.Equal(t, int64(0), g.Stats.Money)
	assert.Equal(t, []string{"Petty Theft"}, g.Crimes, "the crime is recorded either way")
}

func TestChoiceResolver_Resolve_Gamble(t *testing.T) {
	choice := entities.Choice{Text: "scratch", GambleWin: 0.1, GambleAmount: 500}

	g := entities.NewGameState()
	r := NewChoiceResolver(&mocks.Rand{Floats: []float64{0.05}})
	result, err := r.Resolve(g, eventWith(choice), 0)
	require.NoError(t, err)
	assert.True(t, result.GambleWon)
	assert.Equal(t, int64(500), g.Stats.Money)

	g = entities.NewGameState()
	r = NewChoiceResolver(&mocks.Rand{Floats: []float64{0.95}})
	result, err = r.Resolve(g, eventWith(choice), 0)
	require.NoError(t, err)
	assert.False(t, result.GambleWon)
	assert.Equal(t, int64(0), g.Stats.Money)
}

func TestChoiceResolver_Resolve_BusinessLuck(t *testing.T) {
	choice := entities.Choice{Text: "invest", BusinessLuck: 0.35}

	g := entities.NewGameState()
	g.Stats.Happiness = 50
	r := NewChoiceResolver(&mocks.Rand{Floats: []float64{0.2}})
	result, err := r.Resolve(g, eventWith(choice), 0)
	require.NoError(t, err)
	require.NotNil(t, result.BusinessHit)
	assert.True(t, *result.BusinessHit)
	assert.Equal(t, int64(100000), g.Stats.Money)
	assert.Equal(t, 80, g.Stats.Happiness)

	g = entities.NewGameState()
	g.Stats.Happiness = 50
	r = NewChoiceResolver(&mocks.Rand{Floats: []float64{0.9}})
	result, err = r.Resolve(g, eventWith(choice), 0)
	require.NoError(t, err)
	assert.False(t, *result.BusinessHit)
	assert.Equal(t, int64(0), g.Stats.Money)
	assert.Equal(t, 30, g.Stats.Happiness)
}

func TestChoiceResolver_Resolve_EducationUpdate(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()
	g.Education = entities.Education{Level: entities.EducationHigh, Graduated: true}

	_, err := r.Resolve(g, eventWith(entities.Choice{
		Text:      "enroll",
		Education: &entities.EducationUpdate{Level: entities.EducationUniversity, Major: "law"},
	}), 0)
	require.NoError(t, err)
	assert.Equal(t, entities.EducationUniversity, g.Education.Level)
	assert.Equal(t, "law", g.Education.Major)
	assert.False(t, g.Education.Graduated, "enrollment resets the graduated flag")
}

func TestChoiceResolver_Resolve_RecordsHistory(t *testing.T) {
	r := NewChoiceResolver(&mocks.Rand{})
	g := entities.NewGameState()
	g.Stats.Age = 7

	_, err := r.Resolve(g, eventWith(entities.Choice{Text: "Shrug"}), 0)
	require.NoError(t, err)
	require.Len(t, g.History, 1)
	assert.Equal(t, entities.HistoryEvent, g.History[0].Category)
	assert.Equal(t, 7, g.History[0].Age)
}
