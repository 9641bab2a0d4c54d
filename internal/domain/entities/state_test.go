package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_SpendMoney_AllOrNothing(t *testing.T) {
	g := NewGameState()
	g.Stats.Money = 100

	err := g.SpendMoney(101)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(100), g.Stats.Money, "rejected spend must not touch the balance")

	require.NoError(t, g.SpendMoney(100))
	assert.Equal(t, int64(0), g.Stats.Money)
}

func TestGameState_ApplyStatDelta_UnlocksMillionaire(t *testing.T) {
	g := NewGameState()
	g.Stats.Age = 30

	g.ApplyStatDelta(StatDelta{Money: 999_999})
	assert.False(t, achievementUnlocked(g, AchievementMillionaire))

	g.ApplyStatDelta(StatDelta{Money: 1})
	assert.True(t, achievementUnlocked(g, AchievementMillionaire))
}

func TestGameState_ApplyStatDelta_UnlocksFamous(t *testing.T) {
	g := NewGameState()
	g.ApplyStatDelta(StatDelta{Fame: 80})
	assert.True(t, achievementUnlocked(g, AchievementFamous))
}

func TestGameState_UnlockAchievement_RecordsAgeOnce(t *testing.T) {
	g := NewGameState()
	g.Stats.Age = 22
	g.UnlockAchievement(AchievementFirstJob)

	g.Stats.Age = 40
	g.UnlockAchievement(AchievementFirstJob)

	for _, a := range g.Achievements {
		if a.ID == AchievementFirstJob {
			require.NotNil(t, a.UnlockedAt)
			assert.Equal(t, 22, *a.UnlockedAt)
			return
		}
	}
	t.Fatal("achievement not found")
}

func TestGameState_SetJob_UnlocksFirstJob(t *testing.T) {
	g := NewGameState()
	g.SetJob(&Job{ID: "j1", Title: "Cashier", Salary: 25000})
	assert.True(t, achievementUnlocked(g, AchievementFirstJob))
}

func TestGameState_ResolveRelationship(t *testing.T) {
	g := NewGameState()
	g.Relationships = []Relationship{
		{ID: "r1", Name: "Mom", Type: RelationParent},
		{ID: "r2", Name: "Ann", Type: RelationFriend},
		{ID: "r3", Name: "Bob", Type: RelationFriend},
	}

	rel, ok := g.ResolveRelationship(RelationshipRef{ID: "r3"})
	require.True(t, ok)
	assert.Equal(t, "Bob", rel.Name)

	rel, ok = g.ResolveRelationship(RelationshipRef{OfType: RelationFriend})
	require.True(t, ok)
	assert.Equal(t, "Ann", rel.Name, "first of type wins")

	rel, ok = g.ResolveRelationship(RelationshipRef{})
	require.True(t, ok)
	assert.Equal(t, "Mom", rel.Name, "empty ref targets the first relationship")

	_, ok = g.ResolveRelationship(RelationshipRef{ID: "missing"})
	assert.False(t, ok)
}

func TestGameState_EndLife(t *testing.T) {
	g := NewGameState()
	g.EndLife("Old age")
	assert.True(t, g.IsDead)
	assert.True(t, g.GameEnded)
	assert.Equal(t, "Old age", g.CauseOfDeath)
}

func achievementUnlocked(g *GameState, id string) bool {
	for _, a := range g.Achievements {
		if a.ID == id {
			return a.Unlocked
		}
	}
	return false
}
