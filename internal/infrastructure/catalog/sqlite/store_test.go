package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// setupTestStore creates an in-memory SQLite catalog store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	err = store.EnsureSchema(context.Background())
	require.NoError(t, err)

	return store
}

func TestNewStore(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		store, err := NewStore(":memory:")
		require.NoError(t, err)
		defer store.Close()
		assert.NotNil(t, store)
		assert.Equal(t, ":memory:", store.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewStore("")
		require.Error(t, err)
	})
}

func TestStore_EnsureSchema(t *testing.T) {
	store := setupTestStore(t)

	for _, table := range sections {
		var count int
		err := store.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	// Idempotent
	require.NoError(t, store.EnsureSchema(context.Background()))
}

func TestStore_Events_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	level := entities.EducationHigh
	events := []entities.Event{
		{
			ID:               "exam_week",
			Text:             "Final exams are coming up.",
			Category:         "school",
			RequireEducation: &level,
			AgeRange:         &entities.AgeRange{Min: 14, Max: 18},
			Choices: []entities.Choice{
				{Text: "Study hard", Effects: entities.StatDelta{Smarts: 5, Happiness: -3}},
				{Text: "Wing it"},
			},
		},
		{
			ID:      "rainy_day",
			Text:    "It rains all day.",
			Choices: []entities.Choice{{Text: "Stay in"}},
		},
	}

	require.NoError(t, store.SaveEvents(ctx, events))

	got, err := store.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Insertion order survives.
	assert.Equal(t, "exam_week", got[0].ID)
	assert.Equal(t, "rainy_day", got[1].ID)

	require.NotNil(t, got[0].RequireEducation)
	assert.Equal(t, entities.EducationHigh, *got[0].RequireEducation)
	require.Len(t, got[0].Choices, 2)
	assert.Equal(t, 5, got[0].Choices[0].Effects.Smarts)
}

func TestStore_SaveEvents_ReplacesAll(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first := []entities.Event{
		{ID: "a", Text: "A.", Choices: []entities.Choice{{Text: "Ok"}}},
		{ID: "b", Text: "B.", Choices: []entities.Choice{{Text: "Ok"}}},
	}
	require.NoError(t, store.SaveEvents(ctx, first))

	second := []entities.Event{
		{ID: "c", Text: "C.", Choices: []entities.Choice{{Text: "Ok"}}},
	}
	require.NoError(t, store.SaveEvents(ctx, second))

	got, err := store.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestStore_Careers_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCareers(ctx, entities.DefaultCareers))

	got, err := store.ListCareers(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(entities.DefaultCareers))
	assert.Equal(t, entities.DefaultCareers[0].Title, got[0].Title)
	assert.Equal(t, entities.DefaultCareers[0].BaseSalary, got[0].BaseSalary)
}

func TestStore_OtherSections_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMajors(ctx, entities.DefaultMajors))
	require.NoError(t, store.SaveBusinessTypes(ctx, entities.DefaultBusinessTypes))
	require.NoError(t, store.SaveShopItems(ctx, entities.DefaultShopItems))
	require.NoError(t, store.SaveActivities(ctx, entities.DefaultActivities))

	majors, err := store.ListMajors(ctx)
	require.NoError(t, err)
	assert.Len(t, majors, len(entities.DefaultMajors))

	types, err := store.ListBusinessTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(entities.DefaultBusinessTypes))

	items, err := store.ListShopItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(entities.DefaultShopItems))

	activities, err := store.ListActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, activities, len(entities.DefaultActivities))
}

func TestStore_ListEvents_Empty(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Counts(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveEvents(ctx, []entities.Event{
		{ID: "a", Text: "A.", Choices: []entities.Choice{{Text: "Ok"}}},
	}))
	require.NoError(t, store.SaveCareers(ctx, entities.DefaultCareers))

	counts, err := store.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, counts["events"])
	assert.Equal(t, len(entities.DefaultCareers), counts["careers"])
	assert.Equal(t, 0, counts["majors"])
}
