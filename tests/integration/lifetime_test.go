package integration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkgirl/dreamlife/internal/application/session"
	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/infrastructure/random"
)

// TestLifetime_RandomSeeds plays whole lives birth-to-death on real
// randomness and checks the invariants that must hold regardless of
// the draws.
func TestLifetime_RandomSeeds(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s := session.New(session.BuiltinCatalog(), random.New(seed))
		require.NoError(t, s.CreateCharacter("Robin", "nonbinary", "USA", "Portland"))

		for turn := 0; turn < 1000; turn++ {
			state := s.Snapshot()
			if state.IsDead {
				break
			}

			if state.CurrentEvent != nil {
				settlePendingEvent(t, s, seed)
				continue
			}

			_, err := s.AdvanceYear()
			require.NoError(t, err, "seed %d", seed)

			got := s.Snapshot()
			assertStatBounds(t, seed, got.Stats)
		}

		final := s.Snapshot()
		require.True(t, final.IsDead, "seed %d: life never ended", seed)
		assert.LessOrEqual(t, final.Stats.Age, 120, "seed %d", seed)
		assert.NotEmpty(t, final.CauseOfDeath, "seed %d", seed)
		assert.NotEmpty(t, final.History, "seed %d", seed)

		// Dead lives reject further commands.
		_, err := s.AdvanceYear()
		assert.True(t, errors.Is(err, entities.ErrGameOver), "seed %d", seed)
	}
}

// TestLifetime_SameSeedSamePath replays one seed twice and expects the
// identical life.
func TestLifetime_SameSeedSamePath(t *testing.T) {
	run := func() entities.GameState {
		s := session.New(session.BuiltinCatalog(), random.New(99))
		require.NoError(t, s.CreateCharacter("Robin", "nonbinary", "USA", "Portland"))

		for turn := 0; turn < 1000; turn++ {
			state := s.Snapshot()
			if state.IsDead {
				break
			}
			if state.CurrentEvent != nil {
				settlePendingEvent(t, s, 99)
				continue
			}
			_, err := s.AdvanceYear()
			require.NoError(t, err)
		}
		return s.Snapshot()
	}

	first := run()
	second := run()

	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, first.CauseOfDeath, second.CauseOfDeath)
	assert.Equal(t, len(first.History), len(second.History))
}

// settlePendingEvent answers with the first choice, or dismisses when
// the choice is money-gated beyond the current balance.
func settlePendingEvent(t *testing.T, s *session.Session, seed uint64) {
	t.Helper()
	_, err := s.SelectChoice(0)
	if errors.Is(err, entities.ErrInsufficientFunds) {
		require.NoError(t, s.DismissEvent(), "seed %d", seed)
		return
	}
	require.NoError(t, err, "seed %d", seed)
}

func assertStatBounds(t *testing.T, seed uint64, stats entities.Stats) {
	t.Helper()
	assert.GreaterOrEqual(t, stats.Happiness, 0, "seed %d", seed)
	assert.LessOrEqual(t, stats.Happiness, 100, "seed %d", seed)
	assert.GreaterOrEqual(t, stats.Health, 0, "seed %d", seed)
	assert.LessOrEqual(t, stats.Health, 100, "seed %d", seed)
	assert.GreaterOrEqual(t, stats.Smarts, 0, "seed %d", seed)
	assert.LessOrEqual(t, stats.Smarts, 100, "seed %d", seed)
}
