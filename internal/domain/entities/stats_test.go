package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Apply_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		start Stats
		delta StatDelta
		want  Stats
	}{
		{
			name:  "clamps high",
			start: Stats{Happiness: 95, Health: 50},
			delta: StatDelta{Happiness: 20, Health: 10},
			want:  Stats{Happiness: 100, Health: 60},
		},
		{
			name:  "clamps low",
			start: Stats{Happiness: 5, Health: 3},
			delta: StatDelta{Happiness: -20, Health: -10},
			want:  Stats{Happiness: 0, Health: 0},
		},
		{
			name:  "zero delta is a no-op",
			start: Stats{Happiness: 42, Health: 77, Smarts: 13, Looks: 9},
			delta: StatDelta{},
			want:  Stats{Happiness: 42, Health: 77, Smarts: 13, Looks: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.Apply(tt.delta)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestStats_Apply_MoneyUnbounded(t *testing.T) {
	s := Stats{Money: 100}

	s.Apply(StatDelta{Money: -500})
	assert.Equal(t, int64(-400), s.Money)

	s.Apply(StatDelta{Money: 10_000_000})
	assert.Equal(t, int64(9_999_600), s.Money)
}

func TestStats_Apply_FameMaterializesOnFirstTouch(t *testing.T) {
	s := Stats{}
	assert.Nil(t, s.Fame)

	s.Apply(StatDelta{Fame: 30})
	if assert.NotNil(t, s.Fame) {
		assert.Equal(t, 30, *s.Fame)
	}

	// Once present it clamps like any other stat.
	s.Apply(StatDelta{Fame: 90})
	assert.Equal(t, 100, *s.Fame)
	s.Apply(StatDelta{Fame: -200})
	assert.Equal(t, 0, *s.Fame)
}

func TestStats_Apply_ApprovalStaysAbsent(t *testing.T) {
	s := Stats{}
	s.Apply(StatDelta{Happiness: 5})
	assert.Nil(t, s.Approval)
}
