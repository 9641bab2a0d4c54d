// Package services contains the life-simulation engine: event
// selection, turn advancement, choice resolution and the action
// services built on top of the entities model. Services mutate a
// GameState passed in by the caller; they hold no game state of their
// own beyond immutable catalog data and an injected randomness source.
package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// timeNow is swapped in tests for deterministic history timestamps.
var timeNow = time.Now

func newID() string {
	return uuid.New().String()
}

// recordHistory appends one line to the life log at the current age.
func recordHistory(g *entities.GameState, category entities.HistoryCategory, text string) {
	g.History = append(g.History, entities.HistoryEntry{
		ID:        newID(),
		Age:       g.Stats.Age,
		Category:  category,
		Text:      text,
		Timestamp: timeNow(),
	})
}
