package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
)

// EventSelector filters the immutable event catalog against the
// current life state and picks the next event uniformly at random.
type EventSelector struct {
	events []entities.Event
	rng    ports.Rand
}

// NewEventSelector creates a new EventSelector over the given catalog.
func NewEventSelector(events []entities.Event, rng ports.Rand) *EventSelector {
	return &EventSelector{
		events: events,
		rng:    rng,
	}
}

// Eligible returns every catalog event whose predicates all hold for
// the current state.
func (s *EventSelector) Eligible(g *entities.GameState) []entities.Event {
	var out []entities.Event
	for _, e := range s.events {
		if s.eligible(e, g) {
			out = append(out, e)
		}
	}
	return out
}

func (s *EventSelector) eligible(e entities.Event, g *entities.GameState) bool {
	if e.AgeRange != nil && !e.AgeRange.Contains(g.Stats.Age) {
		return false
	}
	if e.RequireEducation != nil && g.Education.Level != *e.RequireEducation {
		return false
	}
	if e.RequireJob && g.Job == nil {
		return false
	}
	if e.RequireRelationship != nil && !g.HasRelationshipType(*e.RequireRelationship) {
		return false
	}
	return true
}

// Next picks one eligible event uniformly at random. When nothing in
// the catalog is eligible it synthesizes a filler event so a turn
// always has something to show.
func (s *EventSelector) Next(g *entities.GameState) entities.Event {
	eligible := s.Eligible(g)
	if len(eligible) == 0 {
		return fillerEvent(g.Stats.Age)
	}
	return eligible[s.rng.IntN(len(eligible))]
}

func fillerEvent(age int) entities.Event {
	return entities.Event{
		ID:       "year_passed",
		Text:     fmt.Sprintf("Another year has passed. You are now %d years old.", age),
		Category: "filler",
		Choices:  []entities.Choice{{Text: "Continue"}},
	}
}
