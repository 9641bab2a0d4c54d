package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Validate(t *testing.T) {
	valid := Event{
		ID:   "e1",
		Text: "Something happened.",
		Choices: []Choice{
			{Text: "Shrug"},
		},
	}
	assert.NoError(t, valid.Validate())
}

func TestEvent_Validate_Rejects(t *testing.T) {
	badLevel := EducationLevel("kindergarten")
	badRel := RelationType("nemesis")

	tests := []struct {
		name    string
		event   Event
		wantMsg string
	}{
		{
			name:    "missing id",
			event:   Event{Text: "x", Choices: []Choice{{Text: "ok"}}},
			wantMsg: "event id is required",
		},
		{
			name:    "missing text",
			event:   Event{ID: "e", Choices: []Choice{{Text: "ok"}}},
			wantMsg: "text is required",
		},
		{
			name:    "no choices",
			event:   Event{ID: "e", Text: "x"},
			wantMsg: "at least one choice",
		},
		{
			name:    "inverted age range",
			event:   Event{ID: "e", Text: "x", AgeRange: &AgeRange{Min: 10, Max: 5}, Choices: []Choice{{Text: "ok"}}},
			wantMsg: "age range",
		},
		{
			name:    "unknown education level",
			event:   Event{ID: "e", Text: "x", RequireEducation: &badLevel, Choices: []Choice{{Text: "ok"}}},
			wantMsg: "unknown education level",
		},
		{
			name:    "unknown relationship type",
			event:   Event{ID: "e", Text: "x", RequireRelationship: &badRel, Choices: []Choice{{Text: "ok"}}},
			wantMsg: "unknown relationship type",
		},
		{
			name:    "choice probability out of range",
			event:   Event{ID: "e", Text: "x", Choices: []Choice{{Text: "ok", GambleWin: 1.5}}},
			wantMsg: "outside [0,1]",
		},
		{
			name:    "negative money gate",
			event:   Event{ID: "e", Text: "x", Choices: []Choice{{Text: "ok", RequireMoney: -1}}},
			wantMsg: "require_money",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDefaultEvents_AllValid(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range DefaultEvents {
		assert.NoError(t, e.Validate(), "event %s", e.ID)
		assert.False(t, seen[e.ID], "duplicate event id %s", e.ID)
		seen[e.ID] = true
	}
}
