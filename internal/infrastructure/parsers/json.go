package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// JSONParser parses events from JSON format.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed events.
func (p *JSONParser) Parse(r io.Reader) ([]entities.Event, error) {
	var events []entities.Event

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&events); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return events, nil
}
