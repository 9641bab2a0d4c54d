package parsers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// YAMLParser parses events from YAML format.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns parsed events.
func (p *YAMLParser) Parse(r io.Reader) ([]entities.Event, error) {
	var events []entities.Event

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&events); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return events, nil
}
