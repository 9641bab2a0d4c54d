// Package parsers provides parsers for importing event catalogs from
// various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// Parser defines the interface for parsing events from various formats.
type Parser interface {
	Parse(r io.Reader) ([]entities.Event, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	default:
		return nil
	}
}
