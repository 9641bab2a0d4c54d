package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/zkgirl/dreamlife/internal/domain/services"
	"github.com/zkgirl/dreamlife/internal/infrastructure/config"
	"github.com/zkgirl/dreamlife/internal/infrastructure/parsers"
)

// CatalogHandler handles catalog initialization and import.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// InitResult contains the result of catalog initialization.
type InitResult struct {
	ConfigPath string
	Seeded     map[string]int
}

// HandleInit writes the default config and seeds the catalog with the
// built-in content.
func (h *CatalogHandler) HandleInit(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("dreamlife already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	seeded, err := h.service.Seed(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		Seeded:     seeded,
	}, nil
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format     string                    // "json", "yaml", or "auto"
	DryRun     bool                      // Validate without saving
	OnConflict services.ConflictStrategy // How to handle existing events
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []services.ImportError
}

// HandleImport imports events from a file into the catalog.
func (h *CatalogHandler) HandleImport(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	events, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	if len(events) == 0 {
		return &ImportResult{}, nil
	}

	serviceOpts := services.ImportOptions{
		DryRun:     opts.DryRun,
		OnConflict: opts.OnConflict,
	}

	serviceResult, err := h.service.Import(ctx, events, serviceOpts)
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Imported: serviceResult.Imported,
		Skipped:  serviceResult.Skipped,
		Errors:   serviceResult.Errors,
	}, nil
}

// ListResult contains per-section record counts.
type ListResult struct {
	Counts map[string]int
}

// HandleList reports how many records each catalog section holds.
func (h *CatalogHandler) HandleList(ctx context.Context) (*ListResult, error) {
	counts, err := h.service.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog counts: %w", err)
	}
	return &ListResult{Counts: counts}, nil
}

// HandleValidate parses and validates an event file without saving.
func (h *CatalogHandler) HandleValidate(ctx context.Context, filePath string, format string) (*ImportResult, error) {
	return h.HandleImport(ctx, filePath, ImportOptions{
		Format: format,
		DryRun: true,
	})
}
