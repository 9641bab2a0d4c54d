package services

import (
	"context"
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
)

// ConflictStrategy defines how to handle existing events during import.
type ConflictStrategy string

const (
	// ConflictSkip skips events that already exist (by ID).
	ConflictSkip ConflictStrategy = "skip"
	// ConflictOverwrite overwrites existing events with new data.
	ConflictOverwrite ConflictStrategy = "overwrite"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun     bool             // Validate without saving
	OnConflict ConflictStrategy // How to handle existing events
}

// ImportError represents an error for a specific event during import.
type ImportError struct {
	Index   int    // Position in the input (1-indexed)
	EventID string // The offending event ID, if known
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("event %d: %s", e.Index, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// CatalogService manages the authored-content catalog: seeding the
// built-in defaults and importing custom event packs.
type CatalogService struct {
	store ports.CatalogStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store ports.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// Seed initializes the catalog schema and writes the built-in content.
// Sections that already hold records are left untouched unless force
// is set. It returns the number of records written per section.
func (s *CatalogService) Seed(ctx context.Context, force bool) (map[string]int, error) {
	if err := s.store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	counts, err := s.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog counts: %w", err)
	}

	seeded := make(map[string]int)

	type section struct {
		name string
		size int
		save func(context.Context) error
	}
	sections := []section{
		{"events", len(entities.DefaultEvents), func(ctx context.Context) error {
			return s.store.SaveEvents(ctx, entities.DefaultEvents)
		}},
		{"careers", len(entities.DefaultCareers), func(ctx context.Context) error {
			return s.store.SaveCareers(ctx, entities.DefaultCareers)
		}},
		{"majors", len(entities.DefaultMajors), func(ctx context.Context) error {
			return s.store.SaveMajors(ctx, entities.DefaultMajors)
		}},
		{"business_types", len(entities.DefaultBusinessTypes), func(ctx context.Context) error {
			return s.store.SaveBusinessTypes(ctx, entities.DefaultBusinessTypes)
		}},
		{"shop_items", len(entities.DefaultShopItems), func(ctx context.Context) error {
			return s.store.SaveShopItems(ctx, entities.DefaultShopItems)
		}},
		{"activities", len(entities.DefaultActivities), func(ctx context.Context) error {
			return s.store.SaveActivities(ctx, entities.DefaultActivities)
		}},
	}

	for _, sec := range sections {
		if counts[sec.name] > 0 && !force {
			continue
		}
		if err := sec.save(ctx); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", sec.name, err)
		}
		seeded[sec.name] = sec.size
	}

	return seeded, nil
}

// Import validates and imports events into the catalog. Any invalid
// entry aborts the whole import; the errors describe each one.
func (s *CatalogService) Import(ctx context.Context, events []entities.Event, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	valid, validationErrors := s.validateEvents(events)
	result.Errors = validationErrors

	if len(result.Errors) > 0 || len(valid) == 0 {
		return result, nil
	}

	if opts.DryRun {
		result.Imported = len(valid)
		return result, nil
	}

	existing, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading existing events: %w", err)
	}

	merged, imported, skipped := mergeEvents(existing, valid, opts.OnConflict)
	if err := s.store.SaveEvents(ctx, merged); err != nil {
		return nil, fmt.Errorf("saving events: %w", err)
	}

	result.Imported = imported
	result.Skipped = skipped
	return result, nil
}

// Counts returns the number of records per catalog section.
func (s *CatalogService) Counts(ctx context.Context) (map[string]int, error) {
	return s.store.Counts(ctx)
}

// validateEvents checks each event and returns the valid ones along
// with per-entry errors. Duplicate IDs within the batch are rejected.
func (s *CatalogService) validateEvents(events []entities.Event) ([]entities.Event, []ImportError) {
	valid := make([]entities.Event, 0, len(events))
	var errs []ImportError
	seen := make(map[string]bool, len(events))

	for i := range events {
		e := &events[i]
		if err := e.Validate(); err != nil {
			errs = append(errs, ImportError{Index: i + 1, EventID: e.ID, Message: err.Error()})
			continue
		}
		if seen[e.ID] {
			errs = append(errs, ImportError{
				Index:   i + 1,
				EventID: e.ID,
				Message: fmt.Sprintf("duplicate event id %q", e.ID),
			})
			continue
		}
		seen[e.ID] = true
		valid = append(valid, *e)
	}

	return valid, errs
}

// mergeEvents combines existing and incoming events under the given
// conflict strategy. Existing order is preserved; new events append.
func mergeEvents(existing, incoming []entities.Event, onConflict ConflictStrategy) (merged []entities.Event, imported, skipped int) {
	index := make(map[string]int, len(existing))
	merged = make([]entities.Event, len(existing))
	copy(merged, existing)
	for i := range merged {
		index[merged[i].ID] = i
	}

	for i := range incoming {
		e := incoming[i]
		pos, exists := index[e.ID]
		if !exists {
			index[e.ID] = len(merged)
			merged = append(merged, e)
			imported++
			continue
		}
		if onConflict == ConflictOverwrite {
			merged[pos] = e
			imported++
		} else {
			skipped++
		}
	}

	return merged, imported, skipped
}
