package ports

import (
	"context"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// CatalogStore defines the interface for the authored-content catalog:
// events, careers, majors, business types, shop items and activities.
// The catalog is written by the import pipeline and read once at game
// startup; gameplay never mutates it.
type CatalogStore interface {
	// EnsureSchema creates the catalog schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying store.
	Close() error

	// SaveEvents replaces all events in the store.
	SaveEvents(ctx context.Context, events []entities.Event) error

	// ListEvents returns every event in the store.
	ListEvents(ctx context.Context) ([]entities.Event, error)

	// SaveCareers replaces all careers in the store.
	SaveCareers(ctx context.Context, careers []entities.CareerPath) error

	// ListCareers returns every career in the store.
	ListCareers(ctx context.Context) ([]entities.CareerPath, error)

	// SaveMajors replaces all university majors in the store.
	SaveMajors(ctx context.Context, majors []entities.Major) error

	// ListMajors returns every university major in the store.
	ListMajors(ctx context.Context) ([]entities.Major, error)

	// SaveBusinessTypes replaces all business types in the store.
	SaveBusinessTypes(ctx context.Context, types []entities.BusinessType) error

	// ListBusinessTypes returns every business type in the store.
	ListBusinessTypes(ctx context.Context) ([]entities.BusinessType, error)

	// SaveShopItems replaces all shop items in the store.
	SaveShopItems(ctx context.Context, items []entities.ShopItem) error

	// ListShopItems returns every shop item in the store.
	ListShopItems(ctx context.Context) ([]entities.ShopItem, error)

	// SaveActivities replaces all activities in the store.
	SaveActivities(ctx context.Context, activities []entities.Activity) error

	// ListActivities returns every activity in the store.
	ListActivities(ctx context.Context) ([]entities.Activity, error)

	// Counts returns the number of records per catalog section,
	// keyed by section name.
	Counts(ctx context.Context) (map[string]int, error)
}
