package mocks

import (
	"context"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// CatalogStore is an in-memory mock implementation of ports.CatalogStore.
type CatalogStore struct {
	Events        []entities.Event
	Careers       []entities.CareerPath
	Majors        []entities.Major
	BusinessTypes []entities.BusinessType
	ShopItems     []entities.ShopItem
	Activities    []entities.Activity

	EnsureErr error
	SaveErr   error
	ListErr   error
}

// EnsureSchema returns the configured error, if any.
func (m *CatalogStore) EnsureSchema(ctx context.Context) error { return m.EnsureErr }

// Close is a no-op.
func (m *CatalogStore) Close() error { return nil }

// SaveEvents stores the events or returns the configured error.
func (m *CatalogStore) SaveEvents(ctx context.Context, events []entities.Event) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Events = events
	return nil
}

// ListEvents returns the configured events or error.
func (m *CatalogStore) ListEvents(ctx context.Context) ([]entities.Event, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Events, nil
}

// SaveCareers stores the careers or returns the configured error.
func (m *CatalogStore) SaveCareers(ctx context.Context, careers []entities.CareerPath) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Careers = careers
	return nil
}

// ListCareers returns the configured careers or error.
func (m *CatalogStore) ListCareers(ctx context.Context) ([]entities.CareerPath, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Careers, nil
}

// SaveMajors stores the majors or returns the configured error.
func (m *CatalogStore) SaveMajors(ctx context.Context, majors []entities.Major) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Majors = majors
	return nil
}

// ListMajors returns the configured majors or error.
func (m *CatalogStore) ListMajors(ctx context.Context) ([]entities.Major, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Majors, nil
}

// SaveBusinessTypes stores the business types or returns the configured error.
func (m *CatalogStore) SaveBusinessTypes(ctx context.Context, types []entities.BusinessType) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.BusinessTypes = types
	return nil
}

// ListBusinessTypes returns the configured business types or error.
func (m *CatalogStore) ListBusinessTypes(ctx context.Context) ([]entities.BusinessType, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.BusinessTypes, nil
}

// SaveShopItems stores the shop items or returns the configured error.
func (m *CatalogStore) SaveShopItems(ctx context.Context, items []entities.ShopItem) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.ShopItems = items
	return nil
}

// ListShopItems returns the configured shop items or error.
func (m *CatalogStore) ListShopItems(ctx context.Context) ([]entities.ShopItem, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ShopItems, nil
}

// SaveActivities stores the activities or returns the configured error.
func (m *CatalogStore) SaveActivities(ctx context.Context, activities []entities.Activity) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Activities = activities
	return nil
}

// ListActivities returns the configured activities or error.
func (m *CatalogStore) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Activities, nil
}

// Counts returns per-section record counts.
func (m *CatalogStore) Counts(ctx context.Context) (map[string]int, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return map[string]int{
		"events":         len(m.Events),
		"careers":        len(m.Careers),
		"majors":         len(m.Majors),
		"business_types": len(m.BusinessTypes),
		"shop_items":     len(m.ShopItems),
		"activities":     len(m.Activities),
	}, nil
}
