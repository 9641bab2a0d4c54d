package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zkgirl/dreamlife/internal/application/handlers"
	"github.com/zkgirl/dreamlife/internal/application/session"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
	"github.com/zkgirl/dreamlife/internal/domain/services"
	"github.com/zkgirl/dreamlife/internal/infrastructure/catalog/sqlite"
	"github.com/zkgirl/dreamlife/internal/infrastructure/config"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config         *config.Config
	Store          *sqlite.Store
	CatalogHandler *handlers.CatalogHandler
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(cfg.CatalogDBPath(cwd))
	if err != nil {
		return fmt.Errorf("opening catalog store: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("ensuring catalog schema: %w", err)
	}

	deps := &Deps{
		Config:         cfg,
		Store:          store,
		CatalogHandler: handlers.NewCatalogHandler(services.NewCatalogService(store)),
	}

	return fn(deps)
}

// loadCatalog reads the stored catalog, falling back to the builtin
// content for any empty section.
func loadCatalog(ctx context.Context, store ports.CatalogStore) (session.Catalog, error) {
	builtin := session.BuiltinCatalog()
	catalog := session.Catalog{}

	events, err := store.ListEvents(ctx)
	if err != nil {
		return catalog, fmt.Errorf("loading events: %w", err)
	}
	catalog.Events = events
	if len(catalog.Events) == 0 {
		catalog.Events = builtin.Events
	}

	careers, err := store.ListCareers(ctx)
	if err != nil {
		return catalog, fmt.Errorf("loading careers: %w", err)
	}
	catalog.Careers = careers
	if len(catalog.Careers) == 0 {
		catalog.Careers = builtin.Careers
	}

	majors, err := store.ListMajors(ctx)
	if err != nil {
		return catalog, fmt.Errorf("loading majors: %w", err)
	}
	catalog.Majors = majors
	if len(catalog.Majors) == 0 {
		catalog.Majors = builtin.Majors
	}

	types, err := store.ListBusinessTypes(ctx)
	if err != nil {
		return catalog, fmt.Errorf("loading business types: %w", err)
	}
	catalog.BusinessTypes = types
	if len(catalog.BusinessTypes) == 0 {
		catalog.BusinessTypes = builtin.BusinessTypes
	}

	items, err := store.ListShopItems(ctx)
	if err != nil {
		return catalog, fmt.Errorf("loading shop items: %w", err)
	}
	catalog.ShopItems = items
	if len(catalog.ShopItems) == 0 {
		catalog.ShopItems = builtin.ShopItems
	}

	activities, err := store.ListActivities(ctx)
	if err != nil {
		return catalog, fmt.Errorf("loading activities: %w", err)
	}
	catalog.Activities = activities
	if len(catalog.Activities) == 0 {
		catalog.Activities = builtin.Activities
	}

	return catalog, nil
}
