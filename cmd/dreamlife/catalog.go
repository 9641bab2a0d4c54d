package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zkgirl/dreamlife/internal/application/handlers"
	"github.com/zkgirl/dreamlife/internal/domain/services"
	"github.com/zkgirl/dreamlife/internal/infrastructure/catalog/sqlite"
	"github.com/zkgirl/dreamlife/internal/infrastructure/config"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the authored content catalog",
	}

	cmd.AddCommand(
		newCatalogInitCmd(),
		newCatalogImportCmd(),
		newCatalogListCmd(),
		newCatalogValidateCmd(),
	)

	return cmd
}

func newCatalogInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config and seed the catalog with built-in content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogInit(cmd.Context())
		},
	}
}

func runCatalogInit(ctx context.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	// The catalog database lives inside the config directory, which
	// must exist before the store can create its file.
	if err := os.MkdirAll(config.ConfigDir(cwd), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	store, err := sqlite.NewStore(config.Default().CatalogDBPath(cwd))
	if err != nil {
		return fmt.Errorf("opening catalog store: %w", err)
	}
	defer store.Close()

	handler := handlers.NewCatalogHandler(services.NewCatalogService(store))

	result, err := handler.HandleInit(ctx, cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized dreamlife in %s\n", result.ConfigPath)
	for _, section := range []string{"events", "careers", "majors", "business_types", "shop_items", "activities"} {
		if n, ok := result.Seeded[section]; ok {
			fmt.Printf("  seeded %s: %d\n", section, n)
		}
	}
	return nil
}

type catalogImportFlags struct {
	format     string
	dryRun     bool
	onConflict string
}

func newCatalogImportCmd() *cobra.Command {
	var flags catalogImportFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from a JSON or YAML pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogImport(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, yaml, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")
	cmd.Flags().StringVar(&flags.onConflict, "on-conflict", "skip", "Conflict handling (skip, overwrite)")

	return cmd
}

func runCatalogImport(ctx context.Context, filePath string, flags catalogImportFlags) error {
	if flags.onConflict != "skip" && flags.onConflict != "overwrite" {
		return fmt.Errorf("invalid --on-conflict value %q (valid: skip, overwrite)", flags.onConflict)
	}

	return withDeps(func(deps *Deps) error {
		opts := handlers.ImportOptions{
			Format:     flags.format,
			DryRun:     flags.dryRun,
			OnConflict: services.ConflictStrategy(flags.onConflict),
		}

		fmt.Printf("Importing %s...\n", filePath)

		result, err := deps.CatalogHandler.HandleImport(ctx, filePath, opts)
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}

		printImportResult(result, flags.dryRun)
		return nil
	})
}

func printImportResult(result *handlers.ImportResult, dryRun bool) {
	if len(result.Errors) > 0 {
		fmt.Printf("\nValidation errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e.Error())
		}
	}

	fmt.Println()
	if dryRun {
		fmt.Printf("Dry run: %d events would be imported", result.Imported)
	} else {
		fmt.Printf("Imported: %d events", result.Imported)
	}
	if result.Skipped > 0 {
		fmt.Printf(", %d skipped (already exist)", result.Skipped)
	}
	fmt.Println()
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show per-section catalog record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(deps *Deps) error {
				result, err := deps.CatalogHandler.HandleList(cmd.Context())
				if err != nil {
					return err
				}
				for _, section := range []string{"events", "careers", "majors", "business_types", "shop_items", "activities"} {
					fmt.Printf("%-15s %d\n", section, result.Counts[section])
				}
				return nil
			})
		},
	}
}

func newCatalogValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an event pack without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(deps *Deps) error {
				result, err := deps.CatalogHandler.HandleValidate(cmd.Context(), args[0], format)
				if err != nil {
					return err
				}
				printImportResult(result, true)
				if len(result.Errors) > 0 {
					return fmt.Errorf("%d invalid events", len(result.Errors))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "File format (json, yaml, auto)")

	return cmd
}
