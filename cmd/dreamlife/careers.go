package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zkgirl/dreamlife/internal/application/handlers"
)

func newCareersCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "careers",
		Short: "List the career paths in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(deps *Deps) error {
				catalog, err := loadCatalog(cmd.Context(), deps.Store)
				if err != nil {
					return err
				}

				for _, c := range catalog.Careers {
					if category != "" && c.Category != category {
						continue
					}
					fmt.Printf("%-28s %s  %s-%s", c.Title, c.Category,
						handlers.FormatMoney(c.BaseSalary), handlers.FormatMoney(c.MaxSalary))
					if c.RequiredEducation != "" {
						fmt.Printf("  requires %s", c.RequiredEducation)
					}
					fmt.Println()
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show careers in this category")

	return cmd
}
