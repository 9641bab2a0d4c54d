package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMajorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "majors",
		Short: "List the fields of study in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(deps *Deps) error {
				catalog, err := loadCatalog(cmd.Context(), deps.Store)
				if err != nil {
					return err
				}

				for _, m := range catalog.Majors {
					fmt.Printf("%-20s %-12s %-10s smarts %d+", m.ID, m.Name, m.Stage, m.RequiredSmarts)
					if m.Difficulty != "" {
						fmt.Printf("  (%s)", m.Difficulty)
					}
					fmt.Println()
				}
				return nil
			})
		},
	}
}
