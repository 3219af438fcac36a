package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessella-works/tessella/internal/store"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report schema problems in the catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := store.Lint(cfg.CatalogPath)
			if err != nil {
				return err
			}
			for _, p := range problems {
				fmt.Println(p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problems in %s", len(problems), cfg.CatalogPath)
			}
			fmt.Printf("%s is clean\n", cfg.CatalogPath)
			return nil
		},
	}
}
