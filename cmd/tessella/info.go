package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessella-works/tessella/internal/core"
	"github.com/tessella-works/tessella/internal/query"
	"github.com/tessella-works/tessella/internal/store"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <query>...",
		Short: "Look up elements by name, symbol or atomic number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := store.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			idx := query.NewIndex(cat)

			missing := 0
			for _, q := range args {
				el, ok := idx.Resolve(q)
				if !ok {
					fmt.Printf("%s: not found\n", q)
					missing++
					continue
				}
				printElement(cat, el)
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d queries unmatched", missing, len(args))
			}
			return nil
		},
	}
}

func printElement(cat *core.Catalog, el *core.Element) {
	fmt.Printf("%s (%s)\n", el.Name, el.Symbol)
	if el.Pronouns != "" {
		fmt.Printf("  pronouns: %s\n", el.Pronouns)
	}
	if len(el.Authors) > 0 {
		fmt.Printf("  authors:  %s\n", strings.Join(el.Authors, ", "))
	}
	fmt.Printf("  color:    #%06X\n", el.Color&0xFFFFFF)
	if el.Number != nil {
		fmt.Printf("  number:   %d\n", *el.Number)
	}
	switch src := cat.SourceOf(el.ID).(type) {
	case core.SlicedIcon:
		fmt.Printf("  table:    %s at (%.0f, %.0f)\n", src.Table, src.At.X, src.At.Y)
	case core.EmbeddedIcon:
		fmt.Printf("  image:    %s\n", src.Path)
	}
}
