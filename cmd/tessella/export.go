package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessella-works/tessella/internal/atlas"
	"github.com/tessella-works/tessella/internal/store"
)

func newExportCmd() *cobra.Command {
	var scale int

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every element icon to the export directory as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := store.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			canvases, err := atlas.LoadAll(cfg.ImagesDir, cat, logger)
			if err != nil {
				return err
			}
			n, err := atlas.Export(cfg.ExportDir, cfg.ImagesDir, cat, canvases, scale, logger)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d icons to %s\n", n, cfg.ExportDir)
			return nil
		},
	}

	exportCmd.Flags().IntVar(&scale, "scale", 4, "nearest-neighbor upscale factor for exported icons")

	return exportCmd
}
