package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessella-works/tessella/internal/fetch"
	"github.com/tessella-works/tessella/internal/store"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Download table canvases from their configured source pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Fetch.Sources) == 0 {
				return fmt.Errorf("no fetch sources configured; add a [fetch.sources] table to the config")
			}
			cat, err := store.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			f := fetch.New(fetch.Options{
				UserAgent:     cfg.Fetch.UserAgent,
				Timeout:       cfg.Fetch.Timeout,
				RatePerSecond: cfg.Fetch.RatePerSecond,
				Concurrency:   cfg.Fetch.Concurrency,
			}, logger)
			return f.SyncAll(cmd.Context(), cfg.Fetch.Sources, cat, cfg.ImagesDir)
		},
	}
}
