// Command tessedit opens the element catalog editor.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"go.uber.org/zap"

	"github.com/tessella-works/tessella/internal/atlas"
	"github.com/tessella-works/tessella/internal/config"
	"github.com/tessella-works/tessella/internal/logging"
	"github.com/tessella-works/tessella/internal/store"
	"github.com/tessella-works/tessella/internal/vis"
	"github.com/tessella-works/tessella/internal/vis/state"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.Logging)

	cat, err := store.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("catalog load failed", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	canvases, err := atlas.LoadAll(cfg.ImagesDir, cat, logger)
	if err != nil {
		logger.Fatal("canvas load failed", zap.String("dir", cfg.ImagesDir), zap.Error(err))
	}
	session := state.NewSession(cat, canvases, cfg.DefaultTable, cfg.HiddenTables, logger)

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Tessella"),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)

		application := vis.NewApp(session, cfg.CatalogPath, logger)
		if err := application.Run(window); err != nil {
			logger.Fatal("editor window failed", zap.Error(err))
		}
		logging.Sync(logger)
		os.Exit(0)
	}()
	app.Main()
}
