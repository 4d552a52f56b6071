package main

import (
	"flag"

	"go-apparel-stock/internal/repository"
	"go-apparel-stock/internal/schema"
	"go-apparel-stock/internal/service"
	"go-apparel-stock/pkg/config"
	"go-apparel-stock/pkg/database"
	"go-apparel-stock/pkg/logger"

	"github.com/joho/godotenv"
)

// Writes the inventory snapshot CSV to the export directory without starting
// the API. Useful for cron-style backups of the ledger-joined view.
func main() {
	dir := flag.String("dir", "", "target directory (defaults to STOCK_EXPORT_DIR)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("apparel-stock-export", "info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New("apparel-stock-export", cfg.App.LogLevel)

	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	if err := schema.NewManager(db, log).Ensure(); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	target := cfg.Export.Dir
	if *dir != "" {
		target = *dir
	}

	exportService := service.NewExportService(repository.NewSaleRepo(db))
	path, err := exportService.WriteFile(target)
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	log.Info().Str("path", path).Msg("inventory snapshot written")
}
