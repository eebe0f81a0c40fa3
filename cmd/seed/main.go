package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-directory/internal/config"
	dbpkg "github.com/BruksfildServices01/cafe-directory/internal/db"
	"github.com/BruksfildServices01/cafe-directory/internal/importer"
	infraRepo "github.com/BruksfildServices01/cafe-directory/internal/infra/repository"
	"github.com/BruksfildServices01/cafe-directory/internal/logger"
)

func main() {
	file := flag.String("file", "cafes.xlsx", "workbook to import")
	sheet := flag.String("sheet", importer.DefaultSheet, "sheet holding the cafe rows")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	summary, err := run(context.Background(), cfg, log, *file, *sheet)
	if err != nil {
		log.Error("import aborted",
			zap.String("file", *file),
			zap.Int("inserted", summary.Inserted),
			zap.Error(err),
		)
		_ = log.Sync()
		os.Exit(1)
	}

	log.Info("import finished",
		zap.Int("inserted", summary.Inserted),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("invalid", summary.Invalid),
	)
	_ = log.Sync()
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, file, sheet string) (importer.Summary, error) {
	f, err := os.Open(file)
	if err != nil {
		return importer.Summary{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := importer.ReadCafes(f, sheet)
	if err != nil {
		return importer.Summary{}, err
	}

	db, err := dbpkg.OpenWithLogger(cfg.DBDriver, cfg.DBUrl, log)
	if err != nil {
		return importer.Summary{}, fmt.Errorf("connect database: %w", err)
	}
	defer dbpkg.Close(db)

	if err := dbpkg.Migrate(db); err != nil {
		return importer.Summary{}, fmt.Errorf("migrate: %w", err)
	}

	return importer.Import(ctx, infraRepo.NewCafeGormRepository(db), rows, log)
}
