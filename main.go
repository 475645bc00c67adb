package main

import (
	"fmt"
	"os"

	"oem-insights/config"
	"oem-insights/ingest"
	"oem-insights/models"
	"oem-insights/services"
	"oem-insights/storage"
	"oem-insights/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	logger.Info("=== OEM Market Insights starting ===")
	logger.Info("Config — sources: %d | concurrency: %d | rate: %.1f/s | retries: %d",
		len(cfg.DataSources), cfg.MaxConcurrency, cfg.RateLimitPerSec, cfg.MaxRetries)

	fetcher := ingest.NewFetcher(cfg, logger)
	snapshot := fetcher.Fetch()
	if len(snapshot) == 0 {
		logger.Warn("Snapshot is empty — report will be all zeros")
	}

	analyticsSvc := services.NewAnalyticsService(logger)
	bundle := analyticsSvc.Generate(snapshot)
	analyticsSvc.Print(bundle)

	tableSvc := services.NewTableService(logger)
	export := tableSvc.ExportCSV(snapshot, models.DefaultQuery())

	writer, err := storage.NewCSVWriter(cfg.ExportPath)
	if err != nil {
		logger.Error("Failed to create export writer: %v", err)
		os.Exit(1)
	}
	defer writer.Close()

	if err := writer.Write(export); err != nil {
		logger.Error("Export write failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Snapshot exported to %s (%d records)", cfg.ExportPath, len(snapshot))

	fmt.Printf("  Done. Report above | Export → %s\n\n", cfg.ExportPath)
}
