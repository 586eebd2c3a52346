package main

import (
	"fmt"
	"os"
	"time"

	"jaipur-auction-scraper/config"
	"jaipur-auction-scraper/models"
	"jaipur-auction-scraper/pipeline"
	"jaipur-auction-scraper/scraper"
	"jaipur-auction-scraper/scraper/bankeauctions"
	"jaipur-auction-scraper/scraper/drt"
	"jaipur-auction-scraper/scraper/eauctionsindia"
	"jaipur-auction-scraper/scraper/ibapi"
	"jaipur-auction-scraper/scraper/mstc"
	"jaipur-auction-scraper/services"
	"jaipur-auction-scraper/storage"
	"jaipur-auction-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Jaipur Auction Aggregator starting ===")
	logger.Info("Config — pages/source: %d | concurrency: %d | rate: %dms",
		cfg.MaxPagesPerSource, cfg.MaxConcurrency, cfg.RateLimitMs)

	// Registration order doubles as the dedup tie-break: when the same
	// auction shows up on several portals, the earlier portal's record
	// survives.
	adapters := []scraper.Adapter{
		eauctionsindia.New(cfg, logger),
		drt.New(cfg, logger),
		mstc.New(cfg, logger),
		bankeauctions.New(cfg, logger),
		ibapi.New(cfg, logger), // headless; may contribute zero records
	}

	var raw []models.RawCandidate
	for _, a := range adapters {
		candidates, err := a.Fetch()
		if err != nil {
			logger.Error("[main] %s failed (non-fatal): %v", a.Name(), err)
		}
		logger.Info("[main] %s contributed %d candidates", a.Name(), len(candidates))
		raw = append(raw, candidates...)
	}

	if len(raw) == 0 {
		logger.Error("No candidates from any portal. Exiting.")
		os.Exit(1)
	}

	logger.Info("Collected %d raw candidates — writing raw dump...", len(raw))

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
	} else {
		if err := csvWriter.WriteRaw(raw); err != nil {
			logger.Error("CSV write failed: %v", err)
		}
		_ = csvWriter.Close()
	}

	p := pipeline.New(logger)
	catalogue := p.Consolidate(raw)

	if len(catalogue) == 0 {
		logger.Error("Every candidate was filtered out. Exiting.")
		os.Exit(1)
	}

	jsonWriter := storage.NewJSONWriter(cfg.JSONOutputPath)
	if err := jsonWriter.Write(catalogue); err != nil {
		logger.Error("Catalogue write failed: %v", err)
	} else {
		logger.Info("Wrote %d listings to %s at %s",
			len(catalogue), cfg.JSONOutputPath, time.Now().Format(time.RFC3339))
	}

	pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Warn("PostgreSQL unavailable, catalogue kept on disk only: %v", err)
	} else {
		defer pgWriter.Close()
		if err := pgWriter.Write(catalogue); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else {
			logger.Info("Catalogue stored in PostgreSQL (table: auction_listings)")
		}
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(catalogue)
	insightSvc.Print(report)

	fmt.Printf("  Done. Raw CSV → %s | Catalogue → %s\n\n",
		cfg.CSVOutputPath, cfg.JSONOutputPath)
}
