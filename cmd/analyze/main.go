package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/churnlens/churnlens/internal/config"
	"github.com/churnlens/churnlens/internal/core"
	"github.com/churnlens/churnlens/internal/ingest"
	"github.com/churnlens/churnlens/internal/report"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := flag.String("config", "config/config.toml", "path to TOML config")
	dataset := flag.String("dataset", "", "dataset CSV path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", *cfgPath, err)
		cfg = config.Default()
	}
	if envPath := os.Getenv("DATASET_PATH"); envPath != "" {
		cfg.Dataset.Path = envPath
	}
	if *dataset != "" {
		cfg.Dataset.Path = *dataset
	}

	reader := ingest.NewReader()
	reader.RecordLimit = cfg.Dataset.RecordLimit
	reader.IncludeCreditFields = cfg.Dataset.IncludeCreditFields

	customers, err := reader.ReadFile(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}

	analyzer := core.NewAnalyzer(cfg.Analysis.NeighborThreshold, cfg.Analysis.CentralityMultiplier)
	result := analyzer.Run(customers)

	report.Render(os.Stdout, result)
}
