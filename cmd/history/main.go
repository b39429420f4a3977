package main

import (
	"flag"
	"fmt"
	"log"

	"acfinder/internal/analysis"
	"acfinder/internal/config"
	"acfinder/internal/db"
	"acfinder/internal/repository"
)

// go run cmd/history/main.go -limit=5
// go run cmd/history/main.go -run=<run-id>
func main() {
	limit := flag.Int("limit", 10, "How many recent runs to list")
	runID := flag.String("run", "", "Show the products of one run")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := db.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}
	defer pool.Close()

	repo := &repository.HistoryRepository{Pool: pool}

	if *runID != "" {
		products, err := repo.RunProducts(*runID)
		if err != nil {
			log.Fatalf("failed to load run %s: %v", *runID, err)
		}
		for _, p := range products {
			fmt.Printf("%s: %s | BTU: %s | Price: %s\n", p.Brand, p.Name, analysis.BtuString(p.Btu), p.Price)
		}
		return
	}

	runs, err := repo.RecentRuns(*limit)
	if err != nil {
		log.Fatalf("failed to list runs: %v", err)
	}
	for _, r := range runs {
		target := "all"
		if r.TargetBtu != nil {
			target = fmt.Sprintf("%d BTU", *r.TargetBtu)
		}
		fmt.Printf("%s  %s  target=%s  products=%d\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), target, r.TotalProducts)
	}
}
