package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"acfinder/internal/agent"
	"acfinder/internal/analysis"
	"acfinder/internal/cache"
	"acfinder/internal/config"
	"acfinder/internal/db"
	"acfinder/internal/observability"
	"acfinder/internal/repository"
	"acfinder/internal/scraper"
	"acfinder/internal/snapshot"
)

// go run cmd/acfinder/main.go -btu=12000
// go run cmd/acfinder/main.go            (prompts for target BTU)
func main() {
	btuFlag := flag.String("btu", "", "Target BTU (e.g. 12000); empty asks on stdin")
	flag.Parse()

	cfg := config.Load()

	if cfg.MetricsPort != "" {
		observability.Start(cfg.MetricsPort)
	}

	target := resolveTarget(*btuFlag)

	a := &agent.Agent{
		Fetcher: scraper.NewFetcher(cfg.HTTPTimeout),
		Sources: scraper.DefaultSources(),
		Analyzer: &analysis.Analyzer{
			Client: openai.NewClient(cfg.OpenAIKey),
			Model:  cfg.OpenAIModel,
		},
		Writer: &snapshot.Writer{Dir: cfg.SnapshotDir},
	}

	if cfg.RedisURL != "" {
		a.Cache = &cache.PageCache{
			Client: redis.NewClient(&redis.Options{Addr: cfg.RedisURL}),
		}
	}

	if cfg.DatabaseURL != "" {
		dbConn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Printf("database unavailable, skipping run persistence: %v", err)
		} else {
			a.Repo = &repository.RunRepository{DB: dbConn}
		}
	}

	if err := a.Run(target); err != nil {
		log.Fatalf("Error saving results: %v", err)
	}
}

// resolveTarget reads the target BTU from the flag, or interactively when the
// flag is empty. Invalid or empty input means search-all, never an error.
func resolveTarget(flagValue string) *int {
	value := strings.TrimSpace(flagValue)

	if value == "" {
		fmt.Println(strings.Repeat("-", 40))
		fmt.Println("AC Finder Agent - Manual Input Mode")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Print("Enter target BTU (e.g., 12000) or press Enter for all: ")

		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		value = strings.TrimSpace(line)
	}

	if value == "" {
		return nil
	}

	target, err := strconv.Atoi(value)
	if err != nil {
		fmt.Println("Invalid input. Defaulting to searching all products.")
		return nil
	}
	return &target
}
