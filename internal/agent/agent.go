package agent

import (
	"fmt"
	"log"
	"strings"

	"acfinder/internal/analysis"
	"acfinder/internal/cache"
	"acfinder/internal/matcher"
	"acfinder/internal/model"
	"acfinder/internal/notify"
	"acfinder/internal/observability"
	"acfinder/internal/repository"
	"acfinder/internal/scraper"
	"acfinder/internal/snapshot"
)

// Agent runs the pipeline end to end: scrape every source sequentially,
// filter by target BTU, analyze, notify, persist. All mid-pipeline failures
// are absorbed with a degraded result; only the snapshot write can fail the
// run.
type Agent struct {
	Fetcher  *scraper.Fetcher
	Sources  []scraper.Source
	Analyzer *analysis.Analyzer
	Writer   *snapshot.Writer
	Cache    *cache.PageCache          // opcional
	Repo     *repository.RunRepository // opcional

	products []model.Product
}

func (a *Agent) Run(targetBtu *int) error {
	fmt.Println("\n🤖 AC Finder Agent Starting...")
	fmt.Println("📡 Scraping websites...")

	for _, src := range a.Sources {
		a.scrape(src)
	}

	if targetBtu != nil {
		fmt.Printf("\n🔍 Searching for %d BTU...\n", *targetBtu)
		matches := matcher.Filter(a.products, targetBtu)

		if len(matches) > 0 {
			notify.Notify(formatMatches(matches, *targetBtu))
			a.printAnalysis(matches)
		} else {
			notify.Notify(fmt.Sprintf("No products found matching %d BTU", *targetBtu))
		}
	} else {
		fmt.Printf("\n📊 Total products found: %d\n", len(a.products))
		if len(a.products) > 0 {
			a.printAnalysis(a.products)
		}
	}

	return a.save(targetBtu)
}

// Products returns the catalog accumulated so far, in extraction order.
func (a *Agent) Products() []model.Product {
	return a.products
}

func (a *Agent) scrape(src scraper.Source) {
	html, cached := a.cachedPage(src.URL)
	if !cached {
		var err error
		html, err = a.Fetcher.Fetch(src.URL)
		if err != nil {
			observability.FetchErrors.WithLabelValues(src.Brand).Inc()
			log.Printf("✗ Error scraping %s: %v", src.Brand, err)
			return
		}
		if a.Cache != nil {
			if err := a.Cache.Set(src.URL, html); err != nil {
				log.Printf("page cache write failed for %s: %v", src.URL, err)
			}
		}
	}

	products, err := scraper.Extract(src, html)
	if err != nil {
		log.Printf("✗ Error scraping %s: %v", src.Brand, err)
		return
	}

	if len(products) == 0 && src.DynamicContentNote != "" {
		fmt.Println("ℹ️  " + src.DynamicContentNote)
	}

	a.products = append(a.products, products...)
	observability.ProductsScraped.WithLabelValues(src.Brand).Add(float64(len(products)))
	fmt.Printf("✓ Found %d %s products\n", len(products), src.Brand)
}

func (a *Agent) cachedPage(url string) (string, bool) {
	if a.Cache == nil {
		return "", false
	}
	return a.Cache.Get(url)
}

func (a *Agent) printAnalysis(products []model.Product) {
	fmt.Println("\n🧠 AI Analysis:")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(a.Analyzer.Analyze(products))
}

func (a *Agent) save(targetBtu *int) error {
	snap := model.NewSnapshot(targetBtu, a.products)

	if a.Repo != nil {
		if runID, err := a.Repo.SaveRun(snap); err != nil {
			log.Printf("failed to persist run to database: %v", err)
		} else {
			log.Printf("run %s persisted to database", runID)
		}
	}

	path, err := a.Writer.Write(snap)
	if err != nil {
		return err
	}
	fmt.Printf("\n💾 Results saved to: %s\n", path)
	return nil
}

func formatMatches(matches []model.Product, targetBtu int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d AC(s) matching %d BTU!\n\n", len(matches), targetBtu))

	for _, p := range matches {
		sb.WriteString(fmt.Sprintf("• %s - %s\n", p.Brand, p.Name))
		sb.WriteString(fmt.Sprintf("  BTU: %s (%s match)\n", analysis.BtuString(p.Btu), p.MatchType))
		sb.WriteString(fmt.Sprintf("  Price: %s\n\n", p.Price))
	}

	return sb.String()
}
