package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"acfinder/internal/model"
)

var btuPattern = regexp.MustCompile(`(?i)(\d+)\s*BTU`)

// Extract parses raw listing HTML and returns the product records found by
// the source's rules. A candidate that yields no usable name is skipped
// silently; only a document that cannot be parsed at all is an error.
func Extract(src Source, html string) ([]model.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var products []model.Product
	doc.Find(strings.Join(src.ContainerSelectors, ", ")).Each(func(_ int, blk *goquery.Selection) {
		if p, ok := extractCandidate(src, blk); ok {
			products = append(products, p)
		}
	})

	return products, nil
}

func extractCandidate(src Source, blk *goquery.Selection) (model.Product, bool) {
	name := ""
	if src.NameFromImageAlt {
		if alt, ok := blk.Find("img[alt]").First().Attr("alt"); ok {
			name = strings.TrimSpace(alt)
		}
	}
	if name == "" {
		name = firstText(blk, src.NameSelectors)
	}
	if name == "" {
		return model.Product{}, false
	}

	btu := ParseBtu(name)

	if src.RequireACEvidence && btu == nil && !strings.Contains(strings.ToUpper(name), "AIR CONDITIONER") {
		return model.Product{}, false
	}

	price := firstText(blk, src.PriceSelectors)
	if price == "" {
		price = "N/A"
	}

	return model.Product{
		Brand: src.Brand,
		Name:  name,
		Btu:   btu,
		Price: price,
		URL:   src.URL,
	}, true
}

// firstText returns the trimmed text of the first selector that matches a
// non-empty element.
func firstText(blk *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(blk.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// ParseBtu pulls the capacity out of a product name, e.g. "18000 BTU Split".
// Only the first match counts.
func ParseBtu(name string) *int {
	m := btuPattern.FindStringSubmatch(name)
	if len(m) < 2 {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
