package scraper

// Source describes how one retailer's listing page is scraped. Selector lists
// are ordered by priority and evaluated until one yields a non-empty value.
type Source struct {
	Brand string
	URL   string

	// ContainerSelectors are queried together in a single pass; every
	// matching element is treated as a candidate product block.
	ContainerSelectors []string
	NameSelectors      []string
	PriceSelectors     []string

	// NameFromImageAlt prefers img[alt] over NameSelectors. Singer puts the
	// full descriptive product name in the image alt text.
	NameFromImageAlt bool

	// RequireACEvidence keeps a candidate only when a BTU was parsed or the
	// name mentions "AIR CONDITIONER". Abans lists only ACs on this page, so
	// it keeps every named candidate.
	RequireACEvidence bool

	// DynamicContentNote is shown when extraction finds nothing, for pages
	// whose content is rendered client-side and missing from the response.
	DynamicContentNote string
}

func Singer() Source {
	return Source{
		Brand:              "Singer",
		URL:                "https://www.singersl.com/products/appliances/air-conditioner",
		ContainerSelectors: []string{".product", ".productfilter", ".views-row"},
		NameSelectors:      []string{".product-name", ".title", "h3", "h4", "a"},
		PriceSelectors:     []string{".price", ".product-price", ".amount", ".sell-price"},
		NameFromImageAlt:   true,
		RequireACEvidence:  true,
	}
}

func Abans() Source {
	return Source{
		Brand:              "Abans",
		URL:                "https://buyabans.com/home-appliance/air-conditioners",
		ContainerSelectors: []string{".product-card", ".col-lg-3", ".product-item"},
		NameSelectors:      []string{".pro-name-compact", ".pro-name", "h4 a", ".product-name"},
		PriceSelectors:     []string{".price-new", ".selling-price", ".price", ".sale-price"},
		DynamicContentNote: "Abans website structure might be dynamic. Trying fallback search...",
	}
}

func DefaultSources() []Source {
	return []Source{Singer(), Abans()}
}
