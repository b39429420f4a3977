package model

import "time"

// Match tiers attached by the matcher when a target BTU is set.
const (
	MatchExact    = "exact"
	MatchClose    = "close"
	MatchPossible = "possible"
)

// Product is one listing extracted from a retailer page. Brand and Name are
// always set; Btu is nil when no "<n> BTU" pattern matched the name and Price
// falls back to "N/A".
type Product struct {
	Brand     string `json:"brand"`
	Name      string `json:"name"`
	Btu       *int   `json:"btu"`
	Price     string `json:"price"`
	URL       string `json:"url"`
	MatchType string `json:"match_type,omitempty"`
}

// Snapshot is the persisted record of one run.
type Snapshot struct {
	Timestamp     time.Time `json:"timestamp"`
	TargetBtu     *int      `json:"target_btu"`
	TotalProducts int       `json:"total_products"`
	Products      []Product `json:"products"`
}

func NewSnapshot(targetBtu *int, products []Product) Snapshot {
	if products == nil {
		products = []Product{}
	}
	return Snapshot{
		Timestamp:     time.Now(),
		TargetBtu:     targetBtu,
		TotalProducts: len(products),
		Products:      products,
	}
}
