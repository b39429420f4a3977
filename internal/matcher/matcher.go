package matcher

import (
	"strconv"
	"strings"

	"acfinder/internal/model"
)

// CloseRange is the BTU distance still considered a close match, inclusive.
const CloseRange = 2000

// Filter selects the products relevant to the target BTU and tags each with
// its match tier. The tag is written back onto the catalog entry so the
// snapshot carries it. A nil target returns the catalog untouched. Insertion
// order is preserved.
func Filter(products []model.Product, target *int) []model.Product {
	if target == nil {
		return products
	}

	matches := []model.Product{}
	for i := range products {
		p := &products[i]

		if p.Btu != nil {
			switch d := abs(*p.Btu - *target); {
			case d == 0:
				p.MatchType = model.MatchExact
				matches = append(matches, *p)
			case d <= CloseRange:
				p.MatchType = model.MatchClose
				matches = append(matches, *p)
			}
			continue
		}

		// BTU never parsed; the name may still mention the capacity.
		if strings.Contains(p.Name, strconv.Itoa(*target)) {
			p.MatchType = model.MatchPossible
			matches = append(matches, *p)
		}
	}

	return matches
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
