package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acfinder/internal/model"
)

func btu(n int) *int { return &n }

func TestFilterNoTarget(t *testing.T) {
	products := []model.Product{
		{Brand: "Singer", Name: "12000 BTU Split", Btu: btu(12000)},
		{Brand: "Abans", Name: "Portable AC"},
	}

	result := Filter(products, nil)

	require.Len(t, result, 2)
	for _, p := range result {
		assert.Empty(t, p.MatchType)
	}
}

func TestFilterKnownBtu(t *testing.T) {
	tests := []struct {
		name         string
		productBtu   int
		target       int
		expectedType string
		included     bool
	}{
		{"Exact match", 12000, 12000, model.MatchExact, true},
		{"Close below", 10001, 12000, model.MatchClose, true},
		{"Close above", 13999, 12000, model.MatchClose, true},
		{"Distance exactly 2000 is close", 14000, 12000, model.MatchClose, true},
		{"Distance 2001 excluded", 14001, 12000, "", false},
		{"Far off excluded", 24000, 12000, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := []model.Product{
				{Brand: "Singer", Name: "Split Unit", Btu: btu(tt.productBtu)},
			}

			result := Filter(products, &tt.target)

			if !tt.included {
				assert.Empty(t, result)
				return
			}
			require.Len(t, result, 1)
			assert.Equal(t, tt.expectedType, result[0].MatchType)
		})
	}
}

func TestFilterUnknownBtu(t *testing.T) {
	target := 12000
	products := []model.Product{
		{Brand: "Abans", Name: "Inverter AC 12000 Series"},
		{Brand: "Abans", Name: "Portable Air Conditioner"},
	}

	result := Filter(products, &target)

	require.Len(t, result, 1)
	assert.Equal(t, "Inverter AC 12000 Series", result[0].Name)
	assert.Equal(t, model.MatchPossible, result[0].MatchType)
}

func TestFilterPreservesOrder(t *testing.T) {
	target := 12000
	products := []model.Product{
		{Brand: "Singer", Name: "A", Btu: btu(13000)},
		{Brand: "Singer", Name: "B", Btu: btu(12000)},
		{Brand: "Abans", Name: "C 12000", Btu: nil},
		{Brand: "Abans", Name: "D", Btu: btu(11000)},
	}

	result := Filter(products, &target)

	require.Len(t, result, 4)
	// Insertion order, no sorting by closeness.
	assert.Equal(t, "A", result[0].Name)
	assert.Equal(t, "B", result[1].Name)
	assert.Equal(t, "C 12000", result[2].Name)
	assert.Equal(t, "D", result[3].Name)
}

// The tag is written back onto the catalog entry so the snapshot carries it.
func TestFilterTagsCatalog(t *testing.T) {
	target := 12000
	products := []model.Product{
		{Brand: "Singer", Name: "Split", Btu: btu(12000)},
		{Brand: "Singer", Name: "Window", Btu: btu(24000)},
	}

	Filter(products, &target)

	assert.Equal(t, model.MatchExact, products[0].MatchType)
	assert.Empty(t, products[1].MatchType)
}
