package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"niche-lab/internal/domain"
)

func TestValidateListings_EmptyIsInvalid(t *testing.T) {
	valid, warnings := ValidateListings(nil)
	assert.False(t, valid)
	require.Len(t, warnings, 1)
}

func TestValidateListings_LowRowCountWarnsButStaysValid(t *testing.T) {
	cat := domain.ListingCatalog{
		{ASIN: "B01", Price: 400, Revenue: 1000},
		{ASIN: "B02", Price: 600, Revenue: 900},
	}

	valid, warnings := ValidateListings(cat)
	assert.True(t, valid)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "export may be incomplete")
}

func TestValidateListings_PriceOutlierWarnings(t *testing.T) {
	cat := make(domain.ListingCatalog, 0, 12)
	for i := 0; i < 12; i++ {
		cat = append(cat, domain.ListingRecord{ASIN: string(rune('A' + i)), Price: 500, Revenue: 1000})
	}
	cat[0].Price = 60000 // suspiciously high
	cat[1].Price = 20    // suspiciously low

	valid, warnings := ValidateListings(cat)
	assert.True(t, valid)
	assert.Len(t, warnings, 2)
}

func TestValidateKeywords_MissingCompetitorData(t *testing.T) {
	cat := make(domain.KeywordCatalog, 0, 60)
	for i := 0; i < 60; i++ {
		rec := domain.KeywordRecord{Phrase: string(rune('a' + i%26)), SearchVolume: 1000, CompetingListings: 5000}
		if i < 25 { // >30% with zero competitor counts
			rec.CompetingListings = 0
		}
		cat = append(cat, rec)
	}

	valid, warnings := ValidateKeywords(cat)
	assert.True(t, valid)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "25 keywords missing competitor data")
}

func TestValidateKeywords_LowRowCount(t *testing.T) {
	cat := domain.KeywordCatalog{{Phrase: "yoga mat", SearchVolume: 1000, CompetingListings: 100}}

	valid, warnings := ValidateKeywords(cat)
	assert.True(t, valid)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "only 1 keywords found")
}
