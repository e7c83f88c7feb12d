package domain

import "strings"

// KeywordRecord represents one search-term row from a keyword-research export.
type KeywordRecord struct {
	Phrase             string  // case-insensitive identity for matching
	SearchVolume       int     // monthly searches, always > 0 inside a catalog
	Trend              float64 // signed percentage
	CompetingListings  int     // broad competing-listing estimate
	DemandQualityIndex int     // composite demand-quality index from the export
}

// PhraseEquals reports whether the record's phrase matches s ignoring case
// and surrounding whitespace.
func (k KeywordRecord) PhraseEquals(s string) bool {
	return strings.EqualFold(strings.TrimSpace(k.Phrase), strings.TrimSpace(s))
}

// KeywordCatalog is a deduplicated keyword set sorted by search volume descending.
type KeywordCatalog []KeywordRecord

// Top returns the first n records (all records when fewer exist).
func (c KeywordCatalog) Top(n int) KeywordCatalog {
	if n > len(c) {
		n = len(c)
	}
	return c[:n]
}
