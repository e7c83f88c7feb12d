package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadListings_HeaderSynonyms(t *testing.T) {
	csvData := "\ufeffASIN,Brand,Price  ₹,Revenue,Sales,Review Count,Ratings,Variation Sales\n" +
		"B0TEST01,Acme,\"₹1,299\",\"₹4,50,000\",350,512,4.3,999\n"

	table, err := ReadListings(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.ElementsMatch(t, table.Columns, []string{
		FieldASIN, FieldBrand, FieldPrice, FieldRevenue,
		FieldUnitsSold, FieldReviewCount, FieldRating,
	})
	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "B0TEST01", row[FieldASIN])
	assert.Equal(t, "₹1,299", row[FieldPrice])
	assert.Equal(t, "350", row[FieldUnitsSold]) // "Variation Sales" must not win
}

func TestReadListings_MonthlyRevenueNotMapped(t *testing.T) {
	csvData := "ASIN,Monthly Revenue Estimate,Revenue\nB01,111,222\n"

	table, err := ReadListings(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, "222", table.Rows[0][FieldRevenue])
}

func TestReadListings_FirstRecognizedHeaderWins(t *testing.T) {
	csvData := "Price,Price ₹\n100,200\n"

	table, err := ReadListings(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, "100", table.Rows[0][FieldPrice])
}

func TestReadKeywords_TrendBeforeVolume(t *testing.T) {
	csvData := "Keyword Phrase,Search Volume,Search Volume Trend,Competing Products,Magnet IQ Score\n" +
		"yoga mat,\"122,840\",42,\">30,000\",4095\n"

	table, err := ReadKeywords(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "122,840", row[FieldSearchVolume])
	assert.Equal(t, "42", row[FieldTrend])
	assert.Equal(t, ">30,000", row[FieldCompetingListings])
	assert.Equal(t, "4095", row[FieldDemandQualityIndex])
}

func TestRead_RaggedRowsTolerated(t *testing.T) {
	csvData := "ASIN,Brand,Price\nB01,Acme\nB02,Zen,300,extra\n"

	table, err := ReadListings(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Rows[0][FieldPrice]) // short row leaves the field blank
	assert.Equal(t, "300", table.Rows[1][FieldPrice])
}

func TestRead_EmptyInput(t *testing.T) {
	table, err := ReadListings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestSeedFromFilename(t *testing.T) {
	cases := map[string]string{
		"IN_AMAZON_magnet__2025-12-04_yoga mat.csv": "yoga mat",
		"magnet_laptop_stand.csv":                   "laptop stand",
		"magnet-spice rack.csv":                     "spice rack",
		"spice rack organizer.csv":                  "spice rack organizer",
		"laptop_stand.csv":                          "laptop stand",
	}
	for in, want := range cases {
		assert.Equal(t, want, SeedFromFilename(in), "filename %q", in)
	}
}
