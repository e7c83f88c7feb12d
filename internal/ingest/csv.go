package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// mapListingHeader classifies a raw listing header into a canonical field,
// or "" when unrecognized. Matching is case-insensitive and tolerant of
// export variations like "Price  ₹" or "Revenue (₹)".
func mapListingHeader(col string) string {
	c := strings.ToLower(strings.TrimSpace(col))
	switch {
	case c == "asin":
		return FieldASIN
	case c == "brand":
		return FieldBrand
	case strings.HasPrefix(c, "price"):
		return FieldPrice
	case c == "revenue", strings.HasPrefix(c, "revenue") && !strings.Contains(c, "monthly"):
		return FieldRevenue
	case c == "sales": // exact: "Variation Sales" etc. must not match
		return FieldUnitsSold
	case strings.Contains(c, "review count"), c == "reviews":
		return FieldReviewCount
	case c == "ratings", c == "rating":
		return FieldRating
	}
	return ""
}

// mapKeywordHeader classifies a raw keyword header into a canonical field.
// Trend is checked before volume: "Search Volume Trend" contains "search volume".
func mapKeywordHeader(col string) string {
	c := strings.ToLower(strings.TrimSpace(col))
	switch {
	case c == "keyword phrase", c == "phrase", c == "keyword":
		return FieldPhrase
	case strings.Contains(c, "trend"):
		return FieldTrend
	case strings.Contains(c, "search volume"):
		return FieldSearchVolume
	case strings.Contains(c, "competing"):
		return FieldCompetingListings
	case strings.Contains(c, "iq score"), strings.Contains(c, "demand quality"):
		return FieldDemandQualityIndex
	}
	return ""
}

// read parses CSV from r and maps its header with mapHeader.
// The first recognized header wins when two raw columns map to the same
// canonical field. Ragged rows are tolerated; short rows leave fields blank.
func read(r io.Reader, mapHeader func(string) string) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read header: %w", err)
	}

	// Strip the UTF-8 BOM some exports prepend to the first header cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	mapped := make([]string, len(header)) // canonical name per column index, "" = ignored
	assigned := make(map[string]bool)
	var columns []string
	for i, col := range header {
		canonical := mapHeader(col)
		if canonical == "" || assigned[canonical] {
			continue
		}
		assigned[canonical] = true
		mapped[i] = canonical
		columns = append(columns, canonical)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read row: %w", err)
		}

		row := make(Row, len(columns))
		for i, canonical := range mapped {
			if canonical == "" {
				continue
			}
			if i < len(record) {
				row[canonical] = record[i]
			} else {
				row[canonical] = ""
			}
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}, nil
}

// ReadListings parses a marketplace listing export.
func ReadListings(r io.Reader) (Table, error) {
	return read(r, mapListingHeader)
}

// ReadKeywords parses a keyword-research export.
func ReadKeywords(r io.Reader) (Table, error) {
	return read(r, mapKeywordHeader)
}

// ReadListingsFile parses the listing export at path.
func ReadListingsFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadListings(f)
}

// ReadKeywordsFile parses the keyword export at path.
func ReadKeywordsFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadKeywords(f)
}
