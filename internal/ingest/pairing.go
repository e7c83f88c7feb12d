package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// SubcategoryInput names the export files for one subcategory.
// KeywordPath and SeedKeyword are empty when no keyword export was paired.
type SubcategoryInput struct {
	Name        string
	ListingPath string
	KeywordPath string
	SeedKeyword string
}

var magnetDatedPattern = regexp.MustCompile(`(?i)^[A-Z]{2}_AMAZON_magnet__\d{4}-\d{2}-\d{2}_(.+)$`)
var magnetPrefixPattern = regexp.MustCompile(`(?i)^magnet[_-](.+)$`)

// isKeywordFile reports whether a filename looks like a keyword-research
// export under the magnet naming convention.
func isKeywordFile(name string) bool {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return magnetDatedPattern.MatchString(base) || magnetPrefixPattern.MatchString(base)
}

// SeedFromFilename extracts the seed keyword from a keyword export
// filename. Recognized forms, tried in order:
//
//	IN_AMAZON_magnet__2025-12-04_yoga mat.csv -> "yoga mat"
//	magnet_laptop_stand.csv                   -> "laptop stand"
//	spice rack organizer.csv                  -> "spice rack organizer"
func SeedFromFilename(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	if m := magnetDatedPattern.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := magnetPrefixPattern.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(strings.ReplaceAll(m[1], "_", " "))
	}
	return strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
}

// pairKey normalizes a name for listing/keyword file matching.
func pairKey(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", " ")))
}

// DiscoverInputs scans dir for CSV exports and pairs each listing export
// with a keyword export whose seed keyword matches the listing file's base
// name. Unpaired listing exports are returned with empty keyword fields;
// unpaired keyword exports are ignored. Results are sorted by name.
func DiscoverInputs(dir string) ([]SubcategoryInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	keywordBySeed := make(map[string]string) // pairKey(seed) -> path
	seedByKey := make(map[string]string)
	var inputs []SubcategoryInput

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if isKeywordFile(e.Name()) {
			seed := SeedFromFilename(e.Name())
			key := pairKey(seed)
			if _, dup := keywordBySeed[key]; !dup {
				keywordBySeed[key] = path
				seedByKey[key] = seed
			}
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		inputs = append(inputs, SubcategoryInput{Name: name, ListingPath: path})
	}

	for i := range inputs {
		key := pairKey(inputs[i].Name)
		if path, ok := keywordBySeed[key]; ok {
			inputs[i].KeywordPath = path
			inputs[i].SeedKeyword = seedByKey[key]
		}
	}

	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Name < inputs[j].Name })
	return inputs, nil
}
