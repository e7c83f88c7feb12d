package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("header\n"), 0o644))
}

func TestDiscoverInputs_PairsByNamingConvention(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "yoga mat.csv")
	touch(t, dir, "IN_AMAZON_magnet__2025-12-04_yoga mat.csv")
	touch(t, dir, "laptop_stand.csv")
	touch(t, dir, "magnet_laptop_stand.csv")
	touch(t, dir, "spice rack.csv") // listing export with no keyword pair
	touch(t, dir, "notes.txt")      // ignored

	inputs, err := DiscoverInputs(dir)
	require.NoError(t, err)
	require.Len(t, inputs, 3)

	byName := make(map[string]SubcategoryInput)
	for _, in := range inputs {
		byName[in.Name] = in
	}

	yoga := byName["yoga mat"]
	assert.NotEmpty(t, yoga.KeywordPath)
	assert.Equal(t, "yoga mat", yoga.SeedKeyword)

	laptop := byName["laptop_stand"]
	assert.NotEmpty(t, laptop.KeywordPath)
	assert.Equal(t, "laptop stand", laptop.SeedKeyword)

	spice := byName["spice rack"]
	assert.Empty(t, spice.KeywordPath)
	assert.Empty(t, spice.SeedKeyword)
}

func TestDiscoverInputs_SortedByName(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "zzz.csv")
	touch(t, dir, "aaa.csv")

	inputs, err := DiscoverInputs(dir)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "aaa", inputs[0].Name)
	assert.Equal(t, "zzz", inputs[1].Name)
}

func TestDiscoverInputs_MissingDir(t *testing.T) {
	_, err := DiscoverInputs(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
