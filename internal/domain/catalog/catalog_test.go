package catalog

import (
	"testing"

	"stockwatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCategoryHasEntries(t *testing.T) {
	for _, c := range entity.Categories() {
		assert.NotEmpty(t, Items(c), "category %s has no catalog entries", c)
	}
}

func TestNamesPreserveDisplayOrder(t *testing.T) {
	names := Names(entity.CategorySeeds)
	require.NotEmpty(t, names)
	assert.Equal(t, "Carrot", names[0])
	assert.Len(t, names, len(Items(entity.CategorySeeds)))
}

func TestLookup(t *testing.T) {
	entry, ok := Lookup(entity.CategoryGear, "Master Sprinkler")
	require.True(t, ok)
	assert.Equal(t, RarityDivine, entry.Rarity)

	_, ok = Lookup(entity.CategoryGear, "Carrot")
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(entity.CategoryEggs, "Bug Egg"))
	assert.False(t, Contains(entity.CategoryEggs, "Dinosaur Egg"))
}

func TestNoDuplicateNamesWithinCategory(t *testing.T) {
	for _, c := range entity.Categories() {
		seen := make(map[string]bool)
		for _, e := range Items(c) {
			assert.False(t, seen[e.Name], "duplicate %s in %s", e.Name, c)
			seen[e.Name] = true
		}
	}
}
