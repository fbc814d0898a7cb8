package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_NoChangesNothingInStock(t *testing.T) {
	prev := CategoryStatus{
		"Carrot": {InStock: false, Quantity: 0, Timestamp: 100},
	}
	snap := StockSnapshot{
		"Carrot":     0,
		"Strawberry": 0,
	}

	changes, transitioned := Diff(prev, snap, time.Unix(200, 0))

	assert.Empty(t, changes)
	assert.Empty(t, transitioned)
}

func TestDiff_TransitionToInStock(t *testing.T) {
	prev := CategoryStatus{
		"Carrot": {InStock: false, Quantity: 0, Timestamp: 100},
	}
	snap := StockSnapshot{"Carrot": 5}

	changes, transitioned := Diff(prev, snap, time.Unix(200, 0))

	require.Len(t, changes, 1)
	assert.Equal(t, ItemStatus{InStock: true, Quantity: 5, Timestamp: 200}, changes["Carrot"])
	assert.Equal(t, []string{"Carrot"}, transitioned)
}

func TestDiff_NeverSeenItemTreatedAsOutOfStock(t *testing.T) {
	snap := StockSnapshot{"Beanstalk": 2}

	changes, transitioned := Diff(CategoryStatus{}, snap, time.Unix(300, 0))

	require.Len(t, changes, 1)
	assert.True(t, changes["Beanstalk"].InStock)
	assert.Equal(t, []string{"Beanstalk"}, transitioned)
}

func TestDiff_HeartbeatRefreshWithoutTransition(t *testing.T) {
	prev := CategoryStatus{
		"Carrot": {InStock: true, Quantity: 5, Timestamp: 100},
	}
	snap := StockSnapshot{"Carrot": 3}

	changes, transitioned := Diff(prev, snap, time.Unix(200, 0))

	// Quantity and timestamp refresh, but no notification is owed.
	require.Len(t, changes, 1)
	assert.Equal(t, ItemStatus{InStock: true, Quantity: 3, Timestamp: 200}, changes["Carrot"])
	assert.Empty(t, transitioned)
}

func TestDiff_TransitionToOutOfStock(t *testing.T) {
	prev := CategoryStatus{
		"Carrot": {InStock: true, Quantity: 5, Timestamp: 100},
	}
	snap := StockSnapshot{"Carrot": 0}

	changes, transitioned := Diff(prev, snap, time.Unix(200, 0))

	require.Len(t, changes, 1)
	assert.Equal(t, ItemStatus{InStock: false, Quantity: 0, Timestamp: 200}, changes["Carrot"])
	assert.Empty(t, transitioned)
}

func TestDiff_UntouchedItemsStayOutOfChangeSet(t *testing.T) {
	prev := CategoryStatus{
		"Carrot":  {InStock: true, Quantity: 1, Timestamp: 100},
		"Pumpkin": {InStock: false, Quantity: 0, Timestamp: 100},
	}
	snap := StockSnapshot{
		"Carrot": 2,
	}

	changes, _ := Diff(prev, snap, time.Unix(200, 0))

	// The snapshot says nothing about Pumpkin, so the merge must not touch it.
	_, ok := changes["Pumpkin"]
	assert.False(t, ok)
}

func TestDiff_TransitionedItemsSorted(t *testing.T) {
	snap := StockSnapshot{
		"Watermelon": 1,
		"Apple":      4,
		"Mango":      2,
	}

	_, transitioned := Diff(CategoryStatus{}, snap, time.Unix(200, 0))

	assert.Equal(t, []string{"Apple", "Mango", "Watermelon"}, transitioned)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("seeds")
	require.NoError(t, err)
	assert.Equal(t, CategorySeeds, c)

	_, err = ParseCategory("minerals")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
