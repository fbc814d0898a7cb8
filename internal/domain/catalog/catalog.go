// Package catalog holds the fixed item tables of the game shop: display
// order, rarity tier and sheckle cost per item. The upstream stock API only
// reports name and quantity; everything else about an item is joined from
// here.
package catalog

import "stockwatch/internal/domain/entity"

// Entry is the static metadata of one shop item.
type Entry struct {
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	SheckleCost int    `json:"sheckle_cost"`
}

// Rarity tiers, cheapest to rarest.
const (
	RarityCommon    = "Common"
	RarityUncommon  = "Uncommon"
	RarityRare      = "Rare"
	RarityLegendary = "Legendary"
	RarityMythical  = "Mythical"
	RarityDivine    = "Divine"
	RarityPrismatic = "Prismatic"
)

var seedOrder = []Entry{
	{"Carrot", RarityCommon, 10},
	{"Strawberry", RarityCommon, 50},
	{"Blueberry", RarityUncommon, 400},
	{"Orange Tulip", RarityUncommon, 600},
	{"Tomato", RarityRare, 800},
	{"Corn", RarityRare, 1300},
	{"Daffodil", RarityRare, 1000},
	{"Watermelon", RarityLegendary, 2500},
	{"Pumpkin", RarityLegendary, 3000},
	{"Apple", RarityLegendary, 3250},
	{"Bamboo", RarityLegendary, 4000},
	{"Coconut", RarityMythical, 6000},
	{"Cactus", RarityMythical, 15000},
	{"Dragon Fruit", RarityMythical, 50000},
	{"Mango", RarityMythical, 100000},
	{"Grape", RarityDivine, 850000},
	{"Mushroom", RarityDivine, 150000},
	{"Pepper", RarityDivine, 1000000},
	{"Cacao", RarityDivine, 2500000},
	{"Beanstalk", RarityPrismatic, 10000000},
	{"Ember Lily", RarityPrismatic, 15000000},
	{"Sugar Apple", RarityPrismatic, 25000000},
}

var gearOrder = []Entry{
	{"Watering Can", RarityCommon, 50000},
	{"Trowel", RarityUncommon, 100000},
	{"Recall Wrench", RarityUncommon, 150000},
	{"Basic Sprinkler", RarityRare, 25000},
	{"Advanced Sprinkler", RarityLegendary, 50000},
	{"Godly Sprinkler", RarityMythical, 120000},
	{"Magnifying Glass", RarityMythical, 10000000},
	{"Tanning Mirror", RarityMythical, 1000000},
	{"Master Sprinkler", RarityDivine, 10000000},
	{"Favorite Tool", RarityDivine, 20000000},
	{"Harvest Tool", RarityDivine, 30000000},
	{"Friendship Pot", RarityDivine, 15000000},
	{"Medium Toy", RarityRare, 4000000},
	{"Medium Treat", RarityRare, 4000000},
	{"Levelup Lollipop", RarityPrismatic, 10000000000},
}

var eggOrder = []Entry{
	{"Common Egg", RarityCommon, 50000},
	{"Uncommon Egg", RarityUncommon, 150000},
	{"Rare Egg", RarityRare, 600000},
	{"Legendary Egg", RarityLegendary, 3000000},
	{"Mythical Egg", RarityMythical, 8000000},
	{"Bug Egg", RarityDivine, 50000000},
	{"Common Summer Egg", RarityCommon, 1000000},
	{"Rare Summer Egg", RarityRare, 25000000},
	{"Paradise Egg", RarityMythical, 50000000},
	{"Bee Egg", RarityDivine, 30000000},
}

var cosmeticOrder = []Entry{
	{"Sign Crate", RarityCommon, 125000},
	{"Market Cart", RarityUncommon, 250000},
	{"Brown Bench", RarityCommon, 75000},
	{"Red Well", RarityRare, 500000},
	{"Torch", RarityCommon, 30000},
	{"Small Stone Table", RarityUncommon, 150000},
	{"Medium Wood Flooring", RarityCommon, 50000},
	{"Log Bench", RarityUncommon, 200000},
	{"Wheelbarrow", RarityRare, 300000},
	{"Round Metal Arbour", RarityLegendary, 1000000},
}

var orders = map[entity.Category][]Entry{
	entity.CategorySeeds:     seedOrder,
	entity.CategoryGear:      gearOrder,
	entity.CategoryEggs:      eggOrder,
	entity.CategoryCosmetics: cosmeticOrder,
}

// Items returns the catalog entries of a category in display order.
func Items(c entity.Category) []Entry {
	return orders[c]
}

// Names returns the item names of a category in display order.
func Names(c entity.Category) []string {
	entries := orders[c]
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	return names
}

// Contains reports whether the category's catalog lists the item.
func Contains(c entity.Category, name string) bool {
	for _, e := range orders[c] {
		if e.Name == name {
			return true
		}
	}

	return false
}

// Lookup returns the catalog entry for an item in a category.
func Lookup(c entity.Category, name string) (Entry, bool) {
	for _, e := range orders[c] {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}
