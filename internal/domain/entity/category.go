// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Category identifies one of the fixed inventory partitions of the game shop.
type Category string

const (
	CategorySeeds     Category = "Seeds"
	CategoryGear      Category = "Gear"
	CategoryEggs      Category = "Eggs"
	CategoryCosmetics Category = "Cosmetics"
)

// ErrUnknownCategory is returned when a category identifier is not part of the
// fixed enumeration.
var ErrUnknownCategory = errors.New("unknown category")

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{CategorySeeds, CategoryGear, CategoryEggs, CategoryCosmetics}
}

// ParseCategory resolves a case-insensitive identifier into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}

	return "", errors.Wrap(ErrUnknownCategory, s)
}

// Slug returns the lowercase path segment used by the upstream stock API
// and by URL routes.
func (c Category) Slug() string {
	return strings.ToLower(string(c))
}

func (c Category) String() string {
	return string(c)
}
