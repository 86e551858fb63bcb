package storefront

import (
	"slices"

	"github.com/themestore/themestore/internal/catalog"
)

// Cart is a set of theme ids that remembers insertion order.
// The zero value is an empty cart ready to use.
type Cart struct {
	ids   []int
	index map[int]struct{}
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[int]struct{})}
}

// Add inserts id and reports whether the cart changed.
// Adding an id that is already present is a no-op.
func (c *Cart) Add(id int) bool {
	if c.Contains(id) {
		return false
	}
	if c.index == nil {
		c.index = make(map[int]struct{})
	}
	c.index[id] = struct{}{}
	c.ids = append(c.ids, id)
	return true
}

// Remove deletes id and reports whether the cart changed.
func (c *Cart) Remove(id int) bool {
	if !c.Contains(id) {
		return false
	}
	delete(c.index, id)
	if i := slices.Index(c.ids, id); i >= 0 {
		c.ids = slices.Delete(c.ids, i, i+1)
	}
	return true
}

// Contains reports whether id is in the cart.
func (c *Cart) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of distinct ids in the cart.
func (c *Cart) Len() int {
	return len(c.ids)
}

// IDs returns the cart contents in the order they were added.
func (c *Cart) IDs() []int {
	return slices.Clone(c.ids)
}

// ComputeTotal sums the price of every id found in themes.
// Ids without a matching theme contribute nothing.
func ComputeTotal(ids []int, themes []catalog.Theme) int {
	prices := make(map[int]int, len(themes))
	for _, theme := range themes {
		prices[theme.ID] = theme.Price
	}

	total := 0
	for _, id := range ids {
		total += prices[id]
	}
	return total
}
