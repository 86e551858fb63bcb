package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themestore/themestore/internal/catalog"
)

func TestCartAddIsIdempotent(t *testing.T) {
	once := NewCart()
	once.Add(3)

	twice := NewCart()
	assert.True(t, twice.Add(3))
	assert.False(t, twice.Add(3))

	assert.Equal(t, once.IDs(), twice.IDs())
	assert.Equal(t, 1, twice.Len())
}

func TestCartRemoveRestoresPriorSet(t *testing.T) {
	cart := NewCart()
	cart.Add(1)
	cart.Add(4)
	before := cart.IDs()

	cart.Add(7)
	cart.Remove(7)

	assert.Equal(t, before, cart.IDs())
	assert.False(t, cart.Contains(7))
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(2)
	assert.False(t, cart.Remove(9))
	assert.Equal(t, []int{2}, cart.IDs())
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	for _, id := range []int{5, 1, 9, 3} {
		cart.Add(id)
	}
	cart.Remove(9)
	cart.Add(5)

	assert.Equal(t, []int{5, 1, 3}, cart.IDs())
}

func TestCartZeroValue(t *testing.T) {
	var cart Cart
	assert.False(t, cart.Contains(1))
	assert.False(t, cart.Remove(1))
	assert.Equal(t, 0, cart.Len())
	require.True(t, cart.Add(1))
	assert.True(t, cart.Contains(1))
}

func TestCartIDsReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(1)
	ids := cart.IDs()
	ids[0] = 99
	assert.Equal(t, []int{1}, cart.IDs())
}

func TestComputeTotal(t *testing.T) {
	themes := catalog.Themes()

	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{name: "empty", ids: nil, want: 0},
		{name: "two themes", ids: []int{1, 2}, want: 128},
		{name: "order independent", ids: []int{2, 1}, want: 128},
		{name: "unknown ids contribute zero", ids: []int{1, 404}, want: 49},
		{name: "whole catalog", ids: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, want: 49 + 79 + 39 + 29 + 59 + 35 + 45 + 55 + 69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.ids, themes))
		})
	}
}

func TestComputeTotalCommutative(t *testing.T) {
	themes := catalog.Themes()
	ids := []int{9, 3, 6, 1}
	want := ComputeTotal(ids, themes)

	permutations := [][]int{
		{1, 3, 6, 9},
		{6, 9, 1, 3},
		{3, 1, 9, 6},
	}
	for _, p := range permutations {
		assert.Equal(t, want, ComputeTotal(p, themes), "ids %v", p)
	}
}
