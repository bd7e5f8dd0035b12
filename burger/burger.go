// SPDX-License-Identifier: MIT
// Package: patternkit/burger
//
// burger.go — the Burger product value.

package burger

// Burger is the finished product of a Builder.
//
// Each attribute's zero value means "unset"; attributes not set before
// Build retain it. Burgers are plain values: copying one never shares state.
type Burger struct {
	// Buns is the bun variety ("" = unset).
	Buns string

	// Patty is the patty variety ("" = unset).
	Patty string

	// Cheese is the cheese variety ("" = unset).
	Cheese string

	// Sauce is the sauce variety ("" = unset).
	Sauce string
}

// Ingredients returns the set attributes in canonical attribute order:
// buns, patty, cheese, sauce. Unset attributes are omitted. The order is a
// property of the product, not of the setter call sequence that built it.
// The returned slice is a fresh copy.
// Complexity: O(1) time, O(1) space (attribute count is fixed).
func (b Burger) Ingredients() []string {
	ingredients := make([]string, 0, 4)
	if b.Buns != "" {
		ingredients = append(ingredients, b.Buns)
	}
	if b.Patty != "" {
		ingredients = append(ingredients, b.Patty)
	}
	if b.Cheese != "" {
		ingredients = append(ingredients, b.Cheese)
	}
	if b.Sauce != "" {
		ingredients = append(ingredients, b.Sauce)
	}
	return ingredients
}
