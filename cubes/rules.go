// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

// Limit is the number of cubes of one color in the bag.
type Limit struct {
	Color string
	Max   int
}

// Bag lists the colors the rules care about, with their limits.
// Order matters only for reporting.
type Bag []Limit

// DefaultBag returns the bag from the puzzle: 12 red, 13 green, 14 blue.
func DefaultBag() Bag {
	return Bag{
		{Color: "red", Max: 12},
		{Color: "green", Max: 13},
		{Color: "blue", Max: 14},
	}
}

// Limit returns the limit for a color and whether the color is in the bag.
func (b Bag) Limit(color string) (int, bool) {
	for _, limit := range b {
		if limit.Color == color {
			return limit.Max, true
		}
	}
	return 0, false
}

// Possible reports whether every entry of the game fits in the bag.
// Colors that are not in the bag never make a game impossible.
func (b Bag) Possible(g *Game) bool {
	for _, draw := range g.Draws {
		for _, entry := range draw {
			if limit, ok := b.Limit(entry.Color); ok && entry.Count > limit {
				return false
			}
		}
	}
	return true
}

// MinimumSet returns the largest count seen for each bag color in the game.
// Colors never seen map to 0.
func (b Bag) MinimumSet(g *Game) map[string]int {
	set := make(map[string]int, len(b))
	for _, limit := range b {
		set[limit.Color] = 0
	}
	for _, draw := range g.Draws {
		for _, entry := range draw {
			if seen, ok := set[entry.Color]; ok && entry.Count > seen {
				set[entry.Color] = entry.Count
			}
		}
	}
	return set
}

// Power returns the product of the minimum set.
// Colors with a zero minimum are left out of the product, so a game
// that shows none of the bag colors has a power of 1.
func (b Bag) Power(g *Game) int {
	set := b.MinimumSet(g)
	power := 1
	for _, limit := range b {
		if n := set[limit.Color]; n > 0 {
			power *= n
		}
	}
	return power
}
