// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

// Game is one record from the game log: an id and the draws made in it.
type Game struct {
	ID    int
	Draws []Draw
}

// Draw is one handful of cubes shown together.
// Entries keep the order they had in the input.
type Draw []Entry

// Entry is a count of cubes of one color.
// Color is free-form text; only the colors in a Bag take part in the rules.
type Entry struct {
	Count int
	Color string
}

// Entries returns every entry of the game, in input order.
func (g *Game) Entries() []Entry {
	var list []Entry
	for _, draw := range g.Draws {
		list = append(list, draw...)
	}
	return list
}
