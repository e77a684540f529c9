package mahjong

import "strings"

// Decompose describes how one evaluator assigned the hand's tiles. It is
// informational: the shanten number is already settled when one is built.
type Decompose struct {
	Shape Shape

	// Melds echoes the declared melds; each is one completed set.
	Melds []Meld
	// Sets holds concealed complete groups: runs and triplets for the
	// standard shape, completed pairs for seven pairs.
	Sets [][]Tile
	// Pair is the reserved head pair, nil when none was taken.
	Pair []Tile
	// Partials holds two-tile groups one tile short of a set.
	Partials [][]Tile
	// Kept holds the terminal/honor tiles counting toward thirteen orphans.
	Kept []Tile
	// Isolated holds tiles with no structural role.
	Isolated []Tile
}

func (d *Decompose) String() string {
	var parts []string
	section := func(label string, groups [][]Tile) {
		if len(groups) == 0 {
			return
		}
		names := make([]string, len(groups))
		for i, g := range groups {
			names[i] = tilesNotation(g)
		}
		parts = append(parts, label+": "+strings.Join(names, " "))
	}

	if len(d.Melds) > 0 {
		names := make([]string, len(d.Melds))
		for i, m := range d.Melds {
			names[i] = m.String()
		}
		parts = append(parts, "melds: "+strings.Join(names, " "))
	}
	section("sets", d.Sets)
	if len(d.Pair) > 0 {
		parts = append(parts, "pair: "+tilesNotation(d.Pair))
	}
	section("partials", d.Partials)
	if len(d.Kept) > 0 {
		parts = append(parts, "orphans: "+singleNotation(d.Kept))
	}
	if len(d.Isolated) > 0 {
		parts = append(parts, "floating: "+singleNotation(d.Isolated))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " | ")
}

func singleNotation(tiles []Tile) string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.Name()
	}
	return strings.Join(names, " ")
}
