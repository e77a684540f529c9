package mahjong

import (
	"fmt"
	"slices"
)

// Meld is a declared, already-exposed group. A kon still counts as one set.
type Meld struct {
	meldType MeldType
	tiles    []Tile
}

// NewMeld classifies and validates a declared group. Tiles may be given in
// any order.
func NewMeld(tiles []Tile) (Meld, error) {
	sorted := slices.Clone(tiles)
	slices.Sort(sorted)
	for _, t := range sorted {
		if !t.IsValid() {
			return Meld{}, fmt.Errorf("%w: %s", ErrMeldShape, TilesName(sorted))
		}
	}
	typ := classifyMeld(sorted)
	if typ == MeldNone {
		return Meld{}, fmt.Errorf("%w: %s", ErrMeldShape, tilesNotation(sorted))
	}
	return Meld{meldType: typ, tiles: sorted}, nil
}

func classifyMeld(sorted []Tile) MeldType {
	switch len(sorted) {
	case 4:
		if sorted[0] == sorted[1] && sorted[0] == sorted[2] && sorted[0] == sorted[3] {
			return MeldKon
		}
	case 3:
		if sorted[0] == sorted[1] && sorted[0] == sorted[2] {
			return MeldPon
		}
		if sorted[0].IsSuit() &&
			sorted[1] == MakeTile(sorted[0].Color(), sorted[0].Point()+1) &&
			sorted[2] == MakeTile(sorted[0].Color(), sorted[0].Point()+2) {
			return MeldChow
		}
	}
	return MeldNone
}

func (m Meld) Type() MeldType {
	return m.meldType
}

// Tiles returns the meld's tiles in ascending order.
func (m Meld) Tiles() []Tile {
	return slices.Clone(m.tiles)
}

// Size is the physical tile count (3 or 4).
func (m Meld) Size() int {
	return len(m.tiles)
}

func (m Meld) String() string {
	return "[" + tilesNotation(m.tiles) + "]"
}
