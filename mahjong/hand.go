package mahjong

import (
	"fmt"
	"slices"
	"strings"
)

// counts is the per-identity tile-count vector the evaluators search over.
// Being a fixed-size array it doubles as a memoization key.
type counts [TileTypeCount]int8

// Hand is an immutable snapshot of the concealed tiles plus declared melds.
// Build one with NewHand or ParseHand; a constructed Hand is always valid.
type Hand struct {
	tiles map[Tile]int
	melds []Meld
}

// NewHand validates tile identities, meld shapes, per-tile copy limits and
// the overall hand size, in that order.
func NewHand(concealed []Tile, melds []Meld) (*Hand, error) {
	h := &Hand{tiles: make(map[Tile]int, len(concealed)), melds: slices.Clone(melds)}
	for _, t := range concealed {
		if !t.IsValid() {
			return nil, fmt.Errorf("invalid tile value %d", int32(t))
		}
		h.tiles[t]++
	}
	for _, m := range h.melds {
		if classifyMeld(m.tiles) != m.meldType || m.meldType == MeldNone {
			return nil, fmt.Errorf("%w: %s", ErrMeldShape, tilesNotation(m.tiles))
		}
	}
	for t := range h.tiles {
		if h.copies(t) > MaxSameTile {
			return nil, fmt.Errorf("%w: fifth %s", ErrTileCount, t.Name())
		}
	}
	for _, m := range h.melds {
		if h.copies(m.tiles[0]) > MaxSameTile {
			return nil, fmt.Errorf("%w: fifth %s", ErrTileCount, m.tiles[0].Name())
		}
	}
	total := h.TotalCount()
	if total%3 != 2 && total != TileCountWaiting {
		return nil, fmt.Errorf("%w: got %d", ErrHandSize, total)
	}
	return h, nil
}

const (
	// TileCountFull is the canonical full hand (after draw).
	TileCountFull = 14
	// TileCountWaiting is the canonical waiting hand, the only accepted
	// total not of the form 3k+2.
	TileCountWaiting = 13
)

// copies counts one tile identity across concealed tiles and melds.
func (h *Hand) copies(t Tile) int {
	n := h.tiles[t]
	for _, m := range h.melds {
		for _, mt := range m.tiles {
			if mt == t {
				n++
			}
		}
	}
	return n
}

// Count returns the concealed copies of one tile.
func (h *Hand) Count(t Tile) int {
	return h.tiles[t]
}

func (h *Hand) Melds() []Meld {
	return slices.Clone(h.melds)
}

// ConcealedCount is the number of concealed tiles.
func (h *Hand) ConcealedCount() int {
	n := 0
	for _, c := range h.tiles {
		n += c
	}
	return n
}

// TotalCount counts melds as three tiles' worth each: a kon is one set and
// contributes one set-unit to the 3k+2 arithmetic despite holding four tiles.
func (h *Hand) TotalCount() int {
	return h.ConcealedCount() + 3*len(h.melds)
}

// TargetSets derives k, the number of complete sets a winning hand needs.
func (h *Hand) TargetSets() int {
	return h.TotalCount() / 3
}

// Canonical reports whether the side rules (seven pairs, thirteen orphans)
// may be evaluated: the fixed k=4 shape with no melds.
func (h *Hand) Canonical() bool {
	return len(h.melds) == 0 &&
		(h.ConcealedCount() == TileCountWaiting || h.ConcealedCount() == TileCountFull)
}

// Tiles returns the concealed tiles in ascending order.
func (h *Hand) Tiles() []Tile {
	res := make([]Tile, 0, h.ConcealedCount())
	for t, c := range h.tiles {
		res = append(res, makeTiles(t, c)...)
	}
	slices.Sort(res)
	return res
}

func (h *Hand) countVector() counts {
	var c counts
	for t, n := range h.tiles {
		c[t.Index()] = int8(n)
	}
	return c
}

func (h *Hand) withDraw(t Tile) *Hand {
	tiles := make(map[Tile]int, len(h.tiles)+1)
	for k, v := range h.tiles {
		tiles[k] = v
	}
	tiles[t]++
	return &Hand{tiles: tiles, melds: h.melds}
}

func (h *Hand) String() string {
	var sb strings.Builder
	sb.WriteString(tilesNotation(h.Tiles()))
	for _, m := range h.melds {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// tilesNotation renders sorted tiles in compact notation, e.g. "123m55z".
func tilesNotation(tiles []Tile) string {
	var sb strings.Builder
	for i, t := range tiles {
		name := t.Name()
		sb.WriteString(name[:len(name)-1])
		if i+1 == len(tiles) || tiles[i+1].Name()[1] != name[1] {
			sb.WriteByte(name[1])
		}
	}
	return sb.String()
}
