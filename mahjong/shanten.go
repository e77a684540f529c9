package mahjong

import "fmt"

// Result is the aggregate answer for one hand: the minimum shanten across
// all applicable shapes, which shape achieved it, and the decomposition.
// Shanten -1 means the hand is complete; 0 means tenpai.
type Result struct {
	Shanten   int
	Shape     Shape
	Decompose *Decompose
}

// Options toggles the side rules off; the standard shape always runs.
type Options struct {
	NoSevenPairs      bool
	NoThirteenOrphans bool
}

// Analyze computes the shanten number of a hand with every shape enabled.
func Analyze(h *Hand) *Result {
	return AnalyzeWith(h, Options{})
}

// AnalyzeWith runs the standard-shape evaluator, then the seven-pairs and
// thirteen-orphans rules when the hand is the canonical size with no melds,
// and keeps the minimum. On ties the standard shape wins.
func AnalyzeWith(h *Hand, opts Options) *Result {
	shanten, d := calcStandard(h)
	res := &Result{Shanten: shanten, Shape: ShapeStandard, Decompose: d}
	if !h.Canonical() {
		return res
	}
	if !opts.NoSevenPairs {
		if s, d7 := calcSevenPairs(h); s < res.Shanten {
			res = &Result{Shanten: s, Shape: ShapeSevenPairs, Decompose: d7}
		}
	}
	if !opts.NoThirteenOrphans {
		if s, d13 := calcThirteenOrphans(h); s < res.Shanten {
			res = &Result{Shanten: s, Shape: ShapeThirteenOrphans, Decompose: d13}
		}
	}
	return res
}

// calcSevenPairs needs seven distinct pairs; surplus copies of a paired
// tile are wasted, and with fewer than seven distinct kinds in hand the
// missing kinds must be fetched too.
func calcSevenPairs(h *Hand) (int, *Decompose) {
	d := &Decompose{Shape: ShapeSevenPairs}
	pairs, kinds := 0, 0
	vec := h.countVector()
	for i, cnt := range vec {
		if cnt == 0 {
			continue
		}
		kinds++
		t := tileByIndex[i]
		if cnt >= 2 {
			pairs++
			d.Sets = append(d.Sets, []Tile{t, t})
			d.Isolated = append(d.Isolated, makeTiles(t, int(cnt)-2)...)
		} else {
			d.Isolated = append(d.Isolated, t)
		}
	}
	shanten := 6 - pairs
	if kinds < 7 {
		shanten += 7 - kinds
	}
	return shanten, d
}

// calcThirteenOrphans counts distinct terminal/honor kinds plus one pair
// among them; other tiles are ignored rather than invalidating the rule.
func calcThirteenOrphans(h *Hand) (int, *Decompose) {
	d := &Decompose{Shape: ShapeThirteenOrphans}
	kinds, hasPair := 0, false
	for _, t := range terminalAndHonorTiles() {
		cnt := h.Count(t)
		if cnt == 0 {
			continue
		}
		kinds++
		kept := 1
		if cnt >= 2 && !hasPair {
			hasPair = true
			kept = 2
		}
		d.Kept = append(d.Kept, makeTiles(t, kept)...)
		d.Isolated = append(d.Isolated, makeTiles(t, cnt-kept)...)
	}
	for i, cnt := range h.countVector() {
		if t := tileByIndex[i]; cnt > 0 && !t.IsTerminalOrHonor() {
			d.Isolated = append(d.Isolated, makeTiles(t, int(cnt))...)
		}
	}
	shanten := 13 - kinds
	if hasPair {
		shanten--
	}
	return shanten, d
}

// Waits reports the tile kinds whose draw completes a canonical 13-tile
// waiting hand, in ascending order. Tiles with all four copies already
// visible in the hand are skipped.
func Waits(h *Hand) ([]Tile, error) {
	return WaitsWith(h, Options{})
}

func WaitsWith(h *Hand, opts Options) ([]Tile, error) {
	if h.TotalCount() != TileCountWaiting {
		return nil, fmt.Errorf("waits need a %d-tile hand, got %d", TileCountWaiting, h.TotalCount())
	}
	var waits []Tile
	for i := 0; i < TileTypeCount; i++ {
		t := tileByIndex[i]
		if h.copies(t) >= MaxSameTile {
			continue
		}
		if AnalyzeWith(h.withDraw(t), opts).Shanten == -1 {
			waits = append(waits, t)
		}
	}
	return waits, nil
}
