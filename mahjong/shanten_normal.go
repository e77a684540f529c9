package mahjong

// Standard-shape evaluator: "k complete sets + 1 pair", with k derived from
// the hand size and declared melds pre-counted as sets.
//
// The search walks the count vector with a first-tile discipline: every
// branch consumes the lowest occupied index, as part of a set, the head
// pair, a partial group, or an isolated tile. Results for a given remaining
// vector are memoized, and only decompositions not dominated on
// (sets, partials, pair, isolated) are kept, so the caller can apply the
// partial-set cap after the fact.

type blockKind int8

const (
	blockRun blockKind = iota
	blockTriplet
	blockPair
	blockProtoRun
	blockProtoTriplet
	blockIsolated
)

// blockNode is one assigned group; nodes chain into a persistent list so
// memoized candidates can share their tails.
type blockNode struct {
	kind  blockKind
	index int8
	gap   int8 // proto-run spacing, 1 or 2
	next  *blockNode
}

func (b *blockNode) tiles() []Tile {
	base := TileFromIndex(int(b.index))
	switch b.kind {
	case blockRun:
		return []Tile{base, TileFromIndex(int(b.index) + 1), TileFromIndex(int(b.index) + 2)}
	case blockTriplet:
		return []Tile{base, base, base}
	case blockPair, blockProtoTriplet:
		return []Tile{base, base}
	case blockProtoRun:
		return []Tile{base, TileFromIndex(int(b.index + b.gap))}
	default:
		return []Tile{base}
	}
}

// normalCand is one non-dominated decomposition of a count-vector suffix.
type normalCand struct {
	sets     int8
	partials int8
	isolated int8
	pair     bool
	blocks   *blockNode
}

type normalKey struct {
	remain    counts
	allowPair bool
}

type normalCalc struct {
	memo map[normalKey][]normalCand
}

func newNormalCalc() *normalCalc {
	return &normalCalc{memo: make(map[normalKey][]normalCand)}
}

func (n *normalCalc) solve(remain counts, allowPair bool) []normalCand {
	first := 0
	for first < TileTypeCount && remain[first] == 0 {
		first++
	}
	if first == TileTypeCount {
		return []normalCand{{}}
	}
	key := normalKey{remain: remain, allowPair: allowPair}
	if cached, ok := n.memo[key]; ok {
		return cached
	}

	var cands []normalCand
	pick := func(kind blockKind, gap int8, offsets ...int) {
		next := remain
		next[first]--
		for _, off := range offsets {
			next[first+off]--
		}
		sub := n.solve(next, allowPair && kind != blockPair)
		for _, s := range sub {
			cands = append(cands, extendCand(s, kind, int8(first), gap))
		}
	}

	span := runSpanByIndex[first]

	pick(blockIsolated, 0)
	if remain[first] >= 2 {
		pick(blockProtoTriplet, 0, 0)
		if allowPair {
			pick(blockPair, 0, 0)
		}
	}
	if remain[first] >= 3 {
		pick(blockTriplet, 0, 0, 0)
	}
	if span >= 1 && remain[first+1] > 0 {
		pick(blockProtoRun, 1, 1)
		if span >= 2 && remain[first+2] > 0 {
			pick(blockRun, 0, 1, 2)
		}
	}
	if span >= 2 && remain[first+2] > 0 {
		pick(blockProtoRun, 2, 2)
	}

	cands = pruneCands(cands)
	n.memo[key] = cands
	return cands
}

func extendCand(s normalCand, kind blockKind, index, gap int8) normalCand {
	s.blocks = &blockNode{kind: kind, index: index, gap: gap, next: s.blocks}
	switch kind {
	case blockRun, blockTriplet:
		s.sets++
	case blockProtoRun, blockProtoTriplet:
		s.partials++
	case blockPair:
		s.pair = true
	case blockIsolated:
		s.isolated++
	}
	return s
}

// dominates reports whether a is at least as good as b in every component.
func dominates(a, b normalCand) bool {
	return a.sets >= b.sets && a.partials >= b.partials &&
		a.isolated <= b.isolated && (a.pair || !b.pair)
}

func pruneCands(cands []normalCand) []normalCand {
	var kept []normalCand
	for _, c := range cands {
		dominated := false
		for _, k := range kept {
			if dominates(k, c) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		dst := kept[:0]
		for _, k := range kept {
			if !dominates(c, k) {
				dst = append(dst, k)
			}
		}
		kept = append(dst, c)
	}
	return kept
}

// calcStandard scores every surviving candidate with the generalized
// formula shanten = 2*(k-sets) - partials - pair, where partial sets only
// count up to the k-sets slots actually left open. Ties prefer fewer
// isolated tiles.
func calcStandard(h *Hand) (int, *Decompose) {
	k := h.TargetSets()
	meldSets := len(h.melds)
	cands := newNormalCalc().solve(h.countVector(), true)

	best := MaxShanten
	bestIso := int8(127)
	var bestCand normalCand
	for _, cand := range cands {
		sets := meldSets + int(cand.sets)
		spare := k - sets
		if spare < 0 {
			continue
		}
		partials := int(cand.partials)
		if partials > spare {
			partials = spare
		}
		s := 2*spare - partials
		if cand.pair {
			s--
		}
		if s < best || (s == best && cand.isolated < bestIso) {
			best, bestCand, bestIso = s, cand, cand.isolated
		}
	}
	return best, standardDecompose(h, bestCand)
}

func standardDecompose(h *Hand, cand normalCand) *Decompose {
	d := &Decompose{Shape: ShapeStandard, Melds: h.Melds()}
	for b := cand.blocks; b != nil; b = b.next {
		switch b.kind {
		case blockRun, blockTriplet:
			d.Sets = append(d.Sets, b.tiles())
		case blockPair:
			d.Pair = b.tiles()
		case blockProtoRun, blockProtoTriplet:
			d.Partials = append(d.Partials, b.tiles())
		case blockIsolated:
			d.Isolated = append(d.Isolated, b.tiles()...)
		}
	}
	return d
}
