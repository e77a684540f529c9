package mahjong

import "errors"

// Validation failures are detected when a hand is built, never mid-search.
var (
	// ErrHandSize reports a total tile count (concealed plus three per meld)
	// that is neither 3k+2 nor the canonical 13-tile waiting hand.
	ErrHandSize = errors.New("hand size must be 3k+2 tiles")

	// ErrTileCount reports a fifth copy of some tile across hand and melds.
	ErrTileCount = errors.New("more than four copies of a tile")

	// ErrMeldShape reports a declared meld that is not a chow, pon or kon.
	ErrMeldShape = errors.New("invalid meld")
)
