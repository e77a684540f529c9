package mahjong

import "fmt"

// ParseHand reads the usual tile notation and builds a validated Hand.
//
// Tiles may be out of order and digits share a trailing type letter:
// "1m2m3m4p4p" and "123m44p" are the same hand. Melds already declared are
// wrapped in brackets and excluded from the concealed portion, e.g.
// "123445m4445p8s[111z]". Spaces are ignored.
func ParseHand(s string) (*Hand, error) {
	var (
		concealed []Tile
		melds     []Meld
		meldStash []Tile
		digits    []byte
		inMeld    bool
	)

	flush := func(letter byte, index int) error {
		if len(digits) == 0 {
			return fmt.Errorf("unused type character %q at index %d", letter, index)
		}
		for _, d := range digits {
			t, err := nameToTile(int(d-'0'), letter)
			if err != nil {
				return err
			}
			if inMeld {
				meldStash = append(meldStash, t)
			} else {
				concealed = append(concealed, t)
			}
		}
		digits = digits[:0]
		return nil
	}

	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == 'm' || ch == 'p' || ch == 's' || ch == 'z':
			if err := flush(ch, i); err != nil {
				return nil, err
			}
		case ch >= '1' && ch <= '9':
			digits = append(digits, ch)
		case ch == '[':
			if inMeld {
				return nil, fmt.Errorf("second '[' found at index %d", i)
			}
			if len(digits) > 0 {
				return nil, fmt.Errorf("need 'm' 'p' 's' 'z' but found '[' at index %d", i)
			}
			inMeld = true
		case ch == ']':
			if !inMeld {
				return nil, fmt.Errorf("unmatched ']' found at index %d", i)
			}
			if len(digits) > 0 {
				return nil, fmt.Errorf("need 'm' 'p' 's' 'z' but found ']' at index %d", i)
			}
			meld, err := NewMeld(meldStash)
			if err != nil {
				return nil, err
			}
			melds = append(melds, meld)
			meldStash = nil
			inMeld = false
		case ch == ' ':
		default:
			return nil, fmt.Errorf("unknown character %q at index %d", ch, i)
		}
	}
	if inMeld {
		return nil, fmt.Errorf("unmatched '[' at end of input")
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("no type specified for %q at end of input", digits)
	}
	return NewHand(concealed, melds)
}
