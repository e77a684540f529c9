package mahjong

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	TileNull Tile = -1
	TileInf  Tile = MakeTile(ColorEnd, 0)
)

// Tile packs color and point into one comparable value; ordering by the
// encoded value matches (color, point) ordering.
type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | (point << 4) | 1)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf {
		return false
	}
	c, p := t.Info()
	return c >= ColorBegin && c < ColorEnd && p >= 0 && p < PointCountByColor[c]
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorBamboo
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsTerminal() bool { // 幺九的数牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

// Index maps a tile onto the linear 0..33 range used by the evaluators.
func (t Tile) Index() int {
	return SeqBeginByColor[t.Color()] + t.Point()
}

// 静态表: linear index -> tile, and how many higher points remain in the
// same suited color (0 for honors, which form no sequences).
var (
	tileByIndex    [TileTypeCount]Tile
	runSpanByIndex [TileTypeCount]int
)

func init() {
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			i := SeqBeginByColor[c] + p
			tileByIndex[i] = MakeTile(c, p)
			if c <= ColorBamboo {
				runSpanByIndex[i] = PointCountByColor[c] - 1 - p
			}
		}
	}
}

// TileFromIndex is the inverse of Tile.Index.
func TileFromIndex(index int) Tile {
	if index < 0 || index >= TileTypeCount {
		return TileNull
	}
	return tileByIndex[index]
}

// Name renders the tile in the usual suited/honor notation: 1m..9m, 1p..9p,
// 1s..9s and 1z..7z with winds first, then dragons.
func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "m"
	case ColorDot:
		return strconv.Itoa(p+1) + "p"
	case ColorBamboo:
		return strconv.Itoa(p+1) + "s"
	case ColorWind:
		return strconv.Itoa(p+1) + "z"
	case ColorDragon:
		return strconv.Itoa(p+5) + "z"
	default:
		return ""
	}
}

func (t Tile) String() string {
	return t.Name()
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, "")
}

func nameToTile(point int, letter byte) (Tile, error) {
	switch letter {
	case 'm':
		return MakeTile(ColorCharacter, point-1), nil
	case 'p':
		return MakeTile(ColorDot, point-1), nil
	case 's':
		return MakeTile(ColorBamboo, point-1), nil
	case 'z':
		if point <= 4 {
			return MakeTile(ColorWind, point-1), nil
		}
		if point <= 7 {
			return MakeTile(ColorDragon, point-5), nil
		}
		return TileNull, fmt.Errorf("'%d%c' is not a valid tile", point, letter)
	}
	return TileNull, fmt.Errorf("'%d%c' is not a valid tile", point, letter)
}

func makeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

// terminalAndHonorTiles lists the thirteen identities used by the
// thirteen-orphans rule.
func terminalAndHonorTiles() []Tile {
	res := []Tile{
		MakeTile(ColorCharacter, 0),
		MakeTile(ColorCharacter, 8),
		MakeTile(ColorDot, 0),
		MakeTile(ColorDot, 8),
		MakeTile(ColorBamboo, 0),
		MakeTile(ColorBamboo, 8),
	}
	for p := 0; p < PointCountByColor[ColorWind]; p++ {
		res = append(res, MakeTile(ColorWind, p))
	}
	for p := 0; p < PointCountByColor[ColorDragon]; p++ {
		res = append(res, MakeTile(ColorDragon, p))
	}
	return res
}
