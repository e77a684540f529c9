package mahjong

// 牌的花色
type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万 (man)
	ColorDot                         // 筒 (pin)
	ColorBamboo                      // 条 (sou)
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var SameTileCountByColor = [ColorEnd]int{4, 4, 4, 4, 4}
var SeqBeginByColor = [ColorEnd]int{0, 9, 18, 27, 31}

// TileTypeCount is the number of distinct tile identities (9+9+9+4+3).
const TileTypeCount = 34

// MaxSameTile is the physical copy limit for any single tile identity.
const MaxSameTile = 4

// 和牌牌型
type Shape int

const (
	ShapeStandard        Shape = iota // 面子手
	ShapeSevenPairs                   // 七对子
	ShapeThirteenOrphans              // 国士无双
)

func (s Shape) String() string {
	switch s {
	case ShapeStandard:
		return "standard"
	case ShapeSevenPairs:
		return "seven-pairs"
	case ShapeThirteenOrphans:
		return "thirteen-orphans"
	default:
		return "unknown"
	}
}

// MaxShanten is an upper bound used before any decomposition is scored.
const MaxShanten = 99

type MeldType int

const (
	MeldNone MeldType = iota
	MeldChow          // 吃: three consecutive suited tiles
	MeldPon           // 碰: three identical tiles
	MeldKon           // 杠: four identical tiles, still one set
)

func (m MeldType) String() string {
	switch m {
	case MeldChow:
		return "chow"
	case MeldPon:
		return "pon"
	case MeldKon:
		return "kon"
	default:
		return "none"
	}
}
