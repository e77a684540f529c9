package mahjong_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kevin-chtw/tw_shanten/mahjong"
)

func mustParse(t *testing.T, s string) *mahjong.Hand {
	t.Helper()
	h, err := mahjong.ParseHand(s)
	if err != nil {
		t.Fatalf("ParseHand(%q) failed: %v", s, err)
	}
	return h
}

func TestAnalyze(t *testing.T) {
	testCases := []struct {
		hand      string
		want      int
		wantShape mahjong.Shape
	}{
		{"123m222p456s777z99m", -1, mahjong.ShapeStandard},
		{"123m222p456s77z99m", 0, mahjong.ShapeStandard},
		{"1122m3344p5566s77z", -1, mahjong.ShapeSevenPairs},
		{"199m19p9s1234567z", 0, mahjong.ShapeThirteenOrphans},
		{"123m55s[777z]", -1, mahjong.ShapeStandard},
		// 无雀头听牌
		{"123m456m789m123p45p", 0, mahjong.ShapeStandard},
		// 国士无双十三面
		{"129m19p19s1234567z", 0, mahjong.ShapeThirteenOrphans},
		{"12m999p9s12345667z", 2, mahjong.ShapeThirteenOrphans},
		// 标准型与七对子同向听时取标准型
		{"112233m4478p3557s", 1, mahjong.ShapeStandard},
		// 副露后不再判定七对子和国士
		{"19m19p19s1234z[555z]", 6, mahjong.ShapeStandard},
		// 五副面子的大手牌
		{"111222333m444555p66s", -1, mahjong.ShapeStandard},
		{"11m", -1, mahjong.ShapeStandard},
		{"12m", 0, mahjong.ShapeStandard},
	}

	for _, tc := range testCases {
		t.Run(tc.hand, func(t *testing.T) {
			res := mahjong.Analyze(mustParse(t, tc.hand))
			if res.Shanten != tc.want || res.Shape != tc.wantShape {
				t.Errorf("Analyze(%s) = %d via %v, want %d via %v",
					tc.hand, res.Shanten, res.Shape, tc.want, tc.wantShape)
			}
		})
	}
}

func TestAnalyzeMeldEquivalence(t *testing.T) {
	concealed := mustParse(t, "123m222p456s77z99m")
	melded := mustParse(t, "123m456s77z99m[222p]")
	a, b := mahjong.Analyze(concealed), mahjong.Analyze(melded)
	if a.Shanten != b.Shanten {
		t.Errorf("shanten differs with meld: concealed %d, melded %d", a.Shanten, b.Shanten)
	}
	if melded.TargetSets() != 4 {
		t.Errorf("TargetSets = %d, want 4", melded.TargetSets())
	}

	small := mustParse(t, "123m55s[777z]")
	if small.TargetSets() != 2 {
		t.Errorf("TargetSets = %d, want 2", small.TargetSets())
	}
}

func TestAnalyzeDrawImprovesByOne(t *testing.T) {
	// 从和牌中去掉一张，向听数应恰好变为0
	full := mustParse(t, "123m222p456s777z99m")
	if got := mahjong.Analyze(full).Shanten; got != -1 {
		t.Fatalf("full hand shanten = %d, want -1", got)
	}
	waiting := mustParse(t, "123m222p456s777z9m")
	if got := mahjong.Analyze(waiting).Shanten; got != 0 {
		t.Errorf("waiting hand shanten = %d, want 0", got)
	}
}

func TestAnalyzeWithOptions(t *testing.T) {
	sevenPairs := mustParse(t, "1122m3344p5566s77z")
	res := mahjong.AnalyzeWith(sevenPairs, mahjong.Options{NoSevenPairs: true})
	if res.Shanten != 3 || res.Shape != mahjong.ShapeStandard {
		t.Errorf("with seven pairs off: got %d via %v, want 3 via standard", res.Shanten, res.Shape)
	}

	orphans := mustParse(t, "199m19p9s1234567z")
	res = mahjong.AnalyzeWith(orphans, mahjong.Options{NoThirteenOrphans: true})
	if res.Shanten != 5 || res.Shape != mahjong.ShapeSevenPairs {
		t.Errorf("with thirteen orphans off: got %d via %v, want 5 via seven-pairs", res.Shanten, res.Shape)
	}
}

func TestAnalyzeDecompose(t *testing.T) {
	res := mahjong.Analyze(mustParse(t, "123m222p456s777z99m"))
	d := res.Decompose
	if len(d.Sets) != 4 {
		t.Errorf("Sets count = %d, want 4", len(d.Sets))
	}
	if mahjong.TilesName(d.Pair) != "9m9m" {
		t.Errorf("Pair = %q, want 9m9m", mahjong.TilesName(d.Pair))
	}
	if len(d.Partials) != 0 || len(d.Isolated) != 0 {
		t.Errorf("complete hand has partials %v, isolated %v", d.Partials, d.Isolated)
	}
}

func TestHandSizeRejected(t *testing.T) {
	for _, s := range []string{"1234567m", "1m", "123m"} {
		t.Run(s, func(t *testing.T) {
			if _, err := mahjong.ParseHand(s); !errors.Is(err, mahjong.ErrHandSize) {
				t.Errorf("ParseHand(%q) err = %v, want ErrHandSize", s, err)
			}
		})
	}
}

func TestWaits(t *testing.T) {
	testCases := []struct {
		hand string
		want string
	}{
		{"123m222p456s77z99m", "9m7z"},
		{"123m456m789m123p4p", "1p4p"},
		// 国士无双十三面听
		{"19m19p19s1234567z", "1m9m1p9p1s9s1z2z3z4z5z6z7z"},
		// 两面
		{"123m222p45s777z99m", "3s6s"},
	}

	for _, tc := range testCases {
		t.Run(tc.hand, func(t *testing.T) {
			waits, err := mahjong.Waits(mustParse(t, tc.hand))
			if err != nil {
				t.Fatalf("Waits(%s) failed: %v", tc.hand, err)
			}
			if got := mahjong.TilesName(waits); got != tc.want {
				t.Errorf("Waits(%s) = %s, want %s", tc.hand, got, tc.want)
			}
		})
	}
}

func TestWaitsRequiresWaitingHand(t *testing.T) {
	// 14张的合法手牌不能计算听牌; 但这不是ErrHandSize的范畴
	full := mustParse(t, "123m222p456s777z99m")
	_, err := mahjong.Waits(full)
	if err == nil || !strings.Contains(err.Error(), "13-tile hand") {
		t.Fatalf("Waits on 14-tile hand err = %v, want the 13-tile requirement", err)
	}
	if errors.Is(err, mahjong.ErrHandSize) {
		t.Errorf("Waits error wraps ErrHandSize for a valid hand: %v", err)
	}
}

func TestWaitsSkipsExhaustedTile(t *testing.T) {
	// 手中已有四张7z, 第五张不可能被听
	h := mustParse(t, "123m22p456s7777z9m")
	waits, err := mahjong.Waits(h)
	if err != nil {
		t.Fatalf("Waits failed: %v", err)
	}
	for _, w := range waits {
		if w.Name() == "7z" {
			t.Errorf("waits %v include exhausted 7z", waits)
		}
	}
}
