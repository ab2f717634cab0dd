package notation

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"xiangqi/internal/xiangqi"
)

func newTestResolver() *Resolver {
	return NewResolver(zerolog.Nop())
}

func mustPlace(t *testing.T, b *xiangqi.Board, kind xiangqi.PieceKind, side xiangqi.Side, row, col int) {
	t.Helper()
	if _, ok := b.Place(kind, side, xiangqi.Pos{Row: row, Col: col}); !ok {
		t.Fatalf("place %v %v at (%d,%d) failed", side, kind, row, col)
	}
}

func TestResolveOpeningMoves(t *testing.T) {
	cases := []struct {
		text string
		side xiangqi.Side
		kind xiangqi.PieceKind
		from xiangqi.Pos
		to   xiangqi.Pos
	}{
		{"炮二平五", xiangqi.Red, xiangqi.KindCannon, xiangqi.Pos{Row: 7, Col: 7}, xiangqi.Pos{Row: 7, Col: 4}},
		{"马8进7", xiangqi.Black, xiangqi.KindHorse, xiangqi.Pos{Row: 0, Col: 7}, xiangqi.Pos{Row: 2, Col: 6}},
		{"兵七进一", xiangqi.Red, xiangqi.KindSoldier, xiangqi.Pos{Row: 6, Col: 2}, xiangqi.Pos{Row: 5, Col: 2}},
		{"车一平二", xiangqi.Red, xiangqi.KindChariot, xiangqi.Pos{Row: 9, Col: 8}, xiangqi.Pos{Row: 9, Col: 7}},
		{"马二进三", xiangqi.Red, xiangqi.KindHorse, xiangqi.Pos{Row: 9, Col: 7}, xiangqi.Pos{Row: 7, Col: 6}},
		{"象3进5", xiangqi.Black, xiangqi.KindElephant, xiangqi.Pos{Row: 0, Col: 2}, xiangqi.Pos{Row: 2, Col: 4}},
		{"卒3进1", xiangqi.Black, xiangqi.KindSoldier, xiangqi.Pos{Row: 3, Col: 2}, xiangqi.Pos{Row: 4, Col: 2}},
	}
	r := newTestResolver()
	for _, c := range cases {
		b := xiangqi.NewInitialBoard()
		mv, err := r.Resolve(c.text, c.side, b)
		if err != nil {
			t.Fatalf("%s: %v", c.text, err)
		}
		if mv.Kind != c.kind || mv.From != c.from || mv.To != c.to {
			t.Fatalf("%s: got %v %+v -> %+v, want %v %+v -> %+v",
				c.text, mv.Kind, mv.From, mv.To, c.kind, c.from, c.to)
		}
		if mv.Side != c.side || mv.Notation != c.text {
			t.Fatalf("%s: move must carry side and notation text", c.text)
		}
	}
}

func TestResolveTypedErrors(t *testing.T) {
	r := newTestResolver()
	b := xiangqi.NewInitialBoard()

	if _, err := r.Resolve("无效棋谱", xiangqi.Red, b); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("garbage token error = %v, want ErrInvalidNotation", err)
	}
	if _, err := r.Resolve("炮十平五", xiangqi.Red, b); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("file 10 error = %v, want ErrInvalidFile", err)
	}
	if _, err := r.Resolve("炮二平", xiangqi.Red, b); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("short token error = %v, want ErrInvalidNotation", err)
	}
	if _, err := r.Resolve("炮二平五", xiangqi.NoSide, b); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("bad side error = %v, want ErrInvalidColor", err)
	}
	// 该线上没有相，±2 列内也没有
	empty := xiangqi.NewBoard()
	mustPlace(t, empty, xiangqi.KindGeneral, xiangqi.Red, 9, 4)
	if _, err := r.Resolve("相一进三", xiangqi.Red, empty); !errors.Is(err, ErrPieceNotFound) {
		t.Fatalf("missing piece error = %v, want ErrPieceNotFound", err)
	}
	// 马跳不到三列开外
	if _, err := r.Resolve("马二进六", xiangqi.Red, b); !errors.Is(err, ErrIllegalGeometry) {
		t.Fatalf("impossible horse error = %v, want ErrIllegalGeometry", err)
	}
	// 车进出界
	if _, err := r.Resolve("车一进十", xiangqi.Red, b); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("off-board chariot error = %v, want ErrOutOfBounds", err)
	}
}

func TestResolveDisambiguationIsDeterministic(t *testing.T) {
	r := newTestResolver()

	// 同线两门红炮：取靠黑方的那门（行号小）
	b := xiangqi.NewBoard()
	mustPlace(t, b, xiangqi.KindCannon, xiangqi.Red, 7, 4)
	mustPlace(t, b, xiangqi.KindCannon, xiangqi.Red, 3, 4)
	for i := 0; i < 5; i++ {
		mv, err := r.Resolve("炮五平四", xiangqi.Red, b)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if mv.From != (xiangqi.Pos{Row: 3, Col: 4}) {
			t.Fatalf("red must pick the front cannon (row 3), got %+v", mv.From)
		}
	}

	// 黑方同线两个卒：取行号大的
	b2 := xiangqi.NewBoard()
	mustPlace(t, b2, xiangqi.KindSoldier, xiangqi.Black, 4, 2)
	mustPlace(t, b2, xiangqi.KindSoldier, xiangqi.Black, 6, 2)
	mv, err := r.Resolve("卒3进1", xiangqi.Black, b2)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mv.From != (xiangqi.Pos{Row: 6, Col: 2}) {
		t.Fatalf("black must pick the front soldier (row 6), got %+v", mv.From)
	}

	// 三子同线：仍取最靠前的
	mustPlace(t, b2, xiangqi.KindSoldier, xiangqi.Black, 5, 2)
	mv, err = r.Resolve("卒3进1", xiangqi.Black, b2)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mv.From != (xiangqi.Pos{Row: 6, Col: 2}) {
		t.Fatalf("three candidates: still the front one, got %+v", mv.From)
	}
}

func TestResolveFallbackColumnSearch(t *testing.T) {
	r := newTestResolver()

	// 记谱说二线（col 7），炮其实在四线（col 5）：±2 列回退要能找到
	b := xiangqi.NewBoard()
	mustPlace(t, b, xiangqi.KindCannon, xiangqi.Red, 7, 5)
	mv, err := r.Resolve("炮二平五", xiangqi.Red, b)
	if err != nil {
		t.Fatalf("fallback search must recover shifted records: %v", err)
	}
	if mv.From != (xiangqi.Pos{Row: 7, Col: 5}) {
		t.Fatalf("fallback picked %+v, want (7,5)", mv.From)
	}
	if mv.To != (xiangqi.Pos{Row: 7, Col: 4}) {
		t.Fatalf("destination still follows the token, got %+v", mv.To)
	}

	// 三列开外：不再扩大搜索
	b2 := xiangqi.NewBoard()
	mustPlace(t, b2, xiangqi.KindCannon, xiangqi.Red, 7, 3)
	if _, err := r.Resolve("炮二平五", xiangqi.Red, b2); !errors.Is(err, ErrPieceNotFound) {
		t.Fatalf("fallback radius is bounded at 2, got %v", err)
	}
}

func TestResolvePalaceMoves(t *testing.T) {
	r := newTestResolver()
	b := xiangqi.NewBoard()
	mustPlace(t, b, xiangqi.KindGeneral, xiangqi.Red, 9, 4)
	mustPlace(t, b, xiangqi.KindAdvisor, xiangqi.Red, 9, 3)

	// 士六进五：col 3 -> col 4，斜进一格
	mv, err := r.Resolve("仕六进五", xiangqi.Red, b)
	if err != nil {
		t.Fatalf("advisor diagonal: %v", err)
	}
	if mv.From != (xiangqi.Pos{Row: 9, Col: 3}) || mv.To != (xiangqi.Pos{Row: 8, Col: 4}) {
		t.Fatalf("advisor move got %+v -> %+v", mv.From, mv.To)
	}

	// 帅五平六：九宫内横走
	mv, err = r.Resolve("帅五平六", xiangqi.Red, b)
	if err != nil {
		t.Fatalf("general level: %v", err)
	}
	if mv.From != (xiangqi.Pos{Row: 9, Col: 4}) || mv.To != (xiangqi.Pos{Row: 9, Col: 3}) {
		t.Fatalf("general level got %+v -> %+v", mv.From, mv.To)
	}

	// 九宫内跳两线：几何非法
	if _, err := r.Resolve("仕六进三", xiangqi.Red, b); !errors.Is(err, ErrIllegalGeometry) {
		t.Fatalf("advisor two-file jump error = %v, want ErrIllegalGeometry", err)
	}
}

func TestResolveSequenceAlternatesAndTracksBoard(t *testing.T) {
	r := newTestResolver()
	b := xiangqi.NewInitialBoard()

	tokens := []string{"炮二平五", "马8进7", "马二进三", "车9平8"}
	moves, err := r.ResolveSequence(tokens, b)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("got %d moves, want 4", len(moves))
	}
	wantSides := []xiangqi.Side{xiangqi.Red, xiangqi.Black, xiangqi.Red, xiangqi.Black}
	for i, mv := range moves {
		if mv.Side != wantSides[i] {
			t.Fatalf("move %d side %v, want %v", i+1, mv.Side, wantSides[i])
		}
	}
	// 车9平8 只有在马8进7 腾出 (0,7) 之后才成立：说明推演盘在逐步更新
	if moves[3].From != (xiangqi.Pos{Row: 0, Col: 8}) || moves[3].To != (xiangqi.Pos{Row: 0, Col: 7}) {
		t.Fatalf("fourth move got %+v -> %+v", moves[3].From, moves[3].To)
	}

	// 原始盘不能被推演污染
	if pc := b.PieceAt(xiangqi.Pos{Row: 7, Col: 7}); pc == nil || pc.Kind != xiangqi.KindCannon {
		t.Fatalf("ResolveSequence must not mutate the caller's board")
	}

	// 中途一条坏谱：整段失败
	if _, err := r.ResolveSequence([]string{"炮二平五", "坏谱坏谱"}, xiangqi.NewInitialBoard()); err == nil {
		t.Fatalf("sequence with a bad token must fail")
	}
}

func TestResolveAcceptsVariantCharacters(t *testing.T) {
	r := newTestResolver()
	cases := []struct {
		text string
		side xiangqi.Side
	}{
		{"砲二平五", xiangqi.Red},  // 异体炮
		{"車一平二", xiangqi.Red},  // 繁体车
		{"馬８進７", xiangqi.Black}, // 繁体 + 全角数字
	}
	for _, c := range cases {
		if _, err := r.Resolve(c.text, c.side, xiangqi.NewInitialBoard()); err != nil {
			t.Fatalf("%s: %v", c.text, err)
		}
	}
}
