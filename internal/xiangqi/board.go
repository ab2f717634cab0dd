package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	RiverRow = 4 // 河界在第 5、6 行之间（0-based 4/5）
)

func indexOf(row, col int) int { return row*Cols + col }

func OnBoard(p Pos) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func ForwardDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func CrossedRiver(side Side, row int) bool {
	if side == Red {
		return row <= RiverRow
	}
	if side == Black {
		return row > RiverRow
	}
	return false
}

// Board 持有全部存活棋子；不变式：一格最多一子
type Board struct {
	squares [NumSquares]*Piece
	nextID  int
}

func NewBoard() *Board {
	return &Board{nextID: 1}
}

// PieceAt 按坐标查子，界外返回 nil
func (b *Board) PieceAt(p Pos) *Piece {
	if !OnBoard(p) {
		return nil
	}
	return b.squares[indexOf(p.Row, p.Col)]
}

// Lookup 返回只读访问器
func (b *Board) Lookup() Lookup {
	return b.PieceAt
}

// Pieces 按格序返回所有存活棋子
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, 32)
	for _, pc := range b.squares {
		if pc != nil {
			out = append(out, pc)
		}
	}
	return out
}

// Place 放子；目标格被占或界外时失败
func (b *Board) Place(kind PieceKind, side Side, p Pos) (*Piece, bool) {
	if !OnBoard(p) || kind == KindNone || side == NoSide {
		return nil, false
	}
	if b.squares[indexOf(p.Row, p.Col)] != nil {
		return nil, false
	}
	pc := &Piece{ID: b.nextID, Kind: kind, Side: side, Pos: p}
	b.nextID++
	b.squares[indexOf(p.Row, p.Col)] = pc
	return pc, true
}

// remove 吃子时调用
func (b *Board) remove(p Pos) *Piece {
	if !OnBoard(p) {
		return nil
	}
	i := indexOf(p.Row, p.Col)
	pc := b.squares[i]
	b.squares[i] = nil
	return pc
}

// movePiece 只搬子，不做规则判断；目标上的子（若有）被移除并返回
func (b *Board) movePiece(pc *Piece, to Pos) *Piece {
	captured := b.remove(to)
	b.squares[indexOf(pc.Pos.Row, pc.Pos.Col)] = nil
	pc.Pos = to
	b.squares[indexOf(to.Row, to.Col)] = pc
	return captured
}

// Apply 按已解析的 Move 搬子，不做走法校验；棋谱推演时用。
// 起点上必须是对应方、对应子种的棋子。
func (b *Board) Apply(mv Move) bool {
	pc := b.PieceAt(mv.From)
	if pc == nil || pc.Side != mv.Side || pc.Kind != mv.Kind {
		return false
	}
	if !OnBoard(mv.To) {
		return false
	}
	b.movePiece(pc, mv.To)
	return true
}

// Clone 深拷贝，棋谱解析推演时用
func (b *Board) Clone() *Board {
	nb := &Board{nextID: b.nextID}
	for i, pc := range b.squares {
		if pc == nil {
			continue
		}
		cp := *pc
		nb.squares[i] = &cp
	}
	return nb
}

var letterToKind = map[rune]PieceKind{
	'r': KindChariot,  // 车
	'n': KindHorse,    // 马
	'c': KindCannon,   // 炮
	'b': KindElephant, // 相 / 象
	'a': KindAdvisor,  // 仕 / 士
	'k': KindGeneral,  // 帅 / 将
	'p': KindSoldier,  // 兵 / 卒
}

func kindToLetter(k PieceKind) rune {
	for ch, kk := range letterToKind {
		if kk == k {
			return ch
		}
	}
	return '.'
}

// 标准开局：大写红，小写黑
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

// NewInitialBoard 摆出 32 子标准开局
func NewInitialBoard() *Board {
	b := NewBoard()
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			isUpper := unicode.IsUpper(ch)
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if isUpper {
				side = Red
			}
			if _, ok := b.Place(kind, side, Pos{Row: r, Col: c}); !ok {
				panic("duplicate square in initialBoardString")
			}
		}
	}
	return b
}
