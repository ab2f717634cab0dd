package notation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"xiangqi/internal/xiangqi"
)

type Action int8

const (
	ActionLevel   Action = iota // 平
	ActionAdvance               // 进
	ActionRetreat               // 退
)

func (a Action) String() string {
	switch a {
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	}
	return "level"
}

// 红黑两套棋子写法都认，繁简混着也认：抓来的棋谱里什么都有
var pieceChars = map[rune]xiangqi.PieceKind{
	'车': xiangqi.KindChariot, '車': xiangqi.KindChariot, '俥': xiangqi.KindChariot,
	'马': xiangqi.KindHorse, '馬': xiangqi.KindHorse, '傌': xiangqi.KindHorse,
	'炮': xiangqi.KindCannon, '砲': xiangqi.KindCannon, '包': xiangqi.KindCannon,
	'相': xiangqi.KindElephant, '象': xiangqi.KindElephant,
	'仕': xiangqi.KindAdvisor, '士': xiangqi.KindAdvisor,
	'帅': xiangqi.KindGeneral, '帥': xiangqi.KindGeneral,
	'将': xiangqi.KindGeneral, '將': xiangqi.KindGeneral,
	'兵': xiangqi.KindSoldier, '卒': xiangqi.KindSoldier,
}

// 数字、全角数字、汉字数目都收；十 = 10，留给转换器去拒绝
var numerals = map[rune]int{
	'1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'１': 1, '２': 2, '３': 3, '４': 4, '５': 5, '６': 6, '７': 7, '８': 8, '９': 9,
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
	'十': 10,
}

var actionChars = map[rune]Action{
	'平': ActionLevel,
	'进': ActionAdvance, '進': ActionAdvance,
	'退': ActionRetreat,
}

// Resolver 把一条记谱文本落到具体坐标上。
// 本身无状态，logger 只用于邻列回退的告警。
type Resolver struct {
	log zerolog.Logger
}

func NewResolver(log zerolog.Logger) *Resolver {
	return &Resolver{log: log}
}

type token struct {
	kind   xiangqi.PieceKind
	file   int
	action Action
	target int
}

func tokenize(text string) (token, error) {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) != 4 {
		return token{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	kind, ok := pieceChars[runes[0]]
	if !ok {
		return token{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	file, ok := numerals[runes[1]]
	if !ok {
		return token{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	action, ok := actionChars[runes[2]]
	if !ok {
		return token{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	target, ok := numerals[runes[3]]
	if !ok {
		return token{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	return token{kind: kind, file: file, action: action, target: target}, nil
}

// Resolve 解析一条记谱，定位棋子并算出落点。任何一步失败都返回
// 带类型的错误，绝不返回半成品 Move。
func (r *Resolver) Resolve(text string, side xiangqi.Side, b *xiangqi.Board) (xiangqi.Move, error) {
	if side != xiangqi.Red && side != xiangqi.Black {
		return xiangqi.Move{}, ErrInvalidColor
	}
	tok, err := tokenize(text)
	if err != nil {
		return xiangqi.Move{}, err
	}

	col, err := FileToColumn(side, tok.file)
	if err != nil {
		return xiangqi.Move{}, err
	}

	pc, err := r.findPiece(text, tok.kind, side, col, b)
	if err != nil {
		return xiangqi.Move{}, err
	}

	to, err := computeDestination(tok, side, pc.Pos)
	if err != nil {
		return xiangqi.Move{}, err
	}
	if !xiangqi.OnBoard(to) {
		return xiangqi.Move{}, fmt.Errorf("%w: %q -> (%d,%d)", ErrOutOfBounds, text, to.Row, to.Col)
	}

	return xiangqi.Move{
		Side:     side,
		Kind:     tok.kind,
		From:     pc.Pos,
		To:       to,
		Notation: text,
	}, nil
}

// findPiece 先在记谱给出的纵线上找；找不到时在 ±2 列内就近回退。
// 回退只告警不报错：整批导入的棋谱里常有错位的记录，不能一条坏全盘废。
func (r *Resolver) findPiece(text string, kind xiangqi.PieceKind, side xiangqi.Side, col int, b *xiangqi.Board) (*xiangqi.Piece, error) {
	if cands := candidatesAt(b, kind, side, col); len(cands) > 0 {
		return pickFront(cands, side), nil
	}

	for d := 1; d <= 2; d++ {
		for _, c := range []int{col - d, col + d} {
			if c < 0 || c > 8 {
				continue
			}
			cands := candidatesAt(b, kind, side, c)
			if len(cands) == 0 {
				continue
			}
			r.log.Warn().
				Str("token", text).
				Int("recorded_col", col).
				Int("used_col", c).
				Msg("piece not on recorded file, using nearby column")
			return pickFront(cands, side), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPieceNotFound, text)
}

func candidatesAt(b *xiangqi.Board, kind xiangqi.PieceKind, side xiangqi.Side, col int) []*xiangqi.Piece {
	var out []*xiangqi.Piece
	for _, pc := range b.Pieces() {
		if pc.Kind == kind && pc.Side == side && pc.Pos.Col == col {
			out = append(out, pc)
		}
	}
	return out
}

// pickFront 同线多子时取靠对方那个：红取行号小的，黑取行号大的。
// 超过两个同线子的情况按同一规则取排序后的第一个。
func pickFront(cands []*xiangqi.Piece, side xiangqi.Side) *xiangqi.Piece {
	sort.Slice(cands, func(i, j int) bool {
		if side == xiangqi.Red {
			return cands[i].Pos.Row < cands[j].Pos.Row
		}
		return cands[i].Pos.Row > cands[j].Pos.Row
	})
	return cands[0]
}

// computeDestination 按子种算落点，几何对不上就报错，绝不夹取坐标：
// 悄悄挪一步的落点会毁掉整盘复盘。
func computeDestination(tok token, side xiangqi.Side, from xiangqi.Pos) (xiangqi.Pos, error) {
	if tok.action == ActionLevel {
		toCol, err := FileToColumn(side, tok.target)
		if err != nil {
			return xiangqi.Pos{}, err
		}
		return xiangqi.Pos{Row: from.Row, Col: toCol}, nil
	}

	// 进为正、退为负，再乘上本方的前进方向
	dir := xiangqi.ForwardDir(side)
	if tok.action == ActionRetreat {
		dir = -dir
	}

	switch tok.kind {
	case xiangqi.KindChariot, xiangqi.KindCannon, xiangqi.KindSoldier:
		// 直线子：目标是步数
		return xiangqi.Pos{Row: from.Row + dir*tok.target, Col: from.Col}, nil

	case xiangqi.KindHorse:
		// 马：目标是纵线，行距由列距反推（1 列对 2 行，2 列对 1 行）
		toCol, err := FileToColumn(side, tok.target)
		if err != nil {
			return xiangqi.Pos{}, err
		}
		var rowShift int
		switch colDiff := absInt(toCol - from.Col); colDiff {
		case 1:
			rowShift = 2
		case 2:
			rowShift = 1
		default:
			return xiangqi.Pos{}, fmt.Errorf("%w: horse to file %d", ErrIllegalGeometry, tok.target)
		}
		return xiangqi.Pos{Row: from.Row + dir*rowShift, Col: toCol}, nil

	case xiangqi.KindElephant:
		// 相：目标是纵线，必须正好斜两列
		toCol, err := FileToColumn(side, tok.target)
		if err != nil {
			return xiangqi.Pos{}, err
		}
		if absInt(toCol-from.Col) != 2 {
			return xiangqi.Pos{}, fmt.Errorf("%w: elephant to file %d", ErrIllegalGeometry, tok.target)
		}
		return xiangqi.Pos{Row: from.Row + dir*2, Col: toCol}, nil

	case xiangqi.KindGeneral, xiangqi.KindAdvisor:
		toCol, err := FileToColumn(side, tok.target)
		if err != nil {
			return xiangqi.Pos{}, err
		}
		switch colDiff := absInt(toCol - from.Col); colDiff {
		case 0:
			// 纵线没变：将的直进直退，目标当步数用
			if tok.target > 3 {
				return xiangqi.Pos{}, fmt.Errorf("%w: step %d too large", ErrIllegalGeometry, tok.target)
			}
			return xiangqi.Pos{Row: from.Row + dir*tok.target, Col: from.Col}, nil
		case 1:
			// 斜一格：士的走法
			return xiangqi.Pos{Row: from.Row + dir, Col: toCol}, nil
		default:
			return xiangqi.Pos{}, fmt.Errorf("%w: palace move to file %d", ErrIllegalGeometry, tok.target)
		}
	}
	return xiangqi.Pos{}, fmt.Errorf("%w: %v", ErrIllegalGeometry, tok.kind)
}

// ResolveSequence 逐条解析整套棋谱。每解析一条就在推演盘上落子，
// 后面的记录看到的是落子后的盘面；红黑从红开始交替。
func (r *Resolver) ResolveSequence(tokens []string, b *xiangqi.Board) ([]xiangqi.Move, error) {
	scratch := b.Clone()
	side := xiangqi.Red
	out := make([]xiangqi.Move, 0, len(tokens))
	for i, text := range tokens {
		mv, err := r.Resolve(text, side, scratch)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if !scratch.Apply(mv) {
			return nil, fmt.Errorf("move %d: %w: %q", i+1, ErrPieceNotFound, text)
		}
		out = append(out, mv)
		side = side.Opponent()
	}
	return out, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
