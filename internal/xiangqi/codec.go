package xiangqi

import (
	"errors"
	"strings"
	"unicode"
)

// 简单 FEN-like：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示先后
func EncodeBoard(b *Board, sideToMove Side) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.PieceAt(Pos{Row: r, Col: c})
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := kindToLetter(pc.Kind)
			if pc.Side == Red {
				ch = unicode.ToUpper(ch)
			}
			sb.WriteRune(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if sideToMove == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

func DecodeBoard(fen string) (*Board, Side, error) {
	parts := strings.Split(fen, " ")
	if len(parts) < 2 {
		return nil, NoSide, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, NoSide, ErrInvalidFEN
	}
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, NoSide, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			isUpper := unicode.IsUpper(ch)
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, NoSide, ErrInvalidFEN
			}
			side := Black
			if isUpper {
				side = Red
			}
			if _, ok := b.Place(kind, side, Pos{Row: r, Col: c}); !ok {
				return nil, NoSide, ErrInvalidFEN
			}
			c++
		}
		if c != Cols {
			return nil, NoSide, ErrInvalidFEN
		}
	}
	var stm Side
	switch parts[1] {
	case "w":
		stm = Red
	case "b":
		stm = Black
	default:
		return nil, NoSide, ErrInvalidFEN
	}
	return b, stm, nil
}
