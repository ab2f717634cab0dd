package xiangqi

// InPalace 是否在 side 的九宫内（红 7..9 行，黑 0..2 行，3..5 列）
func InPalace(p Pos, side Side) bool {
	if p.Col < 3 || p.Col > 5 {
		return false
	}
	if side == Red {
		return p.Row >= 7 && p.Row <= 9
	}
	if side == Black {
		return p.Row >= 0 && p.Row <= 2
	}
	return false
}

// IsStraightPathClear 同行或同列时，两点之间（不含端点）是否全空。
// 不共线一律返回 false。
func IsStraightPathClear(from, to Pos, look Lookup) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return CountPiecesOnPath(from, to, look) == 0
}

// CountPiecesOnPath 数出 from/to 之间（不含端点）被占的格数，炮的隔山规则用。
// 不共线返回 -1。
func CountPiecesOnPath(from, to Pos, look Lookup) int {
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)
	if dr != 0 && dc != 0 {
		return -1
	}
	n := 0
	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if look(Pos{Row: r, Col: c}) != nil {
			n++
		}
		r += dr
		c += dc
	}
	return n
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
