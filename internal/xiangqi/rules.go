package xiangqi

// ValidateMove 按子种分发到对应校验器。只管几何与阻挡，
// 不管目标格是否有己方子、是否轮到该方，那些由引擎把关。
// 未知子种说明数据已经坏了，一律判非法。
func ValidateMove(pc *Piece, to Pos, look Lookup) bool {
	if pc == nil || !OnBoard(to) || pc.Pos == to {
		return false
	}
	switch pc.Kind {
	case KindChariot:
		return validateChariot(pc, to, look)
	case KindHorse:
		return validateHorse(pc, to, look)
	case KindCannon:
		return validateCannon(pc, to, look)
	case KindElephant:
		return validateElephant(pc, to, look)
	case KindAdvisor:
		return validateAdvisor(pc, to, look)
	case KindGeneral:
		return validateGeneral(pc, to, look)
	case KindSoldier:
		return validateSoldier(pc, to, look)
	}
	return false
}

// AllMoves 枚举 side 的全部可走招（不做送将过滤，终局判定在外部）
func AllMoves(b *Board, side Side) []Move {
	var out []Move
	for _, pc := range b.Pieces() {
		if pc.Side != side {
			continue
		}
		for _, to := range LegalDestinations(pc, b.Lookup()) {
			out = append(out, Move{Side: side, Kind: pc.Kind, From: pc.Pos, To: to})
		}
	}
	return out
}

// LegalDestinations 枚举一个子的全部可落点（UI 高亮用）。
// 90 格逐一探测，棋盘就这么大，不值得再做增量生成。
func LegalDestinations(pc *Piece, look Lookup) []Pos {
	if pc == nil {
		return nil
	}
	var out []Pos
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			to := Pos{Row: r, Col: c}
			dst := look(to)
			if dst != nil && dst.Side == pc.Side {
				continue
			}
			if ValidateMove(pc, to, look) {
				out = append(out, to)
			}
		}
	}
	return out
}
