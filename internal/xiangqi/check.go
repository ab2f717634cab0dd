package xiangqi

// Attacked 判断 target 格是否被 by 方攻击。
// 走法模拟：对方任何一个子能合法走到这里就算被攻击。
// 士、相无法越河将军，但留在循环里也只是白探几格，不单独剪。
func Attacked(b *Board, target Pos, by Side) bool {
	look := b.Lookup()
	for _, pc := range b.Pieces() {
		if pc.Side != by {
			continue
		}
		if ValidateMove(pc, target, look) {
			return true
		}
	}
	return false
}

// IsInCheck 判断 side 的将是否被对方攻击
func IsInCheck(b *Board, side Side) bool {
	g := findGeneral(b, side)
	if g == nil {
		return false
	}
	return Attacked(b, g.Pos, side.Opponent())
}

// GeneralsFace 两将同列且中间无子为“对脸”，属非法局面
func GeneralsFace(b *Board) bool {
	rg := findGeneral(b, Red)
	bg := findGeneral(b, Black)
	if rg == nil || bg == nil {
		return false
	}
	if rg.Pos.Col != bg.Pos.Col {
		return false
	}
	return IsStraightPathClear(rg.Pos, bg.Pos, b.Lookup())
}

func findGeneral(b *Board, side Side) *Piece {
	for _, pc := range b.Pieces() {
		if pc.Kind == KindGeneral && pc.Side == side {
			return pc
		}
	}
	return nil
}
