package xiangqi

// 兵：过河前只能直进一格，过河后可以进或横走，永远不能退
func validateSoldier(pc *Piece, to Pos, look Lookup) bool {
	dr := to.Row - pc.Pos.Row
	dc := to.Col - pc.Pos.Col
	dir := ForwardDir(pc.Side)

	// 直进一格
	if dr == dir && dc == 0 {
		return true
	}
	// 横走一格：仅限已过河的兵
	if dr == 0 && abs(dc) == 1 {
		return CrossedRiver(pc.Side, pc.Pos.Row)
	}
	return false
}
