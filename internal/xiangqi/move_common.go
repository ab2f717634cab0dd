package xiangqi

// 车：直线走，路径全空
func validateChariot(pc *Piece, to Pos, look Lookup) bool {
	if pc.Pos.Row != to.Row && pc.Pos.Col != to.Col {
		return false
	}
	return IsStraightPathClear(pc.Pos, to, look)
}

// 炮：走空格要求路上无子，吃子要求恰好隔一个炮架
func validateCannon(pc *Piece, to Pos, look Lookup) bool {
	if pc.Pos.Row != to.Row && pc.Pos.Col != to.Col {
		return false
	}
	n := CountPiecesOnPath(pc.Pos, to, look)
	if look(to) == nil {
		return n == 0
	}
	return n == 1
}

// 相：田字，塞象眼不能走，不能过河
func validateElephant(pc *Piece, to Pos, look Lookup) bool {
	dr := to.Row - pc.Pos.Row
	dc := to.Col - pc.Pos.Col
	if abs(dr) != 2 || abs(dc) != 2 {
		return false
	}
	eye := Pos{Row: pc.Pos.Row + dr/2, Col: pc.Pos.Col + dc/2}
	if look(eye) != nil {
		return false
	}
	// 红相不得上过河界，黑象不得下过
	if pc.Side == Red && to.Row <= RiverRow {
		return false
	}
	if pc.Side == Black && to.Row > RiverRow {
		return false
	}
	return true
}

// 士：九宫内斜走一格
func validateAdvisor(pc *Piece, to Pos, look Lookup) bool {
	dr := to.Row - pc.Pos.Row
	dc := to.Col - pc.Pos.Col
	if abs(dr) != 1 || abs(dc) != 1 {
		return false
	}
	return InPalace(to, pc.Side)
}

// 将：九宫内直走一格
func validateGeneral(pc *Piece, to Pos, look Lookup) bool {
	dr := to.Row - pc.Pos.Row
	dc := to.Col - pc.Pos.Col
	if abs(dr)+abs(dc) != 1 {
		return false
	}
	return InPalace(to, pc.Side)
}
