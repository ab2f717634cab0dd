package xiangqi

// 马的 8 种日字：位移 + 马腿
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

// 马：日字走，憋马腿不能走
func validateHorse(pc *Piece, to Pos, look Lookup) bool {
	dr := to.Row - pc.Pos.Row
	dc := to.Col - pc.Pos.Col
	for _, m := range horseLegMoves {
		if m.Dr != dr || m.Dc != dc {
			continue
		}
		leg := Pos{Row: pc.Pos.Row + m.Br, Col: pc.Pos.Col + m.Bc}
		return look(leg) == nil
	}
	return false
}
