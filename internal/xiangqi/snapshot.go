package xiangqi

// Snapshot 存档结构，往返 JSON 用。导入方负责整体合法性，
// 单个坏条目（界外、重叠、未知子种）直接跳过而不是让整局失败。
type Snapshot struct {
	ActiveSide int             `json:"active_side"` // 0=红, 1=黑
	MoveCount  int             `json:"move_count"`
	Moves      []SnapshotMove  `json:"moves"`
	Pieces     []SnapshotPiece `json:"pieces"`
}

type SnapshotMove struct {
	Side     int    `json:"side"`
	Kind     string `json:"kind"`
	FromRow  int    `json:"from_row"`
	FromCol  int    `json:"from_col"`
	ToRow    int    `json:"to_row"`
	ToCol    int    `json:"to_col"`
	Notation string `json:"notation,omitempty"`
}

type SnapshotPiece struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
	Side int    `json:"side"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func kindFromName(name string) PieceKind {
	for k := KindChariot; k <= KindSoldier; k++ {
		if k.String() == name {
			return k
		}
	}
	return KindNone
}

func sideFromInt(v int) Side {
	switch v {
	case 0:
		return Red
	case 1:
		return Black
	}
	return NoSide
}

// ExportState 导出当前对局
func (g *Game) ExportState() Snapshot {
	snap := Snapshot{
		ActiveSide: int(g.active),
		MoveCount:  len(g.history),
	}
	for _, mv := range g.history {
		snap.Moves = append(snap.Moves, SnapshotMove{
			Side:     int(mv.Side),
			Kind:     mv.Kind.String(),
			FromRow:  mv.From.Row,
			FromCol:  mv.From.Col,
			ToRow:    mv.To.Row,
			ToCol:    mv.To.Col,
			Notation: mv.Notation,
		})
	}
	for _, pc := range g.board.Pieces() {
		snap.Pieces = append(snap.Pieces, SnapshotPiece{
			ID:   pc.ID,
			Kind: pc.Kind.String(),
			Side: int(pc.Side),
			Row:  pc.Pos.Row,
			Col:  pc.Pos.Col,
		})
	}
	return snap
}

// ImportState 从存档重建对局。返回 false 表示存档整体不可用
// （没有合法先手方或一个子都摆不上）；坏的单条棋子记录被忽略。
func (g *Game) ImportState(snap Snapshot) bool {
	side := sideFromInt(snap.ActiveSide)
	if side == NoSide {
		return false
	}

	b := NewBoard()
	maxID := 0
	placed := 0
	for _, sp := range snap.Pieces {
		kind := kindFromName(sp.Kind)
		pside := sideFromInt(sp.Side)
		p := Pos{Row: sp.Row, Col: sp.Col}
		if kind == KindNone || pside == NoSide || !OnBoard(p) {
			continue // 坏条目，忽略
		}
		if b.PieceAt(p) != nil {
			continue // 两子同格，后到的忽略
		}
		pc, ok := b.Place(kind, pside, p)
		if !ok {
			continue
		}
		if sp.ID > 0 {
			pc.ID = sp.ID
			if sp.ID > maxID {
				maxID = sp.ID
			}
		}
		placed++
	}
	if placed == 0 {
		return false
	}
	b.nextID = maxID + 1

	var hist []Move
	for _, sm := range snap.Moves {
		kind := kindFromName(sm.Kind)
		mside := sideFromInt(sm.Side)
		from := Pos{Row: sm.FromRow, Col: sm.FromCol}
		to := Pos{Row: sm.ToRow, Col: sm.ToCol}
		if kind == KindNone || mside == NoSide || !OnBoard(from) || !OnBoard(to) {
			continue
		}
		hist = append(hist, Move{
			Side: mside, Kind: kind, From: from, To: to, Notation: sm.Notation,
		})
	}

	g.board = b
	g.active = side
	g.history = hist
	g.ended = false
	g.hash = HashBoard(b, side)
	return true
}
