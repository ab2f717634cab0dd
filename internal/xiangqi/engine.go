package xiangqi

// Game 独占持有棋盘和轮次状态。所有变更都必须经过 AttemptMove，
// 调用方不得直接改 Board / Piece。
type Game struct {
	board   *Board
	active  Side
	history []Move
	ended   bool
	hash    uint64
}

// State 对外快照（浅层），见 GetState
type State struct {
	ActiveSide   Side
	Ended        bool
	MoveHistory  []Move
	RedInCheck   bool
	BlackInCheck bool
	Hash         uint64
}

func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset 回到 32 子标准开局，红先
func (g *Game) Reset() {
	g.board = NewInitialBoard()
	g.active = Red
	g.history = nil
	g.ended = false
	g.hash = HashBoard(g.board, g.active)
}

func (g *Game) ActiveSide() Side { return g.active }
func (g *Game) Ended() bool      { return g.ended }
func (g *Game) Hash() uint64     { return g.hash }

// End 终局判定在本核心之外（将死检测等），外部判定后调用
func (g *Game) End() { g.ended = true }

// PieceAt 只读查子
func (g *Game) PieceAt(p Pos) *Piece { return g.board.PieceAt(p) }

// Lookup 给校验器 / 解析器用的只读访问器
func (g *Game) Lookup() Lookup { return g.board.Lookup() }

// Board 只读引用；调用方不得写
func (g *Game) Board() *Board { return g.board }

// AttemptMove 按规则尝试走子，返回是否成功落子。
// 非法走子是对弈中的常态，所以这里返回 bool 而不是 error。
// 校验全部在变更之前，失败时棋盘不会被改动半步。
func (g *Game) AttemptMove(pc *Piece, to Pos) bool {
	if g.ended {
		return false
	}
	if pc == nil || pc.Side != g.active {
		return false
	}
	if !OnBoard(to) {
		return false
	}
	dst := g.board.PieceAt(to)
	if dst != nil && dst.Side == pc.Side {
		return false
	}
	if !ValidateMove(pc, to, g.board.Lookup()) {
		return false
	}

	mv := Move{Side: pc.Side, Kind: pc.Kind, From: pc.Pos, To: to}

	// 增量 Zobrist：移除 from 的子、移除被吃子（若有）、加入 to 的子、换边
	h := g.hash
	h ^= pieceHashKey(pc, pc.Pos)
	if dst != nil {
		h ^= pieceHashKey(dst, to)
	}
	g.board.movePiece(pc, to)
	h ^= pieceHashKey(pc, to)
	h ^= zobristSide
	g.hash = h

	g.history = append(g.history, mv)
	g.active = g.active.Opponent()
	return true
}

// AttemptMoveFrom 按起点坐标走子，HTTP 层用
func (g *Game) AttemptMoveFrom(from, to Pos) bool {
	return g.AttemptMove(g.board.PieceAt(from), to)
}

// ApplyResolved 落一步棋谱解析出来的 Move，子种、轮次要对得上
func (g *Game) ApplyResolved(mv Move) bool {
	pc := g.board.PieceAt(mv.From)
	if pc == nil || pc.Kind != mv.Kind || pc.Side != mv.Side {
		return false
	}
	if !g.AttemptMove(pc, mv.To) {
		return false
	}
	g.history[len(g.history)-1].Notation = mv.Notation
	return true
}

// GetState 返回当前状态快照；历史是副本，调用方可随意持有
func (g *Game) GetState() State {
	hist := make([]Move, len(g.history))
	copy(hist, g.history)
	return State{
		ActiveSide:   g.active,
		Ended:        g.ended,
		MoveHistory:  hist,
		RedInCheck:   IsInCheck(g.board, Red),
		BlackInCheck: IsInCheck(g.board, Black),
		Hash:         g.hash,
	}
}
