package httpserver

import "xiangqi/internal/xiangqi"

// 前端用的坐标 / 招法结构
type PosDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type MoveDTO struct {
	FromRow  int    `json:"from_row"`
	FromCol  int    `json:"from_col"`
	ToRow    int    `json:"to_row"`
	ToCol    int    `json:"to_col"`
	Kind     string `json:"kind,omitempty"`
	Notation string `json:"notation,omitempty"`
}

// NewGame 返回
type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // FEN 字符串
	ToMove     int       `json:"to_move"`  // 0=红(w),1=黑(b)
	LegalMoves []MoveDTO `json:"legal_moves"`
}

// Play 请求 / 返回
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type PlayResponse struct {
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	RedCheck   bool      `json:"red_check"`
	BlackCheck bool      `json:"black_check"`
	Hash       uint64    `json:"hash"`
	Status     string    `json:"status"` // "ongoing" / "ended"
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []MoveDTO `json:"history"`
	RedCheck   bool      `json:"red_check"`
	BlackCheck bool      `json:"black_check"`
	Hash       uint64    `json:"hash"`
	Status     string    `json:"status"`
}

// LegalMoves 请求：选中一个子，要它的全部落点（高亮用）
type LegalMovesRequest struct {
	GameID string `json:"game_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type LegalMovesResponse struct {
	Destinations []PosDTO `json:"destinations"`
}

// Resolve 请求：把一条记谱文本解析成招法，不落子
type ResolveRequest struct {
	GameID string `json:"game_id"`
	Text   string `json:"text"`
}

type ResolveResponse struct {
	Move MoveDTO `json:"move"`
}

// Replay 请求：整段棋谱落到对局上
type ReplayRequest struct {
	GameID string   `json:"game_id"`
	Tokens []string `json:"tokens"`
}

type ReplayResponse struct {
	Applied  int    `json:"applied"`
	Position string `json:"position"`
	ToMove   int    `json:"to_move"`
	Error    string `json:"error,omitempty"`
}

// Export / Import
type ExportRequest struct {
	GameID string `json:"game_id"`
}

type ImportRequest struct {
	Snapshot xiangqi.Snapshot `json:"snapshot"`
}

type ImportResponse struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	ToMove   int    `json:"to_move"`
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{
		FromRow:  m.From.Row,
		FromCol:  m.From.Col,
		ToRow:    m.To.Row,
		ToCol:    m.To.Col,
		Kind:     m.Kind.String(),
		Notation: m.Notation,
	}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}
