package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindChariot            // 车
	KindHorse              // 马
	KindCannon             // 炮
	KindElephant           // 相 / 象
	KindAdvisor            // 仕 / 士
	KindGeneral            // 帅 / 将
	KindSoldier            // 兵 / 卒
)

func (k PieceKind) String() string {
	switch k {
	case KindChariot:
		return "chariot"
	case KindHorse:
		return "horse"
	case KindCannon:
		return "cannon"
	case KindElephant:
		return "elephant"
	case KindAdvisor:
		return "advisor"
	case KindGeneral:
		return "general"
	case KindSoldier:
		return "soldier"
	}
	return "none"
}

// Pos 棋盘坐标：row 0 是黑方底线，row 9 是红方底线
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Piece 的 ID 在整局内稳定；Pos 是唯一会变的字段
type Piece struct {
	ID   int
	Kind PieceKind
	Side Side
	Pos  Pos
}

// Move 一经产生不再修改；Notation 在 UI 直接走子时为空
type Move struct {
	Side     Side
	Kind     PieceKind
	From     Pos
	To       Pos
	Notation string
}

// Lookup 只读的棋盘访问器，注入给各走法校验器
type Lookup func(Pos) *Piece
