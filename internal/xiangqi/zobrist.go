package xiangqi

import "sync"

const zobristKinds = 8 // PieceKind 范围 [1..7]，0 保留空位不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc *Piece, p Pos) uint64 {
	if pc == nil || !OnBoard(p) {
		return 0
	}

	var sideIdx int
	switch pc.Side {
	case Red:
		sideIdx = 0
	case Black:
		sideIdx = 1
	default:
		return 0
	}

	k := int(pc.Kind)
	if k <= 0 || k >= zobristKinds {
		return 0
	}
	return zobristPieces[sideIdx][k][indexOf(p.Row, p.Col)]
}

// HashBoard 全量计算局面的 Zobrist 哈希
func HashBoard(b *Board, sideToMove Side) uint64 {
	initZobrist()

	var h uint64
	for _, pc := range b.Pieces() {
		h ^= pieceHashKey(pc, pc.Pos)
	}
	if sideToMove == Black {
		h ^= zobristSide
	}
	return h
}
