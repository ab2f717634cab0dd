package notation

import "errors"

// 解析失败一律 fail-fast，不做任何坐标矫正。
// 唯一的容错是 findPiece 的邻列回退，那个只告警不报错。
var (
	ErrInvalidNotation = errors.New("invalid notation format")
	ErrInvalidFile     = errors.New("file out of range 1-9")
	ErrInvalidColumn   = errors.New("column out of range 0-8")
	ErrInvalidColor    = errors.New("side must be red or black")
	ErrPieceNotFound   = errors.New("piece not found")
	ErrAmbiguousPiece  = errors.New("ambiguous piece") // 前/后 标记尚未支持，目前不会返回
	ErrIllegalGeometry = errors.New("illegal geometry")
	ErrOutOfBounds     = errors.New("target out of bounds")
)
