package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

type GameState struct {
	ID        string
	Game      *xiangqi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}
