package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: initial layout)")
	flag.Parse()

	var b *xiangqi.Board
	side := xiangqi.Red
	if *fen == "" {
		b = xiangqi.NewInitialBoard()
	} else {
		var err error
		b, side, err = xiangqi.DecodeBoard(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, "decode:", err)
			os.Exit(1)
		}
	}

	fmt.Println("FEN:", xiangqi.EncodeBoard(b, side))
	fmt.Println("to move:", side)
	fmt.Println("moves:", len(xiangqi.AllMoves(b, side)))
	fmt.Println("red in check:", xiangqi.IsInCheck(b, xiangqi.Red))
	fmt.Println("black in check:", xiangqi.IsInCheck(b, xiangqi.Black))
}
