// 终端复盘器：加载一份棋谱文件，逐步把每一招落到盘上。
// 方向键/空格步进，a 自动播放（节奏来自配置），q 退出。
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"xiangqi/internal/config"
	"xiangqi/internal/logx"
	"xiangqi/internal/notation"
	"xiangqi/internal/record"
	"xiangqi/internal/xiangqi"
)

var redChars = map[xiangqi.PieceKind]rune{
	xiangqi.KindChariot:  '车',
	xiangqi.KindHorse:    '马',
	xiangqi.KindCannon:   '炮',
	xiangqi.KindElephant: '相',
	xiangqi.KindAdvisor:  '仕',
	xiangqi.KindGeneral:  '帅',
	xiangqi.KindSoldier:  '兵',
}

var blackChars = map[xiangqi.PieceKind]rune{
	xiangqi.KindChariot:  '车',
	xiangqi.KindHorse:    '马',
	xiangqi.KindCannon:   '炮',
	xiangqi.KindElephant: '象',
	xiangqi.KindAdvisor:  '士',
	xiangqi.KindGeneral:  '将',
	xiangqi.KindSoldier:  '卒',
}

type replayer struct {
	tokens []string
	moves  []xiangqi.Move
	game   *xiangqi.Game
	step   int
}

func newReplayer(tokens []string, moves []xiangqi.Move) *replayer {
	return &replayer{tokens: tokens, moves: moves, game: xiangqi.NewGame()}
}

func (rp *replayer) next() bool {
	if rp.step >= len(rp.moves) {
		return false
	}
	if !rp.game.ApplyResolved(rp.moves[rp.step]) {
		return false
	}
	rp.step++
	return true
}

func (rp *replayer) back() {
	if rp.step == 0 {
		return
	}
	// 引擎不支持悔棋，从头重放到前一步
	target := rp.step - 1
	rp.game = xiangqi.NewGame()
	rp.step = 0
	for rp.step < target {
		rp.next()
	}
}

func (rp *replayer) render() string {
	var sb strings.Builder
	b := rp.game.Board()
	for r := 0; r < xiangqi.Rows; r++ {
		sb.WriteByte(' ')
		for c := 0; c < xiangqi.Cols; c++ {
			pc := b.PieceAt(xiangqi.Pos{Row: r, Col: c})
			if pc == nil {
				sb.WriteString("[gray]·[-] ")
				continue
			}
			if pc.Side == xiangqi.Red {
				sb.WriteString(fmt.Sprintf("[red]%c[-]", redChars[pc.Kind]))
			} else {
				sb.WriteString(fmt.Sprintf("[green]%c[-]", blackChars[pc.Kind]))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
		if r == xiangqi.RiverRow {
			sb.WriteString(" [gray]～～～ 楚河 ～～～ 汉界 ～～～[-]\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\n %d/%d", rp.step, len(rp.moves)))
	if rp.step > 0 {
		sb.WriteString("  " + rp.tokens[rp.step-1])
	}
	return sb.String()
}

func main() {
	log := logx.NewLogger()

	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: replay <record file (.xqr or .xqr.zst)>")
		os.Exit(2)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	tokens, err := record.Load(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Str("path", flag.Arg(0)).Msg("load record")
	}

	// 先整谱解析一遍，坏谱直接拒绝，不进交互界面
	res := notation.NewResolver(log)
	moves, err := res.ResolveSequence(tokens, xiangqi.NewInitialBoard())
	if err != nil {
		log.Fatal().Err(err).Msg("resolve record")
	}

	rp := newReplayer(tokens, moves)
	app := tview.NewApplication()
	view := tview.NewTextView().SetDynamicColors(true)
	view.SetBorder(true).SetTitle(" 复盘 " + flag.Arg(0) + " ")
	view.SetText(rp.render())

	auto := false
	tick := time.Duration(cfg.Replay.TickMs) * time.Millisecond
	go func() {
		for range time.Tick(tick) {
			if !auto {
				continue
			}
			app.QueueUpdateDraw(func() {
				if !rp.next() {
					auto = false
				}
				view.SetText(rp.render())
			})
		}
	}()

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyRight || event.Rune() == ' ':
			rp.next()
		case event.Key() == tcell.KeyLeft:
			rp.back()
		case event.Rune() == 'a':
			auto = !auto
		case event.Rune() == 'q' || event.Key() == tcell.KeyEscape:
			app.Stop()
			return nil
		}
		view.SetText(rp.render())
		return event
	})

	if err := app.SetRoot(view, true).Run(); err != nil {
		log.Fatal().Err(err).Msg("ui stopped")
	}
}
