// Package record 负责棋谱文件的读写与整局重放。
// 棋谱格式：每条四字记谱，按空白分隔，'#' 起头的是注释行；
// .zst 结尾的文件按 zstd 压缩档处理（批量抓取的谱库都是压缩存的）。
package record

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"xiangqi/internal/notation"
	"xiangqi/internal/xiangqi"
)

// Parse 从流里读出记谱 token
func Parse(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	return tokens, nil
}

// Load 读一份棋谱文件，.zst 先解压
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	return Parse(r)
}

// Save 写棋谱文件，每行一条；.zst 压缩后落盘
func Save(path string, tokens []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	var enc *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return fmt.Errorf("create zstd encoder: %w", err)
		}
		w = enc
	}
	for _, tok := range tokens {
		if _, err := io.WriteString(w, tok+"\n"); err != nil {
			return err
		}
	}
	if enc != nil {
		return enc.Close()
	}
	return nil
}

// Replay 把一串记谱逐条落到对局上。返回成功落子数；
// 解析失败或走法非法时带着出错位置返回。
func Replay(g *xiangqi.Game, res *notation.Resolver, tokens []string) (int, error) {
	for i, text := range tokens {
		mv, err := res.Resolve(text, g.ActiveSide(), g.Board())
		if err != nil {
			return i, fmt.Errorf("move %d: %w", i+1, err)
		}
		if !g.ApplyResolved(mv) {
			return i, fmt.Errorf("move %d: illegal move %q", i+1, text)
		}
	}
	return len(tokens), nil
}
