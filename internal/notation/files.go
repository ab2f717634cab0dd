package notation

import (
	"fmt"

	"xiangqi/internal/xiangqi"
)

// 纵线号 1..9 按各自视角读：红方从右往左，黑方从左往右。
// 这是整套记谱最容易写反的一处，两个方向都有测试钉死。

// FileToColumn 把 side 视角的纵线号换成绝对列号
func FileToColumn(side xiangqi.Side, file int) (int, error) {
	if file < 1 || file > 9 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFile, file)
	}
	switch side {
	case xiangqi.Red:
		return 9 - file, nil
	case xiangqi.Black:
		return file - 1, nil
	}
	return 0, ErrInvalidColor
}

// ColumnToFile 把绝对列号换回 side 视角的纵线号
func ColumnToFile(side xiangqi.Side, col int) (int, error) {
	if col < 0 || col > 8 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	switch side {
	case xiangqi.Red:
		return 9 - col, nil
	case xiangqi.Black:
		return col + 1, nil
	}
	return 0, ErrInvalidColor
}
