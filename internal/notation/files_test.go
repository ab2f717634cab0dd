package notation

import (
	"errors"
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestFileColumnAsymmetry(t *testing.T) {
	cases := []struct {
		side xiangqi.Side
		file int
		col  int
	}{
		{xiangqi.Red, 1, 8},
		{xiangqi.Red, 5, 4},
		{xiangqi.Red, 9, 0},
		{xiangqi.Black, 1, 0},
		{xiangqi.Black, 5, 4},
		{xiangqi.Black, 9, 8},
	}
	for _, c := range cases {
		got, err := FileToColumn(c.side, c.file)
		if err != nil {
			t.Fatalf("FileToColumn(%v,%d): %v", c.side, c.file, err)
		}
		if got != c.col {
			t.Fatalf("FileToColumn(%v,%d) = %d, want %d", c.side, c.file, got, c.col)
		}
	}
}

func TestFileColumnRoundTrip(t *testing.T) {
	for _, side := range []xiangqi.Side{xiangqi.Red, xiangqi.Black} {
		for file := 1; file <= 9; file++ {
			col, err := FileToColumn(side, file)
			if err != nil {
				t.Fatalf("FileToColumn(%v,%d): %v", side, file, err)
			}
			back, err := ColumnToFile(side, col)
			if err != nil {
				t.Fatalf("ColumnToFile(%v,%d): %v", side, col, err)
			}
			if back != file {
				t.Fatalf("round trip %v file %d -> col %d -> file %d", side, file, col, back)
			}
		}
	}
}

func TestFileColumnRangeErrors(t *testing.T) {
	for _, file := range []int{0, 10, -3} {
		if _, err := FileToColumn(xiangqi.Red, file); !errors.Is(err, ErrInvalidFile) {
			t.Fatalf("FileToColumn(red,%d) error = %v, want ErrInvalidFile", file, err)
		}
	}
	for _, col := range []int{-1, 9} {
		if _, err := ColumnToFile(xiangqi.Black, col); !errors.Is(err, ErrInvalidColumn) {
			t.Fatalf("ColumnToFile(black,%d) error = %v, want ErrInvalidColumn", col, err)
		}
	}
	if _, err := FileToColumn(xiangqi.NoSide, 5); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("NoSide must yield ErrInvalidColor, got %v", err)
	}
}
