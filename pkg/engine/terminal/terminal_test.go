package terminal

import "testing"

func TestFitCells(t *testing.T) {
	tests := []struct {
		name                string
		width, height       int
		cellWidth, reserved int
		wantCols, wantRows  int
	}{
		{"default terminal", 80, 24, 2, 2, 39, 21},
		{"odd already", 78, 23, 2, 2, 39, 21},
		{"single width cells", 80, 24, 1, 0, 79, 23},
		{"tiny", 2, 2, 2, 2, 1, 1},
		{"zero cell width", 10, 10, 0, 0, 9, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := fitCells(tc.width, tc.height, tc.cellWidth, tc.reserved)
			if cols != tc.wantCols || rows != tc.wantRows {
				t.Errorf("fitCells() = (%d,%d), want (%d,%d)", cols, rows, tc.wantCols, tc.wantRows)
			}
		})
	}
}

func TestCellGridIsPositive(t *testing.T) {
	cols, rows := CellGrid(2, 2)
	if cols < 1 || rows < 1 || cols%2 == 0 || rows%2 == 0 {
		t.Errorf("CellGrid() = (%d,%d), want positive odd counts", cols, rows)
	}
}
