// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// CellGrid returns how many cellWidth-wide cells fit on the terminal with
// reserved lines kept free at the bottom.
func CellGrid(cellWidth, reserved int) (cols, rows int) {
	w, h := GetSize()
	return fitCells(w, h, cellWidth, reserved)
}

// fitCells divides a width x height character area into cells. Both counts
// are odd so one cell sits exactly in the middle, and at least 1.
func fitCells(width, height, cellWidth, reserved int) (cols, rows int) {
	cols = width / max(cellWidth, 1)
	rows = height - reserved

	// Keep odd numbers for centering
	if cols%2 == 0 {
		cols--
	}
	if rows%2 == 0 {
		rows--
	}
	return max(cols, 1), max(rows, 1)
}
