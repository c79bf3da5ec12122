package maze

import (
	"fmt"
	"strings"
)

// Cell is the occupancy value of one grid cell
type Cell uint8

// Cell types
const (
	Open Cell = 0
	Wall Cell = 1
)

// Point addresses a cell: X is the column, Y is the row
type Point struct {
	X, Y int
}

// Grid is an immutable rows×cols occupancy map stored row-major
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid copies a rectangular cell matrix into a Grid
// Any value other than Open is stored as Wall
func NewGrid(cells [][]Cell) (Grid, error) {
	rows := len(cells)
	if rows == 0 || len(cells[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, 0)
	}
	cols := len(cells[0])

	flat := make([]Cell, 0, rows*cols)
	for i, row := range cells {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, i, len(row), cols)
		}
		for _, c := range row {
			if c != Open {
				c = Wall
			}
			flat = append(flat, c)
		}
	}
	return Grid{rows: rows, cols: cols, cells: flat}, nil
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies inside the grid
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col); out-of-bounds reads as Wall
func (g Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Wall
	}
	return g.cells[row*g.cols+col]
}

// IsWall treats everything outside the grid as solid
func (g Grid) IsWall(row, col int) bool {
	return g.At(row, col) == Wall
}

// OpenCount returns the number of Open cells
func (g Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Cells returns a deep copy as a row-major matrix
func (g Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for i := range out {
		out[i] = make([]Cell, g.cols)
		copy(out[i], g.cells[i*g.cols:(i+1)*g.cols])
	}
	return out
}

// String renders one text line per row, walls as blocks
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols*3 + 1))
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if g.cells[i*g.cols+j] == Wall {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
