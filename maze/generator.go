package maze

import (
	"errors"
	"fmt"
	"log"
)

// DefaultPlacementThreshold is the chance an even interior cell stays open
const DefaultPlacementThreshold = 0.1

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrInvalidThreshold = errors.New("placement threshold outside [0,1]")
	ErrNilRandomSource  = errors.New("nil random source")
)

// Generator carves pillar mazes. The zero value uses a threshold of 0
// (every even interior cell becomes a pillar); use NewGenerator for defaults.
type Generator struct {
	// Threshold: draws at or below it leave the even cell open.
	// Higher values open more space and loops.
	Threshold float64

	// Logger receives advisories; nil is silent
	Logger *log.Logger
}

// NewGenerator returns a generator with the default placement threshold
func NewGenerator() *Generator {
	return &Generator{Threshold: DefaultPlacementThreshold}
}

// Advisory returns a non-fatal warning for the requested size, or ""
func Advisory(rows, cols int) string {
	if rows%2 == 0 || cols%2 == 0 {
		return fmt.Sprintf("odd dimensions recommended for better structure (got %dx%d)", rows, cols)
	}
	return ""
}

// Generate builds a rows×cols occupancy grid.
//
// The border is always Wall. Every interior cell at an even row and even
// column draws one value from rng; above the threshold the cell becomes a
// pillar and one orthogonal neighbour, picked by two more draws (axis, then
// sign), becomes Wall too. Everything else stays Open, which carves the
// corridors.
//
// The result looks like a maze but is not a spanning tree: open cells are
// not guaranteed to be mutually reachable. Output is a pure function of
// (rows, cols, rng sequence).
func (g *Generator) Generate(rows, cols int, rng RandomSource) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	if g.Threshold < 0 || g.Threshold > 1 {
		return Grid{}, fmt.Errorf("%w: %g", ErrInvalidThreshold, g.Threshold)
	}
	if rng == nil {
		return Grid{}, ErrNilRandomSource
	}
	if msg := Advisory(rows, cols); msg != "" && g.Logger != nil {
		g.Logger.Printf("maze: %s", msg)
	}

	cells := make([]Cell, rows*cols)
	rMax, cMax := rows-1, cols-1

	for i := 0; i <= rMax; i++ {
		for j := 0; j <= cMax; j++ {
			if i == 0 || j == 0 || i == rMax || j == cMax {
				cells[i*cols+j] = Wall
				continue
			}
			if i%2 != 0 || j%2 != 0 {
				continue
			}
			if rng.Float64() <= g.Threshold {
				continue
			}

			cells[i*cols+j] = Wall

			di, dj := pickNeighbour(rng)
			ni, nj := i+di, j+dj
			// Odd sizes keep this in range; guard for even ones
			if ni < 0 || ni > rMax || nj < 0 || nj > cMax {
				continue
			}
			cells[ni*cols+nj] = Wall
		}
	}

	return Grid{rows: rows, cols: cols, cells: cells}, nil
}

// pickNeighbour draws an axis, then a sign
func pickNeighbour(rng RandomSource) (di, dj int) {
	colAxis := rng.Float64() < .5
	sign := 1
	if rng.Float64() < .5 {
		sign = -1
	}
	if colAxis {
		return 0, sign
	}
	return sign, 0
}
