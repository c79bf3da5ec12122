package level

import "github.com/lixenwraith/maze-mesh/maze"

// FindStart returns the first open cell in row-major order
func FindStart(g maze.Grid) (maze.Point, bool) {
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if g.At(i, j) == maze.Open {
				return maze.Point{X: j, Y: i}, true
			}
		}
	}
	return maze.Point{}, false
}

// FindGoal returns the first open cell scanning from the last row and
// column backwards
func FindGoal(g maze.Grid) (maze.Point, bool) {
	for i := g.Rows() - 1; i >= 0; i-- {
		for j := g.Cols() - 1; j >= 0; j-- {
			if g.At(i, j) == maze.Open {
				return maze.Point{X: j, Y: i}, true
			}
		}
	}
	return maze.Point{}, false
}
