// Package level wires maze generation and meshing into a playable layout:
// it finds the start and goal cells and holds the trigger callbacks that
// the physics layer fires when those cells are entered.
package level

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/maze-mesh/maze"
	"github.com/lixenwraith/maze-mesh/mesh"
	"github.com/lixenwraith/maze-mesh/vmath"
)

// Trigger names
const (
	TriggerStart = "start"
	TriggerGoal  = "goal"
)

const (
	triggerHeight = 0.5
	spawnHeight   = 1.0
)

var ErrNoOpenCell = errors.New("maze has no open cell")

// TriggerFunc runs when the player enters a trigger volume
type TriggerFunc func()

// Trigger is a named volume centred on a cell
type Trigger struct {
	Name     string
	Cell     maze.Point
	Position vmath.Vec3F
	Callback TriggerFunc
}

// Level is one generated maze with its mesh and markers
type Level struct {
	Grid       maze.Grid
	Mesh       *mesh.Buffers
	Start      maze.Point
	Goal       maze.Point
	HallWidth  float64
	HallHeight float64

	// Start-to-goal path, nil when the goal is unreachable
	SolutionPath []maze.Point

	triggers map[string]*Trigger
}

// Constructor runs generation and meshing for each new level
type Constructor struct {
	Generator *maze.Generator
	Builder   *mesh.Builder
	Logger    *log.Logger // nil is silent
}

// NewConstructor uses default generator and builder settings
func NewConstructor() *Constructor {
	return &Constructor{
		Generator: maze.NewGenerator(),
		Builder:   mesh.NewBuilder(),
	}
}

// Generate builds a fresh level. Previously returned levels are untouched.
func (c *Constructor) Generate(rows, cols int, rng maze.RandomSource, onStart, onGoal TriggerFunc) (*Level, error) {
	if msg := maze.Advisory(rows, cols); msg != "" {
		c.logf("level: %s", msg)
	}

	grid, err := c.Generator.Generate(rows, cols, rng)
	if err != nil {
		return nil, fmt.Errorf("generate grid: %w", err)
	}

	start, ok := FindStart(grid)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d", ErrNoOpenCell, rows, cols)
	}
	goal, _ := FindGoal(grid)

	lvl := &Level{
		Grid:       grid,
		Mesh:       c.Builder.Build(grid),
		Start:      start,
		Goal:       goal,
		HallWidth:  c.Builder.CellWidth,
		HallHeight: c.Builder.CellHeight,
		triggers:   make(map[string]*Trigger, 2),
	}
	lvl.SolutionPath = maze.ShortestPath(grid, start, goal)
	lvl.place(TriggerStart, start, onStart)
	lvl.place(TriggerGoal, goal, onGoal)

	c.logf("level: %dx%d open=%d vertices=%d triangles=%d reachable=%v",
		rows, cols, grid.OpenCount(), lvl.Mesh.VertexCount(), lvl.Mesh.TriangleCount(), lvl.Reachable())
	return lvl, nil
}

func (c *Constructor) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func (l *Level) place(name string, cell maze.Point, cb TriggerFunc) {
	l.triggers[name] = &Trigger{
		Name:     name,
		Cell:     cell,
		Position: l.CellCenter(cell, triggerHeight),
		Callback: cb,
	}
}

// CellCenter maps a cell to world space at height y
func (l *Level) CellCenter(cell maze.Point, y float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: float64(cell.X) * l.HallWidth,
		Y: y,
		Z: float64(cell.Y) * l.HallWidth,
	}
}

// SpawnPosition is where the player is placed on the start cell
func (l *Level) SpawnPosition() vmath.Vec3F {
	return l.CellCenter(l.Start, spawnHeight)
}

// Reachable reports whether the goal can be walked to from the start
func (l *Level) Reachable() bool {
	return l.SolutionPath != nil
}

// Trigger returns the named trigger
func (l *Level) Trigger(name string) (Trigger, bool) {
	t, ok := l.triggers[name]
	if !ok {
		return Trigger{}, false
	}
	return *t, true
}

// Enter fires the named trigger's callback and reports whether it exists
func (l *Level) Enter(name string) bool {
	t, ok := l.triggers[name]
	if !ok {
		return false
	}
	if t.Callback != nil {
		t.Callback()
	}
	return true
}
