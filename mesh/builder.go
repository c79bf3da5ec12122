package mesh

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/maze-mesh/maze"
	"github.com/lixenwraith/maze-mesh/vmath"
)

// Default hall dimensions in world units
const (
	DefaultCellWidth  = 3.75
	DefaultCellHeight = 3.5
)

var ErrInvalidCellSize = errors.New("cell size must be positive")

// Builder turns an occupancy grid into floor, ceiling and wall quads
type Builder struct {
	CellWidth  float64 // hall width, also the floor tile edge
	CellHeight float64 // hall height
}

// NewBuilder returns a builder with the default hall size
func NewBuilder() *Builder {
	return &Builder{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// NewBuilderSize returns a builder for the given hall size
func NewBuilderSize(width, height float64) (*Builder, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidCellSize, width, height)
	}
	return &Builder{CellWidth: width, CellHeight: height}, nil
}

// wallSide describes the quad closing one side of an open cell
type wallSide struct {
	di, dj int         // neighbour offset
	facing vmath.Vec3F // points back into the open cell
}

// Emission order: north, east, west, south
var wallSides = [4]wallSide{
	{di: -1, dj: 0, facing: vmath.V3FForward},
	{di: 0, dj: 1, facing: vmath.V3FLeft},
	{di: 0, dj: -1, facing: vmath.V3FRight},
	{di: 1, dj: 0, facing: vmath.V3FBack},
}

// Build emits geometry for every open cell in row-major order, then
// recomputes normals. An all-wall grid yields empty buffers.
func (b *Builder) Build(grid maze.Grid) *Buffers {
	w, h := b.CellWidth, b.CellHeight
	halfH := h * .5

	out := &Buffers{}
	open := grid.OpenCount()
	if open == 0 {
		return out
	}
	// floor, ceiling and roughly two walls per open cell
	quadHint := open * 4
	out.Vertices = make([]vmath.Vec3F, 0, quadHint*4)
	out.UVs = make([]vmath.Vec2F, 0, quadHint*4)
	out.FloorTriangles = make([]int, 0, open*12)

	flatScale := vmath.Vec3F{X: w, Y: w, Z: 1}
	wallScale := vmath.Vec3F{X: w, Y: h, Z: 1}

	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			if grid.At(i, j) != maze.Open {
				continue
			}
			x, z := float64(j)*w, float64(i)*w

			out.addQuad(vmath.TRS(vmath.Vec3F{X: x, Y: 0, Z: z}, vmath.V3FUp, flatScale), &out.FloorTriangles)
			out.addQuad(vmath.TRS(vmath.Vec3F{X: x, Y: h, Z: z}, vmath.V3FDown, flatScale), &out.FloorTriangles)

			for _, s := range wallSides {
				if !grid.IsWall(i+s.di, j+s.dj) {
					continue
				}
				pos := vmath.Vec3F{
					X: (float64(j) + float64(s.dj)*.5) * w,
					Y: halfH,
					Z: (float64(i) + float64(s.di)*.5) * w,
				}
				out.addQuad(vmath.TRS(pos, s.facing, wallScale), &out.WallTriangles)
			}
		}
	}

	out.RecalculateNormals()
	return out
}
