package mesh

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lixenwraith/maze-mesh/maze"
	"github.com/lixenwraith/maze-mesh/vmath"
)

const eps = 1e-9

func mustGrid(t *testing.T, cells [][]maze.Cell) maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(cells)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func singleCellGrid(t *testing.T) maze.Grid {
	return mustGrid(t, [][]maze.Cell{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
}

func centroid(vs []vmath.Vec3F) vmath.Vec3F {
	var c vmath.Vec3F
	for _, v := range vs {
		c = vmath.V3FAdd(c, v)
	}
	return vmath.V3FScale(c, 1/float64(len(vs)))
}

func TestBuild_SingleOpenCell(t *testing.T) {
	b := NewBuilder().Build(singleCellGrid(t))

	if b.VertexCount() != 24 {
		t.Errorf("Expected 24 vertices, got %d", b.VertexCount())
	}
	if len(b.UVs) != 24 || len(b.Normals) != 24 {
		t.Errorf("Expected 24 UVs and normals, got %d and %d", len(b.UVs), len(b.Normals))
	}
	if got := len(b.FloorTriangles) / 3; got != 4 {
		t.Errorf("Expected 4 floor-group triangles, got %d", got)
	}
	if got := len(b.WallTriangles) / 3; got != 8 {
		t.Errorf("Expected 8 wall-group triangles, got %d", got)
	}
	if b.TriangleCount() != 12 {
		t.Errorf("Expected 12 triangles total, got %d", b.TriangleCount())
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBuild_QuadPlacementAndNormals(t *testing.T) {
	w, h := DefaultCellWidth, DefaultCellHeight
	b := NewBuilder().Build(singleCellGrid(t))

	// Emission order: floor, ceiling, north, east, west, south
	want := []struct {
		name   string
		centre vmath.Vec3F
		normal vmath.Vec3F
	}{
		{"floor", vmath.Vec3F{X: w, Y: 0, Z: w}, vmath.V3FUp},
		{"ceiling", vmath.Vec3F{X: w, Y: h, Z: w}, vmath.V3FDown},
		{"north", vmath.Vec3F{X: w, Y: h / 2, Z: .5 * w}, vmath.V3FForward},
		{"east", vmath.Vec3F{X: 1.5 * w, Y: h / 2, Z: w}, vmath.V3FLeft},
		{"west", vmath.Vec3F{X: .5 * w, Y: h / 2, Z: w}, vmath.V3FRight},
		{"south", vmath.Vec3F{X: w, Y: h / 2, Z: 1.5 * w}, vmath.V3FBack},
	}

	for q, tt := range want {
		t.Run(tt.name, func(t *testing.T) {
			quad := b.Vertices[q*4 : q*4+4]
			if c := centroid(quad); !vmath.V3FApproxEqual(c, tt.centre, eps) {
				t.Errorf("Expected centre %+v, got %+v", tt.centre, c)
			}
			for k, n := range b.Normals[q*4 : q*4+4] {
				if !vmath.V3FApproxEqual(n, tt.normal, eps) {
					t.Errorf("Vertex %d: expected normal %+v, got %+v", k, tt.normal, n)
				}
			}
		})
	}
}

func TestBuild_QuadExtents(t *testing.T) {
	w, h := DefaultCellWidth, DefaultCellHeight
	b := NewBuilder().Build(singleCellGrid(t))

	floor := b.Vertices[0:4]
	for _, v := range floor {
		if v.Y != 0 {
			t.Errorf("Floor vertex off the ground: %+v", v)
		}
		if abs(v.X-w) > w/2+eps || abs(v.Z-w) > w/2+eps {
			t.Errorf("Floor vertex outside cell: %+v", v)
		}
	}

	north := b.Vertices[8:12]
	var minY, maxY = north[0].Y, north[0].Y
	for _, v := range north {
		if abs(v.Z-.5*w) > eps {
			t.Errorf("North wall vertex not on the cell edge: %+v", v)
		}
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	if abs(minY) > eps || abs(maxY-h) > eps {
		t.Errorf("Expected north wall from 0 to %g, got %g..%g", h, minY, maxY)
	}
}

func TestBuild_AllWallGridIsEmpty(t *testing.T) {
	g := mustGrid(t, [][]maze.Cell{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	b := NewBuilder().Build(g)

	if !b.IsEmpty() {
		t.Errorf("Expected empty buffers, got %d vertices", b.VertexCount())
	}
	if len(b.FloorTriangles) != 0 || len(b.WallTriangles) != 0 {
		t.Error("Expected no triangles")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBuild_WallsOnlyAgainstBlockedSides(t *testing.T) {
	tests := []struct {
		name       string
		cells      [][]maze.Cell
		floorQuads int
		wallQuads  int
	}{
		{
			name:       "lone cell, grid edge counts as wall",
			cells:      [][]maze.Cell{{0}},
			floorQuads: 2,
			wallQuads:  4,
		},
		{
			name: "two-cell corridor",
			cells: [][]maze.Cell{
				{1, 1, 1, 1},
				{1, 0, 0, 1},
				{1, 1, 1, 1},
			},
			floorQuads: 4,
			wallQuads:  6,
		},
		{
			name: "open 2x2 room",
			cells: [][]maze.Cell{
				{0, 0},
				{0, 0},
			},
			floorQuads: 8,
			wallQuads:  8,
		},
		{
			name: "plus shape",
			cells: [][]maze.Cell{
				{1, 0, 1},
				{0, 0, 0},
				{1, 0, 1},
			},
			floorQuads: 10,
			wallQuads:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder().Build(mustGrid(t, tt.cells))
			if got := len(b.FloorTriangles) / 6; got != tt.floorQuads {
				t.Errorf("Expected %d floor-group quads, got %d", tt.floorQuads, got)
			}
			if got := len(b.WallTriangles) / 6; got != tt.wallQuads {
				t.Errorf("Expected %d wall quads, got %d", tt.wallQuads, got)
			}
			if b.VertexCount() != 4*(tt.floorQuads+tt.wallQuads) {
				t.Errorf("Expected 4 vertices per quad, got %d", b.VertexCount())
			}
		})
	}
}

func TestBuild_GeneratedMazesAreConsistent(t *testing.T) {
	gen := maze.NewGenerator()
	for seed := int64(1); seed <= 10; seed++ {
		g, err := gen.Generate(13, 15, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		b := NewBuilder().Build(g)

		if err := b.Validate(); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
		if b.VertexCount()%4 != 0 {
			t.Errorf("seed %d: vertex count %d not a multiple of 4", seed, b.VertexCount())
		}
		quads := b.VertexCount() / 4
		if quads*2 != b.TriangleCount() {
			t.Errorf("seed %d: %d quads but %d triangles", seed, quads, b.TriangleCount())
		}
		if len(b.FloorTriangles) != g.OpenCount()*12 {
			t.Errorf("seed %d: expected %d floor indices, got %d", seed, g.OpenCount()*12, len(b.FloorTriangles))
		}
	}
}

func TestBuild_ScaleInvariance(t *testing.T) {
	g, _ := maze.NewGenerator().Generate(9, 11, rand.New(rand.NewSource(5)))

	base, _ := NewBuilderSize(DefaultCellWidth, DefaultCellHeight)
	double, _ := NewBuilderSize(2*DefaultCellWidth, DefaultCellHeight)
	a, b := base.Build(g), double.Build(g)

	if a.VertexCount() != b.VertexCount() {
		t.Fatalf("Vertex counts differ: %d vs %d", a.VertexCount(), b.VertexCount())
	}
	for i := range a.Vertices {
		va, vb := a.Vertices[i], b.Vertices[i]
		if abs(vb.X-2*va.X) > eps || abs(vb.Z-2*va.Z) > eps || abs(vb.Y-va.Y) > eps {
			t.Fatalf("Vertex %d: %+v does not scale to %+v", i, va, vb)
		}
		if a.UVs[i] != b.UVs[i] {
			t.Fatalf("UV %d changed: %+v vs %+v", i, a.UVs[i], b.UVs[i])
		}
	}
	if !equalInts(a.FloorTriangles, b.FloorTriangles) || !equalInts(a.WallTriangles, b.WallTriangles) {
		t.Error("Triangle indices changed with cell width")
	}
}

func TestNewBuilderSize_Rejects(t *testing.T) {
	for _, sz := range [][2]float64{{0, 1}, {1, 0}, {-2, 3}, {3, -1}} {
		if _, err := NewBuilderSize(sz[0], sz[1]); !errors.Is(err, ErrInvalidCellSize) {
			t.Errorf("%v: expected ErrInvalidCellSize, got %v", sz, err)
		}
	}
}

func TestAddQuad(t *testing.T) {
	var b Buffers
	var tris []int

	b.addQuad(vmath.Identity(), &tris)
	b.addQuad(vmath.Identity(), &tris)

	if b.VertexCount() != 8 || len(b.UVs) != 8 {
		t.Fatalf("Expected 8 vertices and UVs, got %d and %d", b.VertexCount(), len(b.UVs))
	}
	wantTris := []int{2, 1, 0, 3, 2, 0, 6, 5, 4, 7, 6, 4}
	if !equalInts(tris, wantTris) {
		t.Errorf("Expected indices %v, got %v", wantTris, tris)
	}
	wantUV := []vmath.Vec2F{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	for k, uv := range wantUV {
		if b.UVs[k] != uv || b.UVs[k+4] != uv {
			t.Errorf("UV %d: expected %+v, got %+v / %+v", k, uv, b.UVs[k], b.UVs[k+4])
		}
	}
	if b.Vertices[0] != (vmath.Vec3F{X: -.5, Y: -.5}) || b.Vertices[2] != (vmath.Vec3F{X: .5, Y: .5}) {
		t.Errorf("Unexpected identity corners: %+v", b.Vertices[:4])
	}
}

func TestValidate_DetectsBadIndex(t *testing.T) {
	var b Buffers
	var tris []int
	b.addQuad(vmath.Identity(), &tris)
	b.FloorTriangles = append(tris, 0, 1, 4)

	if err := b.Validate(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}

	b.FloorTriangles = tris
	b.UVs = b.UVs[:3]
	if err := b.Validate(); err == nil {
		t.Error("Expected UV misalignment error")
	}
}

func TestFlatArrays(t *testing.T) {
	b := NewBuilder().Build(singleCellGrid(t))
	if got := len(b.Positions()); got != 72 {
		t.Errorf("Expected 72 position floats, got %d", got)
	}
	if got := len(b.NormalData()); got != 72 {
		t.Errorf("Expected 72 normal floats, got %d", got)
	}
	if got := len(b.TexCoords()); got != 48 {
		t.Errorf("Expected 48 texcoord floats, got %d", got)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
