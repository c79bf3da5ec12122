package mesh

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/maze-mesh/vmath"
)

// Surface groups, each rendered with its own material
const (
	GroupFloor = 0 // floor and ceiling
	GroupWall  = 1
	GroupCount = 2
)

var ErrIndexOutOfRange = errors.New("triangle index out of range")

// Buffers is the generated geometry. Vertices, UVs and Normals are
// index-aligned; triangle lists are flat index triples into Vertices.
// Quads never share vertices.
type Buffers struct {
	Vertices []vmath.Vec3F
	UVs      []vmath.Vec2F
	Normals  []vmath.Vec3F

	FloorTriangles []int
	WallTriangles  []int
}

// VertexCount returns the number of vertices
func (b *Buffers) VertexCount() int {
	return len(b.Vertices)
}

// TriangleCount returns the number of triangles across both groups
func (b *Buffers) TriangleCount() int {
	return (len(b.FloorTriangles) + len(b.WallTriangles)) / 3
}

// IsEmpty returns true if the mesh has no geometry
func (b *Buffers) IsEmpty() bool {
	return len(b.Vertices) == 0
}

// SubMesh returns the triangle list of a surface group
func (b *Buffers) SubMesh(group int) []int {
	switch group {
	case GroupFloor:
		return b.FloorTriangles
	case GroupWall:
		return b.WallTriangles
	}
	return nil
}

// Validate checks buffer alignment and index ranges
func (b *Buffers) Validate() error {
	if len(b.UVs) != len(b.Vertices) {
		return fmt.Errorf("uv count %d != vertex count %d", len(b.UVs), len(b.Vertices))
	}
	if b.Normals != nil && len(b.Normals) != len(b.Vertices) {
		return fmt.Errorf("normal count %d != vertex count %d", len(b.Normals), len(b.Vertices))
	}
	for group := 0; group < GroupCount; group++ {
		tris := b.SubMesh(group)
		if len(tris)%3 != 0 {
			return fmt.Errorf("group %d: index count %d not a multiple of 3", group, len(tris))
		}
		for k, idx := range tris {
			if idx < 0 || idx >= len(b.Vertices) {
				return fmt.Errorf("%w: group %d index %d = %d, vertex count %d",
					ErrIndexOutOfRange, group, k, idx, len(b.Vertices))
			}
		}
	}
	return nil
}

// Positions flattens vertices to [x0,y0,z0, x1,...] for GPU upload
func (b *Buffers) Positions() []float32 {
	return flatten3(b.Vertices)
}

// NormalData flattens normals to [nx0,ny0,nz0, ...]
func (b *Buffers) NormalData() []float32 {
	return flatten3(b.Normals)
}

// TexCoords flattens UVs to [u0,v0, u1,v1, ...]
func (b *Buffers) TexCoords() []float32 {
	out := make([]float32, 0, len(b.UVs)*2)
	for _, uv := range b.UVs {
		out = append(out, float32(uv.X), float32(uv.Y))
	}
	return out
}

func flatten3(vs []vmath.Vec3F) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return out
}
