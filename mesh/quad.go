package mesh

import "github.com/lixenwraith/maze-mesh/vmath"

// Unit quad in the local XY plane, centred on the origin
var quadCorners = [4]vmath.Vec3F{
	{X: -.5, Y: -.5},
	{X: -.5, Y: .5},
	{X: .5, Y: .5},
	{X: .5, Y: -.5},
}

var quadUVs = [4]vmath.Vec2F{
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: 0, Y: 0},
}

// addQuad appends 4 vertices, 4 UVs and 2 triangles to the target list.
// Winding (2,1,0)/(3,2,0) makes the face normal equal the transform's
// forward axis.
func (b *Buffers) addQuad(t vmath.Transform, tris *[]int) {
	base := len(b.Vertices)

	for _, c := range quadCorners {
		b.Vertices = append(b.Vertices, t.MultiplyPoint(c))
	}
	b.UVs = append(b.UVs, quadUVs[:]...)

	*tris = append(*tris,
		base+2, base+1, base,
		base+3, base+2, base,
	)
}
