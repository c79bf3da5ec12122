package mesh

import "github.com/lixenwraith/maze-mesh/vmath"

// RecalculateNormals derives per-vertex normals from triangle winding.
// Unnormalized cross products weight each face by its area.
func (b *Buffers) RecalculateNormals() {
	normals := make([]vmath.Vec3F, len(b.Vertices))

	for group := 0; group < GroupCount; group++ {
		tris := b.SubMesh(group)
		for k := 0; k+2 < len(tris); k += 3 {
			i0, i1, i2 := tris[k], tris[k+1], tris[k+2]
			p0, p1, p2 := b.Vertices[i0], b.Vertices[i1], b.Vertices[i2]

			face := vmath.V3FCross(vmath.V3FSub(p1, p0), vmath.V3FSub(p2, p0))
			normals[i0] = vmath.V3FAdd(normals[i0], face)
			normals[i1] = vmath.V3FAdd(normals[i1], face)
			normals[i2] = vmath.V3FAdd(normals[i2], face)
		}
	}

	for i := range normals {
		normals[i] = vmath.V3FNormalize(normals[i])
	}
	b.Normals = normals
}
