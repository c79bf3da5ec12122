package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DefaultMaterials names the two surface groups in exported files
var DefaultMaterials = [GroupCount]string{"floor", "wall"}

// WriteOBJ writes the buffers as a Wavefront OBJ document with one
// group and usemtl statement per surface group. Faces use 1-based
// v/vt/vn references; normals are omitted when absent.
func WriteOBJ(w io.Writer, b *Buffers, materials [GroupCount]string) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}

	bw := bufio.NewWriter(w)
	hasNormals := len(b.Normals) == len(b.Vertices) && len(b.Normals) > 0

	fmt.Fprintf(bw, "# vertices %d triangles %d\n", b.VertexCount(), b.TriangleCount())
	for _, v := range b.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", ff(v.X), ff(v.Y), ff(v.Z))
	}
	for _, uv := range b.UVs {
		fmt.Fprintf(bw, "vt %s %s\n", ff(uv.X), ff(uv.Y))
	}
	if hasNormals {
		for _, n := range b.Normals {
			fmt.Fprintf(bw, "vn %s %s %s\n", ff(n.X), ff(n.Y), ff(n.Z))
		}
	}

	for group := 0; group < GroupCount; group++ {
		tris := b.SubMesh(group)
		if len(tris) == 0 {
			continue
		}
		fmt.Fprintf(bw, "g %s\nusemtl %s\n", materials[group], materials[group])
		for k := 0; k < len(tris); k += 3 {
			bw.WriteString("f")
			for _, idx := range tris[k : k+3] {
				n := idx + 1
				if hasNormals {
					fmt.Fprintf(bw, " %d/%d/%d", n, n, n)
				} else {
					fmt.Fprintf(bw, " %d/%d", n, n)
				}
			}
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}

func ff(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
