package vmath

// epsilon below which a cross product is treated as degenerate
const basisEpsilon = 1e-12

// Transform places a local-space point in world space: scale, then rotate
// into the Right/Up/Forward basis, then translate by Position
type Transform struct {
	Position Vec3F
	Right    Vec3F // local +X
	Up       Vec3F // local +Y
	Forward  Vec3F // local +Z
	Scale    Vec3F
}

// Identity returns a transform that leaves points unchanged
func Identity() Transform {
	return Transform{
		Right:   V3FRight,
		Up:      V3FUp,
		Forward: V3FForward,
		Scale:   Vec3F{1, 1, 1},
	}
}

// LookRotation builds an orthonormal basis whose +Z axis points along forward
// with world +Y as the up hint. When forward is parallel to +Y the right
// axis falls back to world +X, so facing up maps local +Y to world -Z and
// facing down maps it to world +Z.
func LookRotation(forward Vec3F) (right, up, fwd Vec3F) {
	fwd = V3FNormalize(forward)
	right = V3FCross(V3FUp, fwd)
	if V3FMagSq(right) < basisEpsilon {
		right = V3FRight
	} else {
		right = V3FNormalize(right)
	}
	up = V3FCross(fwd, right)
	return right, up, fwd
}

// TRS composes a transform from translation, facing direction and scale
func TRS(position, facing, scale Vec3F) Transform {
	r, u, f := LookRotation(facing)
	return Transform{
		Position: position,
		Right:    r,
		Up:       u,
		Forward:  f,
		Scale:    scale,
	}
}

// MultiplyPoint maps a local-space point into world space
func (t Transform) MultiplyPoint(p Vec3F) Vec3F {
	out := t.Position
	out = V3FAdd(out, V3FScale(t.Right, p.X*t.Scale.X))
	out = V3FAdd(out, V3FScale(t.Up, p.Y*t.Scale.Y))
	out = V3FAdd(out, V3FScale(t.Forward, p.Z*t.Scale.Z))
	return out
}

// MultiplyDirection rotates a direction without translating or scaling it
func (t Transform) MultiplyDirection(d Vec3F) Vec3F {
	out := V3FScale(t.Right, d.X)
	out = V3FAdd(out, V3FScale(t.Up, d.Y))
	return V3FAdd(out, V3FScale(t.Forward, d.Z))
}
