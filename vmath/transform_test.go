package vmath

import "testing"

func TestLookRotation_Orthonormal(t *testing.T) {
	dirs := []Vec3F{V3FUp, V3FDown, V3FForward, V3FBack, V3FLeft, V3FRight, {1, 1, 0}, {0.3, -0.2, 0.9}}
	for _, d := range dirs {
		r, u, f := LookRotation(d)
		if !V3FApproxEqual(f, V3FNormalize(d), eps) {
			t.Errorf("%+v: forward %+v not aligned", d, f)
		}
		for _, pair := range [][2]Vec3F{{r, u}, {u, f}, {f, r}} {
			if dot := V3FDot(pair[0], pair[1]); dot > 1e-9 || dot < -1e-9 {
				t.Errorf("%+v: axes not orthogonal (dot %g)", d, dot)
			}
		}
		// right-handed: right × up = forward
		if !V3FApproxEqual(V3FCross(r, u), f, 1e-9) {
			t.Errorf("%+v: basis is not right-handed", d)
		}
	}
}

func TestLookRotation_VerticalFallback(t *testing.T) {
	r, u, _ := LookRotation(V3FUp)
	if r != V3FRight || !V3FApproxEqual(u, V3FBack, eps) {
		t.Errorf("Facing up: expected right +X and up -Z, got %+v %+v", r, u)
	}
	r, u, _ = LookRotation(V3FDown)
	if r != V3FRight || !V3FApproxEqual(u, V3FForward, eps) {
		t.Errorf("Facing down: expected right +X and up +Z, got %+v %+v", r, u)
	}
}

func TestTransform_MultiplyPoint(t *testing.T) {
	tr := TRS(Vec3F{10, 2, -4}, V3FLeft, Vec3F{2, 3, 1})

	// Facing -X: right is +Z, up is +Y
	got := tr.MultiplyPoint(Vec3F{0.5, 0.5, 0})
	want := Vec3F{10, 3.5, -3}
	if !V3FApproxEqual(got, want, eps) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	if p := Identity().MultiplyPoint(Vec3F{1, 2, 3}); p != (Vec3F{1, 2, 3}) {
		t.Errorf("Identity moved point to %+v", p)
	}
	if d := tr.MultiplyDirection(Vec3F{0, 0, 1}); !V3FApproxEqual(d, V3FLeft, eps) {
		t.Errorf("Expected forward direction -X, got %+v", d)
	}
}
