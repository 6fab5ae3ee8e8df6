package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross x", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(2, 0, 0), V3(5, 0, 0), V3(0, 0, 0)},
		// edges of the unit test triangle, v2-v0 and v1-v0
		{"triangle edges", V3(1, 2, 0), V3(2, 0, 0), V3(0, 0, -4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Cross(tc.b)
			if !vecNear(got, tc.expected) {
				t.Errorf("%v x %v = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDot(t *testing.T) {
	if got := V3(1, 2, 3).Dot(V3(4, 5, 6)); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := V3(1, 0, 0).Dot(V3(0, 1, 0)); got != 0 {
		t.Errorf("orthogonal Dot = %v, want 0", got)
	}
}

func TestLenAndNormalize(t *testing.T) {
	v := V3(3, 4, 0)
	if v.Len() != 5 {
		t.Errorf("Len = %v, want 5", v.Len())
	}

	n := v.Normalize()
	if !vecNear(n, V3(0.6, 0.8, 0)) {
		t.Errorf("Normalize = %v, want (0.6, 0.8, 0)", n)
	}
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("normalized length = %v, want 1", n.Len())
	}

	// zero vector stays zero instead of producing NaN
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("zero Normalize = %v, want zero vector", z)
	}
}

func TestMat4MulVec3(t *testing.T) {
	tests := []struct {
		name     string
		m        Mat4
		in       Vec3
		expected Vec3
	}{
		{"identity", Identity(), V3(1, 2, 3), V3(1, 2, 3)},
		{"translate", Translate(V3(1, -1, 2)), V3(1, 2, 3), V3(2, 1, 5)},
		{"scale", ScaleUniform(2), V3(1, 2, 3), V3(2, 4, 6)},
		{"rotate y quarter", RotateY(math.Pi / 2), V3(1, 0, 0), V3(0, 0, -1)},
		{"rotate z quarter", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
		{"euler zero", Euler(0, 0, 0), V3(4, 5, 6), V3(4, 5, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.MulVec3(tc.in)
			if !vecNear(got, tc.expected) {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestMat4MulOrder(t *testing.T) {
	// scale first, then translate
	m := Translate(V3(1, 0, 0)).Mul(ScaleUniform(2))
	got := m.MulVec3(V3(1, 1, 1))
	if !vecNear(got, V3(3, 2, 2)) {
		t.Errorf("got %v, want (3, 2, 2)", got)
	}
}

func TestAABB(t *testing.T) {
	b := EmptyAABB()
	if !b.IsEmpty() {
		t.Fatal("EmptyAABB should be empty")
	}

	b = b.Extend(V3(-1, 2, 0)).Extend(V3(3, -2, 4))
	if b.IsEmpty() {
		t.Fatal("extended box should not be empty")
	}
	if !vecNear(b.Center(), V3(1, 0, 2)) {
		t.Errorf("Center = %v, want (1, 0, 2)", b.Center())
	}
	if !vecNear(b.Size(), V3(4, 4, 4)) {
		t.Errorf("Size = %v, want (4, 4, 4)", b.Size())
	}
	if b.Size().MaxComponent() != 4 {
		t.Errorf("MaxComponent = %v, want 4", b.Size().MaxComponent())
	}
}
