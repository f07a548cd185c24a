package cgkit

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	v := V3(1, -2, 3)
	w := V3(0.5, 4, -1)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", v.Add(w), V3(1.5, 2, 2)},
		{"sub", v.Sub(w), V3(0.5, -6, 4)},
		{"mul", v.Mul(-2), V3(-2, 4, -6)},
		{"cross", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"cross anticommutes", V3(0, 1, 0).Cross(V3(1, 0, 0)), V3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := V3(2, 3, 6)

	if got := v.Dot(V3(1, 1, 1)); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := v.LengthSq(); got != 49 {
		t.Errorf("LengthSq = %v, want 49", got)
	}
	if got := v.Length(); got != 7 {
		t.Errorf("Length = %v, want 7", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize length = %v, want 1", n.Length())
	}
	if !n.Approx(V3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Normalize = %v", n)
	}

	if z := (Vec3{}).Normalize(); !z.IsZero() {
		t.Errorf("Normalize of zero vector = %v, want zero", z)
	}
}

func TestVec3_ToPoint(t *testing.T) {
	p := Pt(1, 2, 3)
	if got := p.Vec().ToPoint(); got != p {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}
