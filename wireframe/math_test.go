package wireframe

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestProjectionLiteral(t *testing.T) {
	v := Vertex{1, 0, 0}

	r := Rotate(v, AxisY, 0, 1)
	if r != (Vertex{1, 0, 1}) {
		t.Fatalf("Rotate(θ=0) = %v, want [1 0 1]", r)
	}
	p := Project(r)
	if p.X() != 1 || p.Y() != 0 {
		t.Fatalf("Project() = %v, want [1 0]", p)
	}
	x, y := ToScreen(p, 200, 100)
	if x != 200 || y != 50 {
		t.Fatalf("ToScreen() = (%v, %v), want (200, 50)", x, y)
	}

	r = Rotate(v, AxisY, math.Pi/2, 1)
	if !near(r.X(), 0) || !near(r.Y(), 0) || !near(r.Z(), 2) {
		t.Fatalf("Rotate(θ=π/2) = %v, want ≈[0 0 2]", r)
	}
	x, y = ToScreen(Project(r), 200, 100)
	if !near(x, 100) || !near(y, 50) {
		t.Fatalf("ToScreen(θ=π/2) = (%v, %v), want ≈(100, 50)", x, y)
	}
}

func TestRotateYFormula(t *testing.T) {
	v := Vertex{0.3, -0.7, 0.2}
	const offset = 1.5
	for _, a := range []float64{0, 0.1, 1, math.Pi / 3, math.Pi, 4.5, 2*math.Pi - 0.01} {
		got := Rotate(v, AxisY, a, offset)
		s, c := math.Sincos(a)
		want := Vertex{v.X()*c - v.Z()*s, v.Y(), v.X()*s + v.Z()*c + offset}
		if !near(got.X(), want.X()) || !near(got.Y(), want.Y()) || !near(got.Z(), want.Z()) {
			t.Fatalf("Rotate(%v) = %v, want %v", a, got, want)
		}
	}
}

func TestRotateOtherAxes(t *testing.T) {
	got := Rotate(Vertex{0, 1, 0}, AxisX, math.Pi/2, 1)
	if !near(got.X(), 0) || !near(got.Y(), 0) || !near(got.Z(), 2) {
		t.Fatalf("Rotate(AxisX) = %v, want ≈[0 0 2]", got)
	}
	got = Rotate(Vertex{1, 0, 0}, AxisZ, math.Pi/2, 1)
	if !near(got.X(), 0) || !near(got.Y(), 1) || !near(got.Z(), 1) {
		t.Fatalf("Rotate(AxisZ) = %v, want ≈[0 1 1]", got)
	}
}

func TestRotatedDepthStaysPositive(t *testing.T) {
	for _, name := range PresetNames() {
		g, _ := Preset(name)
		for i := 0; i < 720; i++ {
			a := float64(i) * math.Pi / 360
			for _, v := range g.Vertices {
				r := Rotate(v, AxisY, a, 1)
				if r.Z() <= 0 {
					t.Fatalf("%s: vertex %v at %v has z = %v", name, v, a, r.Z())
				}
			}
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{twoPi, 0},
		{twoPi + 0.5, 0.5},
		{-0.5, twoPi - 0.5},
	}
	for _, tt := range tests {
		if got := wrapAngle(tt.in); !near(got, tt.want) {
			t.Fatalf("wrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"x": AxisX, "Y": AxisY, "": AxisY, "z": AxisZ} {
		got, ok := ParseAxis(in)
		if !ok || got != want {
			t.Fatalf("ParseAxis(%q) = %v, %v, want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseAxis("w"); ok {
		t.Fatalf("ParseAxis(w) ok = true, want false")
	}
}
