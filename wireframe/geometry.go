package wireframe

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a point in model space.
type Vertex = mgl64.Vec3

// Face is a closed loop of vertex indices; the last index connects back to the first.
type Face []int

// Geometry is a vertex list plus the edge loops drawn over it.
type Geometry struct {
	Vertices []Vertex
	Faces    []Face
}

// Validate reports the first face index outside the vertex list.
func (g Geometry) Validate() error {
	for fi, f := range g.Faces {
		for pi, idx := range f {
			if idx < 0 || idx >= len(g.Vertices) {
				return &InvalidGeometryError{
					Face:        fi,
					Position:    pi,
					Index:       idx,
					VertexCount: len(g.Vertices),
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy so the caller may reuse its slices.
func (g Geometry) Clone() Geometry {
	out := Geometry{
		Vertices: append([]Vertex(nil), g.Vertices...),
		Faces:    make([]Face, len(g.Faces)),
	}
	for i, f := range g.Faces {
		out.Faces[i] = append(Face(nil), f...)
	}
	return out
}

// EdgeCount is the number of strokes one frame draws. Shared edges count twice.
func (g Geometry) EdgeCount() int {
	n := 0
	for _, f := range g.Faces {
		if len(f) >= 2 {
			n += len(f)
		}
	}
	return n
}

// Cube is the site background: a 0.5-wide cube drawn as its front and back squares plus
// four connectors.
func Cube() Geometry {
	const s = 0.25
	return Geometry{
		Vertices: []Vertex{
			{s, s, s},
			{-s, s, s},
			{-s, -s, s},
			{s, -s, s},

			{s, s, -s},
			{-s, s, -s},
			{-s, -s, -s},
			{s, -s, -s},
		},
		Faces: []Face{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			{0, 4},
			{1, 5},
			{2, 6},
			{3, 7},
		},
	}
}

func Tetrahedron() Geometry {
	const s = 0.3
	return Geometry{
		Vertices: []Vertex{
			{s, s, s},
			{-s, -s, s},
			{-s, s, -s},
			{s, -s, -s},
		},
		Faces: []Face{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	}
}

func Octahedron() Geometry {
	const s = 0.35
	return Geometry{
		Vertices: []Vertex{
			{s, 0, 0},
			{-s, 0, 0},
			{0, s, 0},
			{0, -s, 0},
			{0, 0, s},
			{0, 0, -s},
		},
		Faces: []Face{
			{0, 2, 4},
			{4, 2, 1},
			{1, 2, 5},
			{5, 2, 0},
			{0, 4, 3},
			{4, 1, 3},
			{1, 5, 3},
			{5, 0, 3},
		},
	}
}

var presets = map[string]func() Geometry{
	"cube":        Cube,
	"tetrahedron": Tetrahedron,
	"octahedron":  Octahedron,
}

// Preset returns a named built-in shape.
func Preset(name string) (Geometry, bool) {
	fn, ok := presets[name]
	if !ok {
		return Geometry{}, false
	}
	return fn(), true
}

// PresetNames lists the built-in shapes in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
