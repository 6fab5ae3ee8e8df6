// Package models provides mesh loading and representation for scanline.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/scanline/pkg/math3d"
)

var (
	// ErrInvalidFace is returned when a face references a vertex that does
	// not exist.
	ErrInvalidFace = errors.New("invalid face")

	// ErrNoGeometry is returned when a model has no vertices or no faces.
	ErrNoGeometry = errors.New("no geometry")
)

// Mesh is a triangle mesh: vertex positions and faces that index them.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle as three indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle.
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	box := math3d.EmptyAABB()
	for _, v := range m.Vertices {
		box = box.Extend(v)
	}
	m.BoundsMin, m.BoundsMax = box.Min, box.Max
}

// Bounds returns the bounding box as an AABB.
func (m *Mesh) Bounds() math3d.AABB {
	return math3d.AABB{Min: m.BoundsMin, Max: m.BoundsMax}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.Bounds().Center()
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.Bounds().Size()
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// GetVertex returns the position of vertex i.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// GetFace returns the vertex indices of face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// Validate checks that the mesh has geometry and that every face index is in
// range. The first bad face is reported.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return fmt.Errorf("mesh %q: %w", m.Name, ErrNoGeometry)
	}
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh %q: face %d index %d of %d vertices: %w", m.Name, i, idx, n, ErrInvalidFace)
			}
		}
	}
	return nil
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Transformed returns a copy of the mesh with mat applied to every vertex.
// The receiver is not modified.
func (m *Mesh) Transformed(mat math3d.Mat4) *Mesh {
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = mat.MulVec3(v)
	}
	out.CalculateBounds()
	return out
}

// FitUnit returns a copy centered on the origin and uniformly scaled so the
// largest dimension spans [-1, 1].
func (m *Mesh) FitUnit() *Mesh {
	if len(m.Vertices) == 0 {
		return m.Clone()
	}

	center := m.Center()
	fit := math3d.Translate(center.Scale(-1))
	if extent := m.Size().MaxComponent(); extent > 0 {
		fit = math3d.ScaleUniform(2 / extent).Mul(fit)
	}
	return m.Transformed(fit)
}
