package engine2D

import (
	"errors"

	"analog-clock/internal/engine2D/geometry"
)

// Topology tells the backend how mesh vertices group into primitives.
type Topology int

const (
	Triangles Topology = iota
	TriangleStrip
	TriangleFan
	Lines
)

var (
	ErrMeshDestroyed = errors.New("engine2D: mesh already destroyed")
	ErrMeshEmpty     = errors.New("engine2D: mesh has no vertices")
)

// Mesh wraps an uploaded vertex list with its primitive topology.
// Upload once, draw many, destroy once; the vertex data is frozen at
// construction and never mutated.
type Mesh struct {
	verts     []geometry.Point
	topology  Topology
	destroyed bool
}

// NewMesh uploads a vertex list. The slice is copied so later changes to
// the caller's buffer cannot alter the mesh.
func NewMesh(verts []geometry.Point, topology Topology) *Mesh {
	owned := make([]geometry.Point, len(verts))
	copy(owned, verts)
	return &Mesh{verts: owned, topology: topology}
}

func (m *Mesh) Topology() Topology { return m.topology }

// VertexCount reports the number of uploaded vertices.
func (m *Mesh) VertexCount() int { return len(m.verts) }

// Vertices hands the frozen vertex list to a backend. Drawing a
// destroyed mesh is a use-after-free in the resource ledger and is
// rejected.
func (m *Mesh) Vertices() ([]geometry.Point, error) {
	if m.destroyed {
		return nil, ErrMeshDestroyed
	}
	return m.verts, nil
}

// Destroy releases the mesh. A second call reports the double free.
func (m *Mesh) Destroy() error {
	if m.destroyed {
		return ErrMeshDestroyed
	}
	m.destroyed = true
	m.verts = nil
	return nil
}
