package engine2D

import (
	"errors"
	"testing"

	"analog-clock/internal/engine2D/geometry"
)

func TestMesh_UploadCopiesVertices(t *testing.T) {
	src := []geometry.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	m := NewMesh(src, Triangles)

	src[0] = geometry.Point{X: -9, Y: -9}

	verts, err := m.Vertices()
	if err != nil {
		t.Fatalf("Vertices() error: %v", err)
	}
	if verts[0] != (geometry.Point{X: 1, Y: 2}) {
		t.Errorf("mesh vertex mutated through caller slice: %v", verts[0])
	}
}

func TestMesh_VertexCountMatchesInput(t *testing.T) {
	pts := geometry.DiscFan(32)
	m := NewMesh(pts, TriangleFan)
	if m.VertexCount() != len(pts) {
		t.Errorf("VertexCount() = %d, want %d", m.VertexCount(), len(pts))
	}
	if m.Topology() != TriangleFan {
		t.Errorf("Topology() = %v, want TriangleFan", m.Topology())
	}
}

func TestMesh_Lifecycle(t *testing.T) {
	m := NewMesh(geometry.DiscFan(8), TriangleFan)

	if err := m.Destroy(); err != nil {
		t.Fatalf("first Destroy() error: %v", err)
	}
	if err := m.Destroy(); !errors.Is(err, ErrMeshDestroyed) {
		t.Errorf("second Destroy() error = %v, want ErrMeshDestroyed", err)
	}
	if _, err := m.Vertices(); !errors.Is(err, ErrMeshDestroyed) {
		t.Errorf("Vertices() after destroy error = %v, want ErrMeshDestroyed", err)
	}
}
