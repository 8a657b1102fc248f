package entities

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/errors"
)

// MeshKind tells which architectural element a mesh was built from
type MeshKind int

// Mesh kinds
const (
	MeshKindUnspecified MeshKind = iota
	MeshKindFloor
	MeshKindWall
	MeshKindDoorFrame
)

// String returns the tag for the mesh kind
func (k MeshKind) String() string {
	switch k {
	case MeshKindFloor:
		return "floor"
	case MeshKindWall:
		return "wall"
	case MeshKindDoorFrame:
		return "door_frame"
	default:
		return "unspecified"
	}
}

// Vertex is the per-vertex layout shared with the mesh sink
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// Mesh is a triangle mesh primitive for one room or wall
type Mesh struct {
	SourceID string // ID of the room or wall the mesh was built from
	Kind     MeshKind
	Vertices []Vertex
	Indices  []uint32 // three per triangle
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the index list describes whole triangles over known vertices
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return errors.InvalidGeometryf("mesh %s has %d indices, not a multiple of 3",
			m.SourceID, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return errors.InvalidGeometryf("mesh %s index %d references vertex %d of %d",
				m.SourceID, i, idx, len(m.Vertices))
		}
	}
	return nil
}

// Clone returns a copy that shares no memory with m
func (m *Mesh) Clone() Mesh {
	out := *m
	out.Vertices = slices.Clone(m.Vertices)
	out.Indices = slices.Clone(m.Indices)
	return out
}

// BuildFailure records a primitive that produced no mesh
type BuildFailure struct {
	Kind     MeshKind
	SourceID string
	Err      error
}
