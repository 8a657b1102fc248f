// Package render defines the boundary to the mesh sink that owns GPU buffers.
//
// The level never touches GPU state. It hands the meshes of each generation to a
// Sink, which packs them into buffers on Upload and issues one indexed draw per mesh
// on every Draw.
package render

//go:generate mockgen -destination=mock/mock_sink.go -package=rendermock github.com/KirkDiggler/fps-level/internal/render Sink

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/entities"
)

// State is the upload lifecycle of a sink
type State int

// Sink states
const (
	StateUnconfigured State = iota
	StateUploaded
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateUploaded:
		return "uploaded"
	default:
		return "unknown"
	}
}

// Sink receives finished meshes and draws them
type Sink interface {
	// Upload replaces every buffer with the given meshes and moves to StateUploaded
	Upload(ctx context.Context, meshes []entities.Mesh) error

	// Draw issues one indexed-triangle draw per uploaded mesh with the model transform.
	// It fails with FailedPrecondition before the first Upload.
	Draw(ctx context.Context, model mgl32.Mat4) error

	// Release drops all buffers and returns to StateUnconfigured
	Release()

	// State returns the current lifecycle state
	State() State
}
