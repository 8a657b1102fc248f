package render

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
)

// VertexStride is the number of float32 values per interleaved vertex:
// position (3), normal (3), texture coordinates (2)
const VertexStride = 8

// Buffer is the packed form of one mesh
type Buffer struct {
	SourceID string
	Vertices []float32 // interleaved, VertexStride floats per vertex
	Indices  []uint32
}

// Interleave packs vertices in the attribute order position, normal, texcoords
func Interleave(vertices []entities.Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.TexCoords.X(), v.TexCoords.Y(),
		)
	}
	return out
}

// FrameStats counts the work of the last Draw
type FrameStats struct {
	DrawCalls int
	Triangles int
	Model     mgl32.Mat4
}

// BufferSink is a headless Sink that keeps packed buffers in memory.
// It stands in for the GPU wrapper in tools and tests.
type BufferSink struct {
	mu      sync.Mutex
	state   State
	buffers []Buffer
	last    FrameStats
	frames  int
}

// NewBufferSink creates an unconfigured sink
func NewBufferSink() *BufferSink {
	return &BufferSink{state: StateUnconfigured}
}

var _ Sink = (*BufferSink)(nil)

// Upload packs every mesh. Nothing is replaced if any mesh is malformed.
func (s *BufferSink) Upload(ctx context.Context, meshes []entities.Mesh) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "upload canceled")
	}

	buffers := make([]Buffer, 0, len(meshes))
	for i := range meshes {
		if err := meshes[i].Validate(); err != nil {
			return errors.Wrapf(err, "cannot upload mesh %s", meshes[i].SourceID)
		}
		buffers = append(buffers, Buffer{
			SourceID: meshes[i].SourceID,
			Vertices: Interleave(meshes[i].Vertices),
			Indices:  append([]uint32(nil), meshes[i].Indices...),
		})
	}

	s.mu.Lock()
	s.buffers = buffers
	s.state = StateUploaded
	s.mu.Unlock()

	slog.Debug("Mesh buffers uploaded", "buffer_count", len(buffers))
	return nil
}

// Draw records one draw call per buffer
func (s *BufferSink) Draw(ctx context.Context, model mgl32.Mat4) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "draw canceled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUploaded {
		return errors.FailedPrecondition("draw before upload")
	}

	stats := FrameStats{Model: model}
	for _, b := range s.buffers {
		stats.DrawCalls++
		stats.Triangles += len(b.Indices) / 3
	}
	s.last = stats
	s.frames++

	return nil
}

// Release drops all buffers
func (s *BufferSink) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buffers = nil
	s.state = StateUnconfigured
}

// State returns the current lifecycle state
func (s *BufferSink) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Buffers returns the uploaded buffers
func (s *BufferSink) Buffers() []Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Buffer(nil), s.buffers...)
}

// LastFrame returns the stats of the most recent Draw
func (s *BufferSink) LastFrame() FrameStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Frames returns the number of successful Draw calls
func (s *BufferSink) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}
