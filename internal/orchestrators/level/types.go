package level

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/KirkDiggler/fps-level/internal/engine/layout"
	"github.com/KirkDiggler/fps-level/internal/entities"
)

// RegenerateInput defines the request for rebuilding the level
type RegenerateInput struct {
	// Blueprint overrides the configured blueprint when set
	Blueprint *layout.Blueprint
}

// RegenerateOutput summarizes the published generation
type RegenerateOutput struct {
	GenerationID  string
	GeneratedAt   time.Time
	RoomCount     int
	WallCount     int
	MeshCount     int
	TriangleCount int
	Failures      []entities.BuildFailure
}

// GetLayoutInput defines the request for the current layout
type GetLayoutInput struct{}

// GetLayoutOutput holds the rooms and walls of the current generation
type GetLayoutOutput struct {
	GenerationID string
	GeneratedAt  time.Time
	Rooms        []entities.Room
	Walls        []entities.Wall
	Failures     []entities.BuildFailure
}

// GetMeshesInput defines the request for the current meshes
type GetMeshesInput struct {
	// SourceID limits the result to the mesh built from one room or wall
	SourceID string
}

// GetMeshesOutput holds meshes of the current generation
type GetMeshesOutput struct {
	GenerationID string
	Meshes       []entities.Mesh
}

// CheckCollisionInput defines a wall proximity query
type CheckCollisionInput struct {
	Point  mgl32.Vec3
	Radius float32
}

// CheckCollisionOutput reports the result of a wall proximity query
type CheckCollisionOutput struct {
	Colliding      bool
	BlockingWallID string
}

// CheckCoverPositionInput defines a cover query
type CheckCoverPositionInput struct {
	Point mgl32.Vec3
}

// CheckCoverPositionOutput reports whether the point is in cover
type CheckCoverPositionOutput struct {
	InCover bool
}

// GetNearestCoverPositionsInput defines a cover search
type GetNearestCoverPositionsInput struct {
	Point  mgl32.Vec3
	Radius float32
}

// GetNearestCoverPositionsOutput holds the cover points found
type GetNearestCoverPositionsOutput struct {
	Positions []mgl32.Vec3
}
