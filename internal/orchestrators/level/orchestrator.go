// Package level implements the level orchestrator that owns the generated apartment
package level

//go:generate mockgen -destination=mock/mock_service.go -package=levelmock github.com/KirkDiggler/fps-level/internal/orchestrators/level Service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/fps-level/internal/engine"
	"github.com/KirkDiggler/fps-level/internal/engine/collision"
	"github.com/KirkDiggler/fps-level/internal/engine/layout"
	"github.com/KirkDiggler/fps-level/internal/entities"
	"github.com/KirkDiggler/fps-level/internal/errors"
	"github.com/KirkDiggler/fps-level/internal/pkg/clock"
	"github.com/KirkDiggler/fps-level/internal/pkg/idgen"
	"github.com/KirkDiggler/fps-level/internal/render"
)

// Service defines the interface for level operations
type Service interface {
	// Regenerate discards the current level and publishes a freshly built one
	Regenerate(ctx context.Context, input *RegenerateInput) (*RegenerateOutput, error)

	// GetLayout returns the rooms and walls of the current level
	GetLayout(ctx context.Context, input *GetLayoutInput) (*GetLayoutOutput, error)

	// GetMeshes returns the meshes of the current level
	GetMeshes(ctx context.Context, input *GetMeshesInput) (*GetMeshesOutput, error)

	// CheckCollision reports whether a point is within a radius of any wall
	CheckCollision(ctx context.Context, input *CheckCollisionInput) (*CheckCollisionOutput, error)

	// CheckCoverPosition reports whether a point is at a cover point
	CheckCoverPosition(ctx context.Context, input *CheckCoverPositionInput) (*CheckCoverPositionOutput, error)

	// GetNearestCoverPositions returns the cover points within a radius of a point
	GetNearestCoverPositions(ctx context.Context, input *GetNearestCoverPositionsInput) (*GetNearestCoverPositionsOutput, error)
}

// Config holds the dependencies for the level orchestrator
type Config struct {
	Blueprint     *layout.Blueprint
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	MeshSink      render.Sink // optional
	CollisionMode collision.Mode
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Blueprint == nil {
		vb.RequiredField("Blueprint")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	return (&engine.Config{CollisionMode: c.CollisionMode}).Validate()
}

// snapshot is one finalized generation. It is never modified after publication.
type snapshot struct {
	generationID string
	generatedAt  time.Time
	rooms        []entities.Room
	walls        []entities.Wall
	meshes       []entities.Mesh
	failures     []entities.BuildFailure
	collision    *collision.Service
}

type orchestrator struct {
	blueprint *layout.Blueprint
	engine    engine.Engine
	idGen     idgen.Generator
	clock     clock.Clock
	sink      render.Sink

	// genMu serializes generations so sink uploads follow publication order
	genMu sync.Mutex

	mu      sync.RWMutex
	current *snapshot
}

// NewOrchestrator creates a new level orchestrator with the provided dependencies.
// The level is empty until the first Regenerate.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	eng, err := engine.New(&engine.Config{CollisionMode: cfg.CollisionMode})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	return &orchestrator{
		blueprint: cfg.Blueprint,
		engine:    eng,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		sink:      cfg.MeshSink,
		current: &snapshot{
			collision: collision.New(nil, nil, cfg.CollisionMode),
		},
	}, nil
}

// Regenerate builds a complete generation and swaps it in
func (o *orchestrator) Regenerate(ctx context.Context, input *RegenerateInput) (*RegenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	bp := o.blueprint
	if input.Blueprint != nil {
		bp = input.Blueprint
	}

	o.genMu.Lock()
	defer o.genMu.Unlock()

	built, err := o.engine.Build(ctx, &engine.BuildInput{Blueprint: bp})
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		generationID: o.idGen.Generate(),
		generatedAt:  o.clock.Now(),
		rooms:        built.Rooms,
		walls:        built.Walls,
		meshes:       built.Meshes,
		failures:     built.Failures,
		collision:    built.Collision,
	}

	for _, f := range snap.failures {
		slog.Warn("Skipping primitive that failed to build",
			"generation_id", snap.generationID,
			"primitive_kind", f.Kind.String(),
			"primitive_id", f.SourceID,
			"error", f.Err,
		)
	}

	if o.sink != nil {
		if err := o.sink.Upload(ctx, snap.meshes); err != nil {
			slog.Error("Mesh upload failed, keeping previous generation",
				"generation_id", snap.generationID,
				"error", err,
			)
			return nil, errors.Wrap(err, "failed to upload meshes")
		}
	}

	o.mu.Lock()
	o.current = snap
	o.mu.Unlock()

	triangles := built.TriangleCount()

	slog.Info("Level generated",
		"generation_id", snap.generationID,
		"room_count", len(snap.rooms),
		"wall_count", len(snap.walls),
		"mesh_count", len(snap.meshes),
		"triangle_count", triangles,
		"failure_count", len(snap.failures),
		"collision_mode", built.Collision.Mode().String(),
	)

	return &RegenerateOutput{
		GenerationID:  snap.generationID,
		GeneratedAt:   snap.generatedAt,
		RoomCount:     len(snap.rooms),
		WallCount:     len(snap.walls),
		MeshCount:     len(snap.meshes),
		TriangleCount: triangles,
		Failures:      slices.Clone(snap.failures),
	}, nil
}

func (o *orchestrator) published() *snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}

// Callers own what the read paths return; the published snapshot is never handed out
func cloneRooms(rooms []entities.Room) []entities.Room {
	out := make([]entities.Room, len(rooms))
	for i := range rooms {
		out[i] = rooms[i].Clone()
	}
	return out
}

func cloneWalls(walls []entities.Wall) []entities.Wall {
	out := make([]entities.Wall, len(walls))
	for i := range walls {
		out[i] = walls[i].Clone()
	}
	return out
}

func cloneMeshes(meshes []entities.Mesh) []entities.Mesh {
	out := make([]entities.Mesh, len(meshes))
	for i := range meshes {
		out[i] = meshes[i].Clone()
	}
	return out
}

// GetLayout returns the rooms and walls of the current generation
func (o *orchestrator) GetLayout(_ context.Context, input *GetLayoutInput) (*GetLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snap := o.published()

	return &GetLayoutOutput{
		GenerationID: snap.generationID,
		GeneratedAt:  snap.generatedAt,
		Rooms:        cloneRooms(snap.rooms),
		Walls:        cloneWalls(snap.walls),
		Failures:     slices.Clone(snap.failures),
	}, nil
}

// GetMeshes returns all meshes, or the mesh of one source primitive
func (o *orchestrator) GetMeshes(_ context.Context, input *GetMeshesInput) (*GetMeshesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snap := o.published()

	if input.SourceID == "" {
		return &GetMeshesOutput{
			GenerationID: snap.generationID,
			Meshes:       cloneMeshes(snap.meshes),
		}, nil
	}

	for i := range snap.meshes {
		if snap.meshes[i].SourceID == input.SourceID {
			return &GetMeshesOutput{
				GenerationID: snap.generationID,
				Meshes:       []entities.Mesh{snap.meshes[i].Clone()},
			}, nil
		}
	}

	return nil, errors.NotFoundf("no mesh for %s", input.SourceID).
		WithMeta("generation_id", snap.generationID)
}

// CheckCollision runs a wall proximity query against the current generation
func (o *orchestrator) CheckCollision(_ context.Context, input *CheckCollisionInput) (*CheckCollisionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Radius < 0 {
		return nil, errors.InvalidArgumentf("radius must not be negative, got %g", input.Radius)
	}

	wall := o.published().collision.BlockingWall(input.Point, input.Radius)
	if wall == nil {
		return &CheckCollisionOutput{}, nil
	}

	slog.Debug("Collision detected",
		"point", input.Point,
		"radius", input.Radius,
		"wall_id", wall.ID,
	)

	return &CheckCollisionOutput{
		Colliding:      true,
		BlockingWallID: wall.ID,
	}, nil
}

// CheckCoverPosition runs a cover query against the current generation
func (o *orchestrator) CheckCoverPosition(_ context.Context, input *CheckCoverPositionInput) (*CheckCoverPositionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &CheckCoverPositionOutput{
		InCover: o.published().collision.CheckCoverPosition(input.Point),
	}, nil
}

// GetNearestCoverPositions runs a cover search against the current generation
func (o *orchestrator) GetNearestCoverPositions(_ context.Context, input *GetNearestCoverPositionsInput) (*GetNearestCoverPositionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Radius < 0 {
		return nil, errors.InvalidArgumentf("radius must not be negative, got %g", input.Radius)
	}

	return &GetNearestCoverPositionsOutput{
		Positions: o.published().collision.GetNearestCoverPositions(input.Point, input.Radius),
	}, nil
}
